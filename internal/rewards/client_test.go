package rewards

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ecorecycle/smartbin/pkg/clients"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := NewClient("http://localhost:8000", httpClient, DefaultResolvers())
	defer ctrl.Finish()
	return client, httpClient
}

func TestClient_AddPoints(t *testing.T) {
	const url = "http://localhost:8000/api/auth/points/add/"

	tests := []struct {
		name          string
		code          string
		prepareMock   func(m *clients.MockHTTPClientI)
		expectedError error
	}{
		{
			name: "First candidate accepted",
			code: "SB-alice",
			prepareMock: func(m *clients.MockHTTPClientI) {
				// no UUID in the code, the NFC form goes first
				m.EXPECT().PostJSON(gomock.Any(), url, addPointsRequest{
					UserID:      "SB-alice",
					Amount:      5,
					Description: "Trash deposit - plastic waste",
				}).Return(http.StatusOK, nil, nil)
			},
			expectedError: nil,
		},
		{
			name: "Unknown NFC code falls back to username",
			code: "SB-alice",
			prepareMock: func(m *clients.MockHTTPClientI) {
				gomock.InOrder(
					m.EXPECT().PostJSON(gomock.Any(), url, addPointsRequest{
						UserID:      "SB-alice",
						Amount:      5,
						Description: "Trash deposit - plastic waste",
					}).Return(http.StatusNotFound, nil, nil),
					m.EXPECT().PostJSON(gomock.Any(), url, addPointsRequest{
						UserID:      "alice",
						Amount:      5,
						Description: "Trash deposit - plastic waste",
					}).Return(http.StatusOK, nil, nil),
				)
			},
			expectedError: nil,
		},
		{
			name: "UUID codes try the bare UUID first",
			code: "SB-7f9c24e8-3b1a-4f6e-9c2d-8a5b6c7d8e9f",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().PostJSON(gomock.Any(), url, addPointsRequest{
					UserID:      "7f9c24e8-3b1a-4f6e-9c2d-8a5b6c7d8e9f",
					Amount:      5,
					Description: "Trash deposit - plastic waste",
				}).Return(http.StatusOK, nil, nil)
			},
			expectedError: nil,
		},
		{
			name: "All candidates rejected",
			code: "SB-ghost",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().PostJSON(gomock.Any(), url, gomock.Any()).
					Return(http.StatusNotFound, nil, nil).Times(2)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Server error stops the chain",
			code: "SB-alice",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().PostJSON(gomock.Any(), url, gomock.Any()).
					Return(http.StatusInternalServerError, []byte("boom"), nil)
			},
			expectedError: &clients.StatusError{Code: http.StatusInternalServerError, Body: "boom"},
		},
		{
			name: "Transport error stops the chain",
			code: "SB-alice",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().PostJSON(gomock.Any(), url, gomock.Any()).
					Return(0, nil, errors.New("connection refused"))
			},
			expectedError: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewMock(t)
			tt.prepareMock(httpClient)

			err := client.AddPoints(context.Background(), tt.code, 5, "Trash deposit - plastic waste")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolvers(t *testing.T) {
	tests := []struct {
		name      string
		resolver  Resolver
		code      string
		candidate string
		ok        bool
	}{
		{"UUID resolver strips the prefix", UUIDResolver{}, "SB-7f9c24e8-3b1a-4f6e-9c2d-8a5b6c7d8e9f", "7f9c24e8-3b1a-4f6e-9c2d-8a5b6c7d8e9f", true},
		{"UUID resolver rejects non-UUID", UUIDResolver{}, "SB-alice", "", false},
		{"Code resolver keeps the prefix", CodeResolver{}, "SB-alice", "SB-alice", true},
		{"Code resolver adds a missing prefix", CodeResolver{}, "alice", "SB-alice", true},
		{"Code resolver rejects empty", CodeResolver{}, "", "", false},
		{"Name resolver strips the prefix", NameResolver{}, "SB-alice", "alice", true},
		{"Name resolver rejects bare prefix", NameResolver{}, "SB-", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate, ok := tt.resolver.Candidate(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.candidate, candidate)
		})
	}
}
