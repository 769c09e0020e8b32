package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ecorecycle/smartbin/pkg/clients"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := NewClient("http://localhost:8001", httpClient)
	defer ctrl.Finish()
	return client, httpClient
}

func TestClient_AddTrash(t *testing.T) {
	binID := uuid.New()
	url := fmt.Sprintf("http://localhost:8001/api/bins/%s/add-trash", binID)

	tests := []struct {
		name          string
		prepareMock   func(m *clients.MockHTTPClientI)
		expectedError error
	}{
		{
			name: "Capacity updated",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().PostJSON(gomock.Any(), url, addTrashRequest{
					BinID:  binID.String(),
					Liters: 2,
				}).Return(http.StatusOK, nil, nil)
			},
			expectedError: nil,
		},
		{
			name: "Unknown bin",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().PostJSON(gomock.Any(), url, gomock.Any()).
					Return(http.StatusNotFound, nil, nil)
			},
			expectedError: ErrBinNotFound,
		},
		{
			name: "Server error",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().PostJSON(gomock.Any(), url, gomock.Any()).
					Return(http.StatusInternalServerError, []byte("boom"), nil)
			},
			expectedError: &clients.StatusError{Code: http.StatusInternalServerError, Body: "boom"},
		},
		{
			name: "Transport error",
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

			err := client.AddTrash(context.Background(), binID, 2)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
