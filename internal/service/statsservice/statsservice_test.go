package statsservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ecorecycle/smartbin/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestService_Record(t *testing.T) {
	service, repo := NewMock(t)
	fixed := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	tests := []struct {
		name          string
		material      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Known material recorded as is",
			material: domain.MaterialPlastic,
			prepareMock: func() {
				repo.EXPECT().Increment(gomock.Any(), fixed, domain.MaterialPlastic, 5).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "Unknown material recorded as other",
			material: "styrofoam",
			prepareMock: func() {
				repo.EXPECT().Increment(gomock.Any(), fixed, domain.MaterialOther, 5).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "Empty material recorded as other",
			material: "",
			prepareMock: func() {
				repo.EXPECT().Increment(gomock.Any(), fixed, domain.MaterialOther, 5).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "Repository error",
			material: domain.MaterialGlass,
			prepareMock: func() {
				repo.EXPECT().Increment(gomock.Any(), fixed, domain.MaterialGlass, 5).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Record(context.Background(), tt.material, 5)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_GetByDate(t *testing.T) {
	service, repo := NewMock(t)
	date := time.Now()
	stats := &domain.DailyStats{Date: date, TotalDetections: 3}

	repo.EXPECT().GetByDate(gomock.Any(), date).Return(stats, nil)
	got, err := service.GetByDate(context.Background(), date)
	assert.NoError(t, err)
	assert.Equal(t, stats, got)

	repo.EXPECT().GetByDate(gomock.Any(), date).Return(nil, errors.New("some error"))
	_, err = service.GetByDate(context.Background(), date)
	assert.Error(t, err)
}
