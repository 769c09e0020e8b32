package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ecorecycle/smartbin/internal/config"
	"github.com/ecorecycle/smartbin/internal/domain"
	"github.com/ecorecycle/smartbin/internal/transport"
)

type mocks struct {
	detectionRepo *MockDetectionRepo
	usageRepo     *MockUsageRepo
	stats         *MockStats
	propagator    *MockPropagator
	subscriber    *MockSubscriber
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		detectionRepo: NewMockDetectionRepo(ctrl),
		usageRepo:     NewMockUsageRepo(ctrl),
		stats:         NewMockStats(ctrl),
		propagator:    NewMockPropagator(ctrl),
		subscriber:    NewMockSubscriber(ctrl),
	}
	cfg := &config.Config{AwardPoints: 5}
	service := New(cfg, m.detectionRepo, m.usageRepo, m.stats, m.propagator, m.subscriber)
	defer ctrl.Finish()
	return service, m
}

func TestService_OnDetectionEvent(t *testing.T) {
	service, m := NewMock(t)
	binID := uuid.New()
	topic := fmt.Sprintf("bin/%s/detected", binID)

	tests := []struct {
		name          string
		payload       string
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Malformed payload",
			payload:       `{not json`,
			prepareMock:   func() {},
			expectedError: ErrMalformedPayload,
		},
		{
			name:          "Missing bin id",
			payload:       `{"user_code": "SB-1234", "material": "plastic"}`,
			prepareMock:   func() {},
			expectedError: ErrMissingRequiredField,
		},
		{
			name:          "Missing user code",
			payload:       fmt.Sprintf(`{"bin_id": "%s", "material": "plastic"}`, binID),
			prepareMock:   func() {},
			expectedError: ErrMissingRequiredField,
		},
		{
			name:          "Invalid bin identifier",
			payload:       `{"bin_id": "not-a-uuid", "user_code": "SB-1234"}`,
			prepareMock:   func() {},
			expectedError: ErrInvalidIdentifier,
		},
		{
			name:    "Detection accepted",
			payload: fmt.Sprintf(`{"bin_id": "%s", "user_code": "SB-1234", "material": "plastic", "confidence": 0.92}`, binID),
			prepareMock: func() {
				m.detectionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, d *domain.Detection) (bool, error) {
						assert.Equal(t, binID, d.BinID)
						assert.Equal(t, "SB-1234", d.UserCode)
						assert.Equal(t, domain.MaterialPlastic, d.Material)
						assert.NotEmpty(t, d.EventKey)
						return true, nil
					})
				m.stats.EXPECT().Record(gomock.Any(), domain.MaterialPlastic, 5).Return(nil)
				m.usageRepo.EXPECT().CompleteLatestOpen(gomock.Any(), binID).Return(true, nil)
				m.propagator.EXPECT().Enqueue(gomock.Any())
			},
			expectedError: nil,
		},
		{
			name:    "Legacy field names accepted",
			payload: fmt.Sprintf(`{"bin_id": "%s", "user_nfc_code": "SB-5678", "material_type": "glass"}`, binID),
			prepareMock: func() {
				m.detectionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, d *domain.Detection) (bool, error) {
						assert.Equal(t, "SB-5678", d.UserCode)
						assert.Equal(t, domain.MaterialGlass, d.Material)
						return true, nil
					})
				m.stats.EXPECT().Record(gomock.Any(), domain.MaterialGlass, 5).Return(nil)
				m.usageRepo.EXPECT().CompleteLatestOpen(gomock.Any(), binID).Return(true, nil)
				m.propagator.EXPECT().Enqueue(gomock.Any())
			},
			expectedError: nil,
		},
		{
			name:    "Unknown material normalized to other",
			payload: fmt.Sprintf(`{"bin_id": "%s", "user_code": "SB-1234", "material": "styrofoam"}`, binID),
			prepareMock: func() {
				m.detectionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, d *domain.Detection) (bool, error) {
						assert.Equal(t, domain.MaterialOther, d.Material)
						return true, nil
					})
				m.stats.EXPECT().Record(gomock.Any(), domain.MaterialOther, 5).Return(nil)
				m.usageRepo.EXPECT().CompleteLatestOpen(gomock.Any(), binID).Return(false, nil)
				m.propagator.EXPECT().Enqueue(gomock.Any())
			},
			expectedError: nil,
		},
		{
			name:    "Duplicate event dropped before side effects",
			payload: fmt.Sprintf(`{"bin_id": "%s", "user_code": "SB-1234", "material": "plastic"}`, binID),
			prepareMock: func() {
				m.detectionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedError: nil,
		},
		{
			name:    "Persistence failure surfaces",
			payload: fmt.Sprintf(`{"bin_id": "%s", "user_code": "SB-1234", "material": "plastic"}`, binID),
			prepareMock: func() {
				m.detectionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:    "Stats failure does not block propagation",
			payload: fmt.Sprintf(`{"bin_id": "%s", "user_code": "SB-1234", "material": "plastic"}`, binID),
			prepareMock: func() {
				m.detectionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(true, nil)
				m.stats.EXPECT().Record(gomock.Any(), domain.MaterialPlastic, 5).Return(errors.New("some error"))
				m.usageRepo.EXPECT().CompleteLatestOpen(gomock.Any(), binID).Return(true, nil)
				m.propagator.EXPECT().Enqueue(gomock.Any())
			},
			expectedError: nil,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.OnDetectionEvent(context.Background(), topic, []byte(tt.payload), uint16(i+1))
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Start(t *testing.T) {
	service, m := NewMock(t)

	m.subscriber.EXPECT().Subscribe(transport.DetectedWildcard, gomock.Any()).Return(nil)
	assert.NoError(t, service.Start(context.Background()))

	m.subscriber.EXPECT().Subscribe(transport.DetectedWildcard, gomock.Any()).Return(errors.New("not connected"))
	assert.Error(t, service.Start(context.Background()))
}

func TestEventKey(t *testing.T) {
	topic := "bin/123/detected"
	payload := []byte(`{"bin_id": "123"}`)

	// redelivery of the same message collides
	assert.Equal(t, eventKey(topic, payload, 7), eventKey(topic, payload, 7))

	// a genuinely new message does not
	assert.NotEqual(t, eventKey(topic, payload, 7), eventKey(topic, payload, 8))
	assert.NotEqual(t, eventKey(topic, payload, 7), eventKey(topic, []byte(`{"bin_id": "456"}`), 7))
	assert.NotEqual(t, eventKey(topic, payload, 7), eventKey("bin/456/detected", payload, 7))
}
