// Package ingest consumes detection events from the transport and turns each
// accepted event into exactly one durable detection record.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecorecycle/smartbin/internal/config"
	"github.com/ecorecycle/smartbin/internal/domain"
	"github.com/ecorecycle/smartbin/internal/transport"
	"github.com/ecorecycle/smartbin/pkg/validate"
)

var (
	ErrMalformedPayload     = errors.New("malformed detection payload")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidIdentifier    = errors.New("invalid bin identifier")
)

type DetectionRepo interface {
	Save(ctx context.Context, detection *domain.Detection) (bool, error)
}

type UsageRepo interface {
	CompleteLatestOpen(ctx context.Context, binID uuid.UUID) (bool, error)
}

type Stats interface {
	Record(ctx context.Context, material string, points int) error
}

type Propagator interface {
	Enqueue(detection domain.Detection)
}

type Subscriber interface {
	Subscribe(topic string, handler transport.Handler) error
}

// event is the inbound wire format. The producer fleet still publishes the
// old field names, both are accepted.
type event struct {
	BinID        string  `json:"bin_id"`
	UserCode     string  `json:"user_code"`
	UserNFCCode  string  `json:"user_nfc_code"`
	Material     string  `json:"material"`
	MaterialType string  `json:"material_type"`
	Confidence   float64 `json:"confidence"`
}

type Service struct {
	detectionRepo DetectionRepo
	usageRepo     UsageRepo
	stats         Stats
	propagator    Propagator
	subscriber    Subscriber
	awardPoints   int
}

func New(cfg *config.Config, detectionRepo DetectionRepo, usageRepo UsageRepo, stats Stats, propagator Propagator, subscriber Subscriber) *Service {
	return &Service{
		detectionRepo: detectionRepo,
		usageRepo:     usageRepo,
		stats:         stats,
		propagator:    propagator,
		subscriber:    subscriber,
		awardPoints:   cfg.AwardPoints,
	}
}

// Start subscribes to detection events from every bin. Rejections are
// terminal per message: logged, never retried.
func (s *Service) Start(ctx context.Context) error {
	return s.subscriber.Subscribe(transport.DetectedWildcard, func(topic string, payload []byte, messageID uint16) {
		if err := s.OnDetectionEvent(ctx, topic, payload, messageID); err != nil {
			zap.L().Warn("detection event rejected",
				zap.String("topic", topic), zap.Error(err))
		}
	})
}

// OnDetectionEvent validates and persists one inbound detection. The broker
// may redeliver an unacknowledged message after a reconnect, so the call is
// safe to repeat: the content-derived event key makes the second insert a
// no-op and nothing downstream runs twice.
func (s *Service) OnDetectionEvent(ctx context.Context, topic string, payload []byte, messageID uint16) error {
	var e event
	if err := json.Unmarshal(payload, &e); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	userCode := e.UserCode
	if userCode == "" {
		userCode = e.UserNFCCode
	}
	if e.BinID == "" || userCode == "" {
		return fmt.Errorf("%w: bin_id=%q user_code=%q", ErrMissingRequiredField, e.BinID, userCode)
	}
	if !validate.IsBinID(e.BinID) {
		return fmt.Errorf("%w: %s", ErrInvalidIdentifier, e.BinID)
	}
	binID, _ := uuid.Parse(e.BinID)

	material := e.Material
	if material == "" {
		material = e.MaterialType
	}
	if !domain.KnownMaterial(material) {
		material = domain.MaterialOther
	}

	detection := domain.Detection{
		ID:         uuid.New(),
		BinID:      binID,
		UserCode:   userCode,
		Material:   material,
		Confidence: e.Confidence,
		EventKey:   eventKey(topic, payload, messageID),
		CreatedAt:  time.Now(),
	}

	inserted, err := s.detectionRepo.Save(ctx, &detection)
	if err != nil {
		return fmt.Errorf("can't persist detection: %w", err)
	}
	if !inserted {
		zap.L().Info("duplicate detection event dropped",
			zap.String("topic", topic), zap.String("event_key", detection.EventKey))
		return nil
	}

	zap.L().Info("detection persisted",
		zap.String("detection_id", detection.ID.String()),
		zap.String("bin_id", binID.String()),
		zap.String("material", material),
		zap.Float64("confidence", e.Confidence))

	// stats count the detection whether or not propagation later succeeds
	if err := s.stats.Record(ctx, material, s.awardPoints); err != nil {
		zap.L().Error("failed to update daily stats", zap.Error(err))
	}

	if _, err := s.usageRepo.CompleteLatestOpen(ctx, binID); err != nil {
		zap.L().Error("failed to complete usage session", zap.Error(err))
	}

	// effects run asynchronously, message acknowledgment is not held up
	s.propagator.Enqueue(detection)

	return nil
}

// eventKey derives an idempotency key from the message itself. The broker
// message id survives redelivery of the same unacknowledged message, so a
// redelivery collides and a genuinely new deposit does not.
func eventKey(topic string, payload []byte, messageID uint16) string {
	h := sha256.New()
	h.Write([]byte(topic))
	h.Write([]byte{0})
	h.Write(payload)
	h.Write([]byte{0})
	var id [2]byte
	binary.BigEndian.PutUint16(id[:], messageID)
	h.Write(id[:])
	return hex.EncodeToString(h.Sum(nil))
}
