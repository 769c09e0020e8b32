package binservice

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecorecycle/smartbin/internal/domain"
	"github.com/ecorecycle/smartbin/internal/transport"
)

const (
	// Hysteresis band: full at 90%, back to active only below 80%,
	// so the status does not flap around the boundary.
	fullThresholdPercent   = 90
	activeThresholdPercent = 80
)

var (
	ErrBinNotFound       = errors.New("bin not found")
	ErrBinUnavailable    = errors.New("bin is not available")
	ErrProximityMismatch = errors.New("proximity tag mismatch")
	ErrAlreadyClosed     = errors.New("bin is already closed")
	ErrInvalidFillLevel  = errors.New("fill level must be between 0 and 100")
	ErrInvalidVolume     = errors.New("volume must be positive")
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Bin, error)
	List(ctx context.Context) ([]domain.Bin, error)
	Update(ctx context.Context, bin *domain.Bin) error
}

type UsageRepo interface {
	Create(ctx context.Context, log *domain.UsageLog) error
	ListByBin(ctx context.Context, binID uuid.UUID) ([]domain.UsageLog, error)
}

type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Command is the outbound bin command payload.
type Command struct {
	BinID    string `json:"bin_id"`
	Command  string `json:"command"`
	UserCode string `json:"user_code,omitempty"`
}

type Service struct {
	repo      Repo
	usageRepo UsageRepo
	publisher Publisher

	// one writer per bin id, so an open cannot race a fill update
	locks sync.Map
}

func New(repo Repo, usageRepo UsageRepo, publisher Publisher) *Service {
	return &Service{
		repo:      repo,
		usageRepo: usageRepo,
		publisher: publisher,
	}
}

func (s *Service) lockBin(id uuid.UUID) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Open starts a deposit session. Local state commits even when the command
// publish fails: session bookkeeping must not be blocked by a transient bus
// outage, the hardware converges on the next command.
func (s *Service) Open(ctx context.Context, binID uuid.UUID, userCode, proximityTag string) (*domain.Bin, error) {
	defer s.lockBin(binID)()

	bin, err := s.repo.FindByID(ctx, binID)
	if err != nil {
		return nil, err
	}
	if bin == nil {
		return nil, ErrBinNotFound
	}
	if bin.IsOpen {
		// idempotent: no second command, no second usage log
		zap.L().Info("bin already open", zap.String("bin_id", binID.String()))
		return bin, nil
	}
	if bin.Status != domain.BinStatusActive {
		zap.L().Info("bin unavailable", zap.String("bin_id", binID.String()), zap.String("status", bin.Status))
		return nil, ErrBinUnavailable
	}
	if proximityTag != "" && proximityTag != bin.ProximityTag {
		return nil, ErrProximityMismatch
	}

	s.publishCommand(binID, "open", userCode)

	now := time.Now()
	bin.IsOpen = true
	bin.LastOpenedAt = &now
	if err := s.repo.Update(ctx, bin); err != nil {
		return nil, err
	}

	log := &domain.UsageLog{
		ID:       uuid.New(),
		BinID:    binID,
		UserCode: userCode,
		OpenedAt: now,
	}
	if err := s.usageRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	return bin, nil
}

func (s *Service) Close(ctx context.Context, binID uuid.UUID) (*domain.Bin, error) {
	defer s.lockBin(binID)()

	bin, err := s.repo.FindByID(ctx, binID)
	if err != nil {
		return nil, err
	}
	if bin == nil {
		return nil, ErrBinNotFound
	}
	if !bin.IsOpen {
		return nil, ErrAlreadyClosed
	}

	s.publishCommand(binID, "close", "")

	bin.IsOpen = false
	if err := s.repo.Update(ctx, bin); err != nil {
		return nil, err
	}
	return bin, nil
}

func (s *Service) publishCommand(binID uuid.UUID, command, userCode string) {
	var topic string
	if command == "open" {
		topic = transport.OpenTopic(binID)
	} else {
		topic = transport.CloseTopic(binID)
	}

	payload, err := json.Marshal(Command{BinID: binID.String(), Command: command, UserCode: userCode})
	if err != nil {
		zap.L().Error("can't marshal bin command", zap.Error(err))
		return
	}
	if err := s.publisher.Publish(topic, payload); err != nil {
		zap.L().Warn("bin command publish failed, local state committed anyway",
			zap.String("topic", topic), zap.Error(err))
		return
	}
	zap.L().Info("bin command published", zap.String("topic", topic))
}

// UpdateFillLevel sets the fill from a reported percentage.
func (s *Service) UpdateFillLevel(ctx context.Context, binID uuid.UUID, percent float64) (*domain.Bin, error) {
	if percent < 0 || percent > 100 {
		return nil, ErrInvalidFillLevel
	}

	defer s.lockBin(binID)()

	bin, err := s.repo.FindByID(ctx, binID)
	if err != nil {
		return nil, err
	}
	if bin == nil {
		return nil, ErrBinNotFound
	}

	bin.FillLiters = bin.CapacityLiters * percent / 100
	s.applyFillStatus(bin)

	if err := s.repo.Update(ctx, bin); err != nil {
		return nil, err
	}
	return bin, nil
}

// AddTrash adds a deposit volume. Reaching capacity clamps the fill and
// reports nowFull so the caller can tell the bin filled up on this deposit.
func (s *Service) AddTrash(ctx context.Context, binID uuid.UUID, liters float64) (*domain.Bin, bool, error) {
	if liters <= 0 {
		return nil, false, ErrInvalidVolume
	}

	defer s.lockBin(binID)()

	bin, err := s.repo.FindByID(ctx, binID)
	if err != nil {
		return nil, false, err
	}
	if bin == nil {
		return nil, false, ErrBinNotFound
	}

	nowFull := false
	bin.FillLiters += liters
	if bin.FillLiters >= bin.CapacityLiters {
		bin.FillLiters = bin.CapacityLiters
		bin.Status = domain.BinStatusFull
		nowFull = true
	} else {
		s.applyFillStatus(bin)
	}

	if err := s.repo.Update(ctx, bin); err != nil {
		return nil, false, err
	}
	if nowFull {
		zap.L().Info("bin is now full", zap.String("bin_id", binID.String()))
	}
	return bin, nowFull, nil
}

// IncreaseCapacity raises total capacity. Fill is absolute liters, so the
// derived percentage drops and the status is re-evaluated against it.
func (s *Service) IncreaseCapacity(ctx context.Context, binID uuid.UUID, liters float64) (*domain.Bin, error) {
	if liters <= 0 {
		return nil, ErrInvalidVolume
	}

	defer s.lockBin(binID)()

	bin, err := s.repo.FindByID(ctx, binID)
	if err != nil {
		return nil, err
	}
	if bin == nil {
		return nil, ErrBinNotFound
	}

	bin.CapacityLiters += liters
	s.applyFillStatus(bin)

	if err := s.repo.Update(ctx, bin); err != nil {
		return nil, err
	}
	return bin, nil
}

func (s *Service) Empty(ctx context.Context, binID uuid.UUID) (*domain.Bin, error) {
	defer s.lockBin(binID)()

	bin, err := s.repo.FindByID(ctx, binID)
	if err != nil {
		return nil, err
	}
	if bin == nil {
		return nil, ErrBinNotFound
	}

	now := time.Now()
	bin.FillLiters = 0
	bin.LastEmptiedAt = &now
	if bin.Status == domain.BinStatusFull {
		bin.Status = domain.BinStatusActive
	}

	if err := s.repo.Update(ctx, bin); err != nil {
		return nil, err
	}
	return bin, nil
}

func (s *Service) applyFillStatus(bin *domain.Bin) {
	percent := bin.FillPercent()
	switch {
	case percent >= fullThresholdPercent:
		bin.Status = domain.BinStatusFull
	case bin.Status == domain.BinStatusFull && percent < activeThresholdPercent:
		bin.Status = domain.BinStatusActive
	}
}

func (s *Service) Get(ctx context.Context, binID uuid.UUID) (*domain.Bin, error) {
	bin, err := s.repo.FindByID(ctx, binID)
	if err != nil {
		return nil, err
	}
	if bin == nil {
		return nil, ErrBinNotFound
	}
	return bin, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Bin, error) {
	return s.repo.List(ctx)
}

func (s *Service) Usage(ctx context.Context, binID uuid.UUID) ([]domain.UsageLog, error) {
	return s.usageRepo.ListByBin(ctx, binID)
}
