// Package propagator turns persisted detections into remote side effects:
// a points award on the rewards ledger and a capacity update on the bin
// registry. The two calls are independent, there is no transaction across
// them; convergence relies on idempotent retries and the rewarded flag.
package propagator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ecorecycle/smartbin/internal/config"
	"github.com/ecorecycle/smartbin/internal/domain"
	"github.com/ecorecycle/smartbin/internal/registry"
	"github.com/ecorecycle/smartbin/internal/rewards"
	"github.com/ecorecycle/smartbin/pkg/clients"
)

const (
	maxAttempts    = 3
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 5 * time.Second

	// overall budget per record, covering both calls and all retries
	propagationDeadline = 30 * time.Second

	// the sweep only re-drives records older than this, so first attempts
	// still in flight are left alone
	sweepGracePeriod = time.Minute
	sweepLimit       = 1000

	queueSize = 256
)

type DetectionRepo interface {
	MarkRewarded(ctx context.Context, id uuid.UUID, points int) (bool, error)
	FindUnrewarded(ctx context.Context, before time.Time, limit uint32) ([]domain.Detection, error)
}

type RewardsClient interface {
	AddPoints(ctx context.Context, code string, amount int, description string) error
}

type RegistryClient interface {
	AddTrash(ctx context.Context, binID uuid.UUID, liters float64) error
}

// Result reports the per-call outcome of one propagation. Remote errors are
// captured here, never thrown past the propagator's boundary.
type Result struct {
	Rewards  error
	Capacity error
}

func (r Result) Success() bool {
	return r.Rewards == nil && r.Capacity == nil
}

func (r Result) Status() string {
	switch {
	case r.Rewards == nil && r.Capacity == nil:
		return "success"
	case r.Rewards != nil && r.Capacity != nil:
		return "failure"
	default:
		return "partial"
	}
}

type Service struct {
	detectionRepo DetectionRepo
	rewards       RewardsClient
	registry      RegistryClient

	awardPoints   int
	depositLiters float64
	sweepInterval time.Duration

	queue      chan domain.Detection
	workerPool WorkerPoolI
	retry      retrypolicy.RetryPolicy[any]
	inFlight   sync.Map
}

func New(cfg *config.Config, detectionRepo DetectionRepo, rewardsClient RewardsClient, registryClient RegistryClient) *Service {
	retry := retrypolicy.NewBuilder[any]().
		HandleIf(func(_ any, err error) bool { return isTransient(err) }).
		WithBackoff(retryBaseDelay, retryMaxDelay).
		WithMaxAttempts(maxAttempts).
		Build()

	return &Service{
		detectionRepo: detectionRepo,
		rewards:       rewardsClient,
		registry:      registryClient,
		awardPoints:   cfg.AwardPoints,
		depositLiters: cfg.DepositLiters,
		sweepInterval: cfg.SweepInterval,
		queue:         make(chan domain.Detection, queueSize),
		workerPool:    NewWorkerPool(10),
		retry:         retry,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Propagator started")
	go s.run(ctx)
}

// Enqueue hands a freshly persisted detection over for propagation without
// blocking the caller. A full queue is not a loss: the recovery sweep finds
// the record by its rewarded flag.
func (s *Service) Enqueue(detection domain.Detection) {
	select {
	case s.queue <- detection:
	default:
		zap.L().Warn("Propagation queue full, record left for sweep",
			zap.String("detection_id", detection.ID.String()))
	}
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping propagator")
			return
		case detection := <-s.queue:
			s.dispatch(ctx, detection)
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep is the recovery path: any record still unrewarded after the grace
// period is re-driven, whether it was dropped from the queue, failed all
// retries or survived a crash between persistence and the flag update.
func (s *Service) sweep(ctx context.Context) {
	before := time.Now().Add(-sweepGracePeriod)
	detections, err := s.detectionRepo.FindUnrewarded(ctx, before, sweepLimit)
	if err != nil {
		zap.L().Error("Failed to fetch detections for propagation", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, detection := range detections {
		detection := detection
		g.Go(func() error {
			s.dispatch(ctx, detection)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping detections", zap.Error(err))
	}
}

func (s *Service) dispatch(ctx context.Context, detection domain.Detection) {
	if _, loaded := s.inFlight.LoadOrStore(detection.ID, struct{}{}); loaded {
		return
	}

	err := s.workerPool.AddTask(ctx, func() error {
		defer s.inFlight.Delete(detection.ID)
		result := s.Propagate(ctx, detection)
		if !result.Success() {
			return fmt.Errorf("propagation %s for detection %s: rewards=%v capacity=%v",
				result.Status(), detection.ID, result.Rewards, result.Capacity)
		}
		return nil
	})
	if err != nil {
		s.inFlight.Delete(detection.ID)
		zap.L().Error("Failed to schedule propagation", zap.Error(err))
	}
}

// Propagate drives both remote calls for one detection. Each call retries
// transient failures up to the attempt bound; the calls run concurrently and
// a failure of one never blocks or rolls back the other.
func (s *Service) Propagate(ctx context.Context, detection domain.Detection) Result {
	ctx, cancel := context.WithTimeout(ctx, propagationDeadline)
	defer cancel()

	var result Result
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Rewards = s.award(ctx, detection)
	}()
	go func() {
		defer wg.Done()
		result.Capacity = s.updateCapacity(ctx, detection)
	}()
	wg.Wait()

	if result.Success() {
		zap.L().Info("Propagation completed",
			zap.String("detection_id", detection.ID.String()))
	} else {
		zap.L().Warn("Propagation incomplete, record surfaced for reconciliation",
			zap.String("detection_id", detection.ID.String()),
			zap.String("status", result.Status()),
			zap.Errors("errors", []error{result.Rewards, result.Capacity}))
	}
	return result
}

func (s *Service) award(ctx context.Context, detection domain.Detection) error {
	if detection.Rewarded {
		// already satisfied on a previous pass
		return nil
	}

	description := fmt.Sprintf("Trash deposit - %s waste", detection.Material)
	err := failsafe.With(s.retry).WithContext(ctx).Run(func() error {
		return s.rewards.AddPoints(ctx, detection.UserCode, s.awardPoints, description)
	})
	if err != nil {
		if errors.Is(err, rewards.ErrUserNotFound) {
			zap.L().Error("Rewards recipient unknown, award is terminal for this record",
				zap.String("detection_id", detection.ID.String()),
				zap.String("user_code", detection.UserCode))
		}
		return err
	}

	// flag flips only after remote success, never optimistically
	marked, err := s.detectionRepo.MarkRewarded(ctx, detection.ID, s.awardPoints)
	if err != nil {
		return fmt.Errorf("award succeeded but flag update failed: %w", err)
	}
	if !marked {
		zap.L().Info("Detection already marked rewarded",
			zap.String("detection_id", detection.ID.String()))
	}
	return nil
}

func (s *Service) updateCapacity(ctx context.Context, detection domain.Detection) error {
	err := failsafe.With(s.retry).WithContext(ctx).Run(func() error {
		return s.registry.AddTrash(ctx, detection.BinID, s.depositLiters)
	})
	if err != nil && errors.Is(err, registry.ErrBinNotFound) {
		zap.L().Error("Registry does not know bin, capacity update is terminal for this record",
			zap.String("detection_id", detection.ID.String()),
			zap.String("bin_id", detection.BinID.String()))
	}
	return err
}

// isTransient classifies remote failures. NotFound outcomes are terminal,
// 5xx/429 and network errors are retried, everything cancellation-shaped
// stops immediately.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, rewards.ErrUserNotFound) || errors.Is(err, registry.ErrBinNotFound) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *clients.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Transient()
	}
	// connection refused, timeouts, DNS hiccups
	return true
}
