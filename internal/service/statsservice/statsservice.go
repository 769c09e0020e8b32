package statsservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ecorecycle/smartbin/internal/domain"
)

type Repo interface {
	Increment(ctx context.Context, date time.Time, material string, points int) error
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyStats, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Record bumps the rollup for today. Called once per accepted detection,
// before propagation, so "detections seen" counts regardless of whether the
// reward call later succeeds.
func (s *Service) Record(ctx context.Context, material string, points int) error {
	if !domain.KnownMaterial(material) {
		material = domain.MaterialOther
	}
	if err := s.repo.Increment(ctx, s.now(), material, points); err != nil {
		zap.L().Error("failed to record daily stats", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetByDate(ctx context.Context, date time.Time) (*domain.DailyStats, error) {
	return s.repo.GetByDate(ctx, date)
}
