package detectionrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecorecycle/smartbin/internal/domain"
	"github.com/ecorecycle/smartbin/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Save inserts the detection. The unique event_key index absorbs broker
// redeliveries: a duplicate insert is a silent no-op and Save reports
// inserted = false.
func (r *Repository) Save(ctx context.Context, detection *domain.Detection) (bool, error) {
	query := `
        INSERT INTO detections (id, bin_id, user_code, material, confidence, points_awarded, rewarded, event_key, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (event_key) DO NOTHING
    `
	var inserted bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			detection.ID, detection.BinID, detection.UserCode, detection.Material,
			detection.Confidence, detection.PointsAwarded, detection.Rewarded,
			detection.EventKey, detection.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't save detection", zap.Error(err))
			return err
		}
		inserted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// MarkRewarded flips the rewarded flag once. The flag is monotonic: the
// WHERE clause makes a second call for the same detection a no-op.
func (r *Repository) MarkRewarded(ctx context.Context, id uuid.UUID, points int) (bool, error) {
	query := `
        UPDATE detections
        SET rewarded = TRUE, points_awarded = $2
        WHERE id = $1 AND NOT rewarded
    `
	tag, err := r.db.Exec(ctx, query, id, points)
	if err != nil {
		zap.L().Error("can't mark detection rewarded", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindUnrewarded returns detections whose reward call has not succeeded yet,
// skipping ones younger than the grace cutoff so in-flight first attempts are
// not re-driven by the sweep.
func (r *Repository) FindUnrewarded(ctx context.Context, before time.Time, limit uint32) ([]domain.Detection, error) {
	query := `
        SELECT id, bin_id, user_code, material, confidence, points_awarded, rewarded, event_key, created_at
        FROM detections
        WHERE NOT rewarded AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, before, int(limit))
	if err != nil {
		zap.L().Error("can't get detections for propagation", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var detections []domain.Detection
	for rows.Next() {
		var d domain.Detection
		err := rows.Scan(&d.ID, &d.BinID, &d.UserCode, &d.Material, &d.Confidence,
			&d.PointsAwarded, &d.Rewarded, &d.EventKey, &d.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan detection row", zap.Error(err))
			return nil, err
		}
		detections = append(detections, d)
	}
	return detections, nil
}

// CountByDate reports how many detections were created on the given calendar date.
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM detections
        WHERE created_at::date = $1::date
    `
	var count int
	if err := r.db.QueryRow(ctx, query, date).Scan(&count); err != nil {
		zap.L().Error("can't count detections by date", zap.Error(err))
		return 0, err
	}
	return count, nil
}
