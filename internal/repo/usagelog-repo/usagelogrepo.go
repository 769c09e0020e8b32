package usagelogrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecorecycle/smartbin/internal/domain"
	"github.com/ecorecycle/smartbin/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, log *domain.UsageLog) error {
	query := `
        INSERT INTO bin_usage_logs (id, bin_id, user_code, opened_at, detection_completed)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, log.ID, log.BinID, log.UserCode, log.OpenedAt, log.DetectionCompleted)
	if err != nil {
		zap.L().Error("can't create usage log", zap.Error(err))
		return err
	}
	return nil
}

// CompleteLatestOpen stamps the newest open session for the bin as completed
// by a detection. Returns false when no open session exists, which happens
// for deposits made without an app-driven open.
func (r *Repository) CompleteLatestOpen(ctx context.Context, binID uuid.UUID) (bool, error) {
	query := `
        UPDATE bin_usage_logs
        SET closed_at = NOW(), detection_completed = TRUE
        WHERE id = (
            SELECT id
            FROM bin_usage_logs
            WHERE bin_id = $1 AND closed_at IS NULL
            ORDER BY opened_at DESC
            LIMIT 1
        )
    `
	tag, err := r.db.Exec(ctx, query, binID)
	if err != nil {
		zap.L().Error("can't complete usage log", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListByBin(ctx context.Context, binID uuid.UUID) ([]domain.UsageLog, error) {
	query := `
        SELECT id, bin_id, user_code, opened_at, closed_at, detection_completed
        FROM bin_usage_logs
        WHERE bin_id = $1
        ORDER BY opened_at DESC
    `
	rows, err := r.db.Query(ctx, query, binID)
	if err != nil {
		zap.L().Error("can't get usage logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.UsageLog
	for rows.Next() {
		var log domain.UsageLog
		err := rows.Scan(&log.ID, &log.BinID, &log.UserCode, &log.OpenedAt, &log.ClosedAt, &log.DetectionCompleted)
		if err != nil {
			zap.L().Error("can't scan usage log row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, nil
}
