package statsrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
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

var materialColumns = map[string]string{
	domain.MaterialPlastic: "plastic_count",
	domain.MaterialPaper:   "paper_count",
	domain.MaterialGlass:   "glass_count",
	domain.MaterialMetal:   "metal_count",
	domain.MaterialOrganic: "organic_count",
	domain.MaterialOther:   "other_count",
}

// Increment bumps the rollup for the given date in a single upsert, so
// concurrent detections on the same date cannot lose increments.
func (r *Repository) Increment(ctx context.Context, date time.Time, material string, points int) error {
	column, ok := materialColumns[material]
	if !ok {
		column = materialColumns[domain.MaterialOther]
	}

	query := fmt.Sprintf(`
        INSERT INTO daily_stats (date, total_detections, %[1]s, total_points_awarded, updated_at)
        VALUES ($1::date, 1, 1, $2, NOW())
        ON CONFLICT (date) DO UPDATE
        SET total_detections = daily_stats.total_detections + 1,
            %[1]s = daily_stats.%[1]s + 1,
            total_points_awarded = daily_stats.total_points_awarded + $2,
            updated_at = NOW()
    `, column)

	if _, err := r.db.Exec(ctx, query, date, points); err != nil {
		zap.L().Error("can't increment daily stats", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.DailyStats, error) {
	query := `
        SELECT date, total_detections, plastic_count, paper_count, glass_count,
               metal_count, organic_count, other_count, total_points_awarded, updated_at
        FROM daily_stats
        WHERE date = $1::date
    `
	row := r.db.QueryRow(ctx, query, date)

	var stats domain.DailyStats
	err := row.Scan(&stats.Date, &stats.TotalDetections, &stats.PlasticCount,
		&stats.PaperCount, &stats.GlassCount, &stats.MetalCount, &stats.OrganicCount,
		&stats.OtherCount, &stats.TotalPointsAwarded, &stats.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get daily stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
