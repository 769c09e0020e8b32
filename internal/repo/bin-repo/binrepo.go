package binrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

const binColumns = `id, name, location, proximity_tag, capacity_liters, fill_liters, status, is_open, last_opened_at, last_emptied_at, created_at, updated_at`

func scanBin(row pgx.Row) (*domain.Bin, error) {
	var bin domain.Bin
	err := row.Scan(&bin.ID, &bin.Name, &bin.Location, &bin.ProximityTag,
		&bin.CapacityLiters, &bin.FillLiters, &bin.Status, &bin.IsOpen,
		&bin.LastOpenedAt, &bin.LastEmptiedAt, &bin.CreatedAt, &bin.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &bin, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Bin, error) {
	query := `
        SELECT ` + binColumns + `
        FROM bins
        WHERE id = $1
    `
	bin, err := scanBin(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find bin", zap.Error(err))
		return nil, err
	}
	return bin, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Bin, error) {
	query := `
        SELECT ` + binColumns + `
        FROM bins
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get bins", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bins []domain.Bin
	for rows.Next() {
		bin, err := scanBin(rows)
		if err != nil {
			zap.L().Error("can't scan bin row", zap.Error(err))
			return nil, err
		}
		bins = append(bins, *bin)
	}
	return bins, nil
}

func (r *Repository) Update(ctx context.Context, bin *domain.Bin) error {
	query := `
        UPDATE bins
        SET capacity_liters = $1, fill_liters = $2, status = $3, is_open = $4,
            last_opened_at = $5, last_emptied_at = $6, updated_at = NOW()
        WHERE id = $7
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			bin.CapacityLiters, bin.FillLiters, bin.Status, bin.IsOpen,
			bin.LastOpenedAt, bin.LastEmptiedAt, bin.ID)
		if err != nil {
			zap.L().Error("failed to update bin", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
