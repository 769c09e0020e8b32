package statsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ecorecycle/smartbin/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Increment(t *testing.T) {
	repo, mock := NewMock(t)
	date := time.Now()

	tests := []struct {
		name      string
		material  string
		mockSetup func()
		expectErr bool
	}{
		{
			name:     "Plastic detection counted",
			material: domain.MaterialPlastic,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("plastic_count")).
					WithArgs(date, 5).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name:     "Unknown material falls into other",
			material: "styrofoam",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("other_count")).
					WithArgs(date, 5).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name:     "Database error",
			material: domain.MaterialGlass,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("glass_count")).
					WithArgs(date, 5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Increment(context.Background(), date, tt.material, 5)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_GetByDate(t *testing.T) {
	repo, mock := NewMock(t)
	date := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.DailyStats
	}{
		{
			name: "Stats exist",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"date", "total_detections", "plastic_count", "paper_count", "glass_count", "metal_count", "organic_count", "other_count", "total_points_awarded", "updated_at"}).
					AddRow(date, 10, 4, 2, 1, 1, 1, 1, 50, date)
				mock.ExpectQuery(regexp.QuoteMeta("FROM daily_stats")).
					WithArgs(date).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.DailyStats{
				Date:               date,
				TotalDetections:    10,
				PlasticCount:       4,
				PaperCount:         2,
				GlassCount:         1,
				MetalCount:         1,
				OrganicCount:       1,
				OtherCount:         1,
				TotalPointsAwarded: 50,
				UpdatedAt:          date,
			},
		},
		{
			name: "No stats for the date",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM daily_stats")).
					WithArgs(date).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM daily_stats")).
					WithArgs(date).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			stats, err := repo.GetByDate(context.Background(), date)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, stats)
		})
	}
}
