package usagelogrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	log := &domain.UsageLog{
		ID:       uuid.New(),
		BinID:    uuid.New(),
		UserCode: "SB-1234",
		OpenedAt: time.Now(),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Usage log created",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bin_usage_logs")).
					WithArgs(log.ID, log.BinID, log.UserCode, log.OpenedAt, log.DetectionCompleted).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bin_usage_logs")).
					WithArgs(log.ID, log.BinID, log.UserCode, log.OpenedAt, log.DetectionCompleted).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), log)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_CompleteLatestOpen(t *testing.T) {
	repo, mock := NewMock(t)
	binID := uuid.New()

	tests := []struct {
		name            string
		mockSetup       func()
		expectErr       bool
		expectCompleted bool
	}{
		{
			name: "Open session completed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE bin_usage_logs")).
					WithArgs(binID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr:       false,
			expectCompleted: true,
		},
		{
			name: "No open session",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE bin_usage_logs")).
					WithArgs(binID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr:       false,
			expectCompleted: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE bin_usage_logs")).
					WithArgs(binID).
					WillReturnError(errors.New("database error"))
			},
			expectErr:       true,
			expectCompleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			completed, err := repo.CompleteLatestOpen(context.Background(), binID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectCompleted, completed)
		})
	}
}

func TestRepository_ListByBin(t *testing.T) {
	repo, mock := NewMock(t)
	binID := uuid.New()
	timeNow := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Logs found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "bin_id", "user_code", "opened_at", "closed_at", "detection_completed"}).
					AddRow(uuid.New(), binID, "SB-1234", timeNow, &timeNow, true).
					AddRow(uuid.New(), binID, "SB-5678", timeNow, nil, false)
				mock.ExpectQuery(regexp.QuoteMeta("FROM bin_usage_logs")).
					WithArgs(binID).
					WillReturnRows(rows)
			},
			expectErr: false,
			expectLen: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bin_usage_logs")).
					WithArgs(binID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectLen: 0,
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "bin_id", "user_code", "opened_at", "closed_at", "detection_completed"}).
					AddRow(uuid.New(), binID, "SB-1234", timeNow, nil, "invalid_value")
				mock.ExpectQuery(regexp.QuoteMeta("FROM bin_usage_logs")).
					WithArgs(binID).
					WillReturnRows(rows)
			},
			expectErr: true,
			expectLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			logs, err := repo.ListByBin(context.Background(), binID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, logs, tt.expectLen)
		})
	}
}
