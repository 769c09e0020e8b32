package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ecorecycle/smartbin/internal/pg"
	"github.com/ecorecycle/smartbin/internal/repo"
	"github.com/ecorecycle/smartbin/internal/service/binservice"
	"github.com/ecorecycle/smartbin/internal/service/statsservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	repos.BinRepo = binservice.NewMockRepo(ctrl)
	repos.StatsRepo = statsservice.NewMockRepo(ctrl)

	services := New(repos, binservice.NewMockPublisher(ctrl))

	assert.NotNil(t, services.BinService)
	assert.NotNil(t, services.StatsService)
	assert.NotNil(t, services.Stats)
}
