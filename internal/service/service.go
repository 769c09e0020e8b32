package service

import (
	"github.com/ecorecycle/smartbin/internal/handlers/bins"
	"github.com/ecorecycle/smartbin/internal/handlers/stats"

	"github.com/ecorecycle/smartbin/internal/repo"
	binservice "github.com/ecorecycle/smartbin/internal/service/binservice"
	statsservice "github.com/ecorecycle/smartbin/internal/service/statsservice"
)

type Services struct {
	BinService   bins.Service
	StatsService stats.Service

	// Stats is the concrete aggregator, needed by the ingest pipeline
	// which records through a narrower interface.
	Stats *statsservice.Service
}

func New(repo *repo.Repositories, publisher binservice.Publisher) *Services {
	statsService := statsservice.New(repo.StatsRepo)
	binService := binservice.New(repo.BinRepo, repo.UsageRepo, publisher)

	return &Services{
		BinService:   binService,
		StatsService: statsService,
		Stats:        statsService,
	}
}
