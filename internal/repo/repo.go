package repo

import (
	"github.com/ecorecycle/smartbin/internal/pg"
	binrepo "github.com/ecorecycle/smartbin/internal/repo/bin-repo"
	detectionrepo "github.com/ecorecycle/smartbin/internal/repo/detection-repo"
	statsrepo "github.com/ecorecycle/smartbin/internal/repo/stats-repo"
	usagelogrepo "github.com/ecorecycle/smartbin/internal/repo/usagelog-repo"
	"github.com/ecorecycle/smartbin/internal/service/binservice"
	"github.com/ecorecycle/smartbin/internal/service/statsservice"
)

type Repositories struct {
	// DetectionRepo and UsageRepo are concrete: the ingest pipeline and the
	// propagator each consume their own narrow slice of them.
	DetectionRepo *detectionrepo.Repository
	UsageRepo     *usagelogrepo.Repository
	BinRepo       binservice.Repo
	StatsRepo     statsservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		DetectionRepo: detectionrepo.New(conn, txManager),
		UsageRepo:     usagelogrepo.New(conn),
		BinRepo:       binrepo.New(conn, txManager),
		StatsRepo:     statsrepo.New(conn),
	}
}
