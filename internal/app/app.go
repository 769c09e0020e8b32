package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ecorecycle/smartbin/internal/config"
	"github.com/ecorecycle/smartbin/internal/handlers"
	"github.com/ecorecycle/smartbin/internal/ingest"
	"github.com/ecorecycle/smartbin/internal/pg"
	"github.com/ecorecycle/smartbin/internal/propagator"
	"github.com/ecorecycle/smartbin/internal/registry"
	"github.com/ecorecycle/smartbin/internal/repo"
	"github.com/ecorecycle/smartbin/internal/rewards"
	"github.com/ecorecycle/smartbin/internal/service"
	"github.com/ecorecycle/smartbin/internal/transport"
	"github.com/ecorecycle/smartbin/pkg/clients"
	"github.com/ecorecycle/smartbin/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	mqtt      *transport.MQTTClient
	ingestor  *ingest.Service
	propagate *propagator.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	mqtt, err := transport.NewMQTTClient(cfg)
	if err != nil {
		zap.L().Error("mqtt connect failed: ", zap.Error(err))
		return fmt.Errorf("can't connect to mqtt broker: %w", err)
	}

	a.cfg = cfg
	a.mqtt = mqtt
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, mqtt)
	a.api = handlers.New(a.srv, mqtt)

	httpClient := clients.NewHTTPClient()
	rewardsClient := rewards.NewClient(cfg.RewardsAddress, httpClient, rewards.DefaultResolvers())
	registryClient := registry.NewClient(cfg.RegistryAddress, httpClient)

	a.propagate = propagator.New(cfg, a.repo.DetectionRepo, rewardsClient, registryClient)
	a.ingestor = ingest.New(cfg, a.repo.DetectionRepo, a.repo.UsageRepo, a.srv.Stats, a.propagate, mqtt)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.propagate.Start(ctx)
	if err := a.ingestor.Start(ctx); err != nil {
		return fmt.Errorf("can't subscribe to detection events: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		a.mqtt.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
