package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mateprofit/config"
	"github.com/guttosm/mateprofit/internal/api"
	"github.com/guttosm/mateprofit/internal/metrics"
	"github.com/guttosm/mateprofit/internal/service"
	"github.com/guttosm/mateprofit/internal/storage"
)

// InitializeApp sets up the API mode dependencies and returns a configured
// Gin router, a cleanup function for graceful shutdown, and any error.
//
// Responsibilities:
//   - Connects to PostgreSQL (run journal).
//   - Builds repository → service → handler → router.
//   - Registers health/readiness probes and the /metrics endpoint.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewRunsRepository(db)
	rec := metrics.New()
	svc := service.NewProfitService(repo, rec)
	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, api.RouterConfig{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		Metrics:            rec,
	})
	api.NewHealthHandler(repo.Ping).Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}

// InitializeProfitService builds the service used by calculate mode. The
// journal is only connected when cfg.Ledger.JournalEnabled is set; otherwise
// the service computes without recording and cleanup is a no-op.
func InitializeProfitService(cfg config.Config) (service.ProfitService, func(), error) {
	if !cfg.Ledger.JournalEnabled {
		return service.NewProfitService(nil, nil), func() {}, nil
	}

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize journal: %w", err)
	}

	svc := service.NewProfitService(storage.NewRunsRepository(db), nil)
	return svc, func() { _ = db.Close() }, nil
}
