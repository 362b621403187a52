package main

//
//  @title           mateprofit API
//  @version         1.0
//  @description     Matecoin trade ledger: profit calculation and run journal.
//  @termsOfService  https://github.com/guttosm/mateprofit
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/mateprofit
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        profit
//  @tag.description Profit calculation and journaled runs
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/mateprofit/config"
	"github.com/guttosm/mateprofit/internal/app"
	"github.com/guttosm/mateprofit/internal/ledger"
	"github.com/guttosm/mateprofit/internal/logger"
)

// initProfitService is swapped in tests.
var initProfitService = app.InitializeProfitService

// newServer builds the HTTP server for api mode.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// serve runs server until ctx is cancelled or the listener fails, then shuts
// it down and calls cleanup.
//
// The listener and the shutdown watcher share an errgroup, so a listen error
// also triggers the shutdown path.
func serve(ctx context.Context, server *http.Server, cleanup func()) error {
	defer cleanup()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.L().Info().Msg("server exited gracefully")
	return nil
}

// runCalculate writes profit.json for input and, when the journal is
// enabled, records the run.
func runCalculate(ctx context.Context, cfg config.Config, input string) (ledger.Report, error) {
	start := time.Now()

	rep, err := ledger.ProcessFile(input, ledger.OutputFile)
	if err != nil {
		return rep, err
	}

	svc, cleanup, err := initProfitService(cfg)
	if err != nil {
		return rep, err
	}
	defer cleanup()

	run, err := svc.Record(ctx, input, rep)
	if err != nil {
		return rep, err
	}

	logger.L().Info().
		Str("run_id", run.ID).
		Str("input", input).
		Str("output", ledger.OutputFile).
		Int("trades", rep.TradeCount).
		Str("earned_money", rep.Result.EarnedMoney).
		Str("matecoin_account", rep.Result.MatecoinAccount).
		Bool("journaled", cfg.Ledger.JournalEnabled).
		Dur("elapsed", time.Since(start)).
		Msg("profit calculated")
	return rep, nil
}

// runMigrate applies the goose migrations in cfg.Postgres.MigrationsDir.
func runMigrate(cfg config.Config) error {
	db, err := app.InitPostgres(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return app.Migrate(db, cfg.Postgres.MigrationsDir)
}

// main is the entry point of the mateprofit application.
//
// Modes (selected via --mode flag):
//   - calculate: Reads --input and writes profit.json in the working directory.
//   - api:       Starts the REST API.
//   - migrate:   Applies the run journal migrations.
//
// Flags:
//   - --mode:  Execution mode. Default: "calculate".
//   - --input: Trade file for calculate mode. Defaults to LEDGER_INPUT.
//   - --port:  Port for the API server. Defaults to SERVER_PORT.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "calculate", "Mode: calculate, api or migrate")
	input := flag.String("input", config.AppConfig.Ledger.Input, "Trade file read by calculate mode")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "calculate":
		if _, err := runCalculate(ctx, config.AppConfig, *input); err != nil {
			logger.L().Fatal().Err(err).Str("input", *input).Msg("profit calculation failed")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		if err := serve(ctx, newServer(router, *port), cleanup); err != nil {
			logger.L().Fatal().Err(err).Msg("server error")
		}

	case "migrate":
		if err := runMigrate(config.AppConfig); err != nil {
			logger.L().Fatal().Err(err).Msg("migration failed")
		}
		logger.L().Info().Str("dir", config.AppConfig.Postgres.MigrationsDir).Msg("migrations applied")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
