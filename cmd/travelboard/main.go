package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/travelboard/internal/cli"
	"github.com/alexanderramin/travelboard/internal/config"
	"github.com/alexanderramin/travelboard/internal/db"
	"github.com/alexanderramin/travelboard/internal/repository"
	"github.com/alexanderramin/travelboard/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd(bootstrap)
	return rootCmd.ExecuteContext(ctx)
}

// bootstrap opens a fresh session store, wires the destination service
// and seeds it from cfg. The returned cleanup flushes the log and drops
// the session.
func bootstrap(ctx context.Context, cfg config.Config) (*cli.App, func(), error) {
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}

	database, err := db.OpenSession()
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("opening session store: %w", err)
	}

	repo := repository.NewSQLiteDestinationRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	destinations := service.NewDestinationService(repo, uow, service.NewLogUseCaseObserver(logger))

	cleanup := func() {
		_ = database.Close()
		_ = logger.Sync()
	}

	if err := destinations.Seed(ctx, cfg.SeedDestinations()); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("seeding destinations: %w", err)
	}
	logger.Info("session started", zap.Bool("seeded", cfg.Seed))

	return &cli.App{Destinations: destinations, Now: time.Now}, cleanup, nil
}

// newLogger returns a JSON file logger when a log file is configured and a
// no-op logger otherwise, since the dashboard owns the terminal.
func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	if lc.File == "" {
		return zap.NewNop(), nil
	}
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.OutputPaths = []string{lc.File}
	zc.ErrorOutputPaths = []string{lc.File}
	return zc.Build()
}
