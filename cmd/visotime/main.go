package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alexanderramin/visotime/internal/cli"
	"github.com/alexanderramin/visotime/internal/config"
	"github.com/alexanderramin/visotime/internal/db"
	"github.com/alexanderramin/visotime/internal/repository"
	"github.com/alexanderramin/visotime/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog, err := config.LoadCatalog(cfg.ProjectsFile)
	if err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file next to the data.
	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	entries := service.NewEntryService(store, service.EntryServiceOptions{
		MaxDailyHours: cfg.MaxDailyHours,
		Delays: service.Delays{
			List:   cfg.Latency.List,
			Create: cfg.Latency.Create,
			Delete: cfg.Latency.Delete,
		},
	}, observer)

	app := &cli.App{
		Entries:       entries,
		Catalog:       catalog,
		MaxDailyHours: cfg.MaxDailyHours,
	}

	// Detect interactive terminal for the bare TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func openStore(cfg config.Config, logger *slog.Logger) (repository.EntryStore, func(), error) {
	switch cfg.Backend {
	case config.BackendBadger:
		bdb, err := db.OpenBadger(cfg.BadgerDir, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("opening badger store: %w", err)
		}
		return repository.NewBadgerEntryStore(bdb), func() { _ = bdb.Close() }, nil

	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		uow := db.NewSQLiteUnitOfWork(database)
		return repository.NewSQLiteEntryStore(database, uow), func() { _ = database.Close() }, nil
	}
}

func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if !cfg.LogCalls {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return logger, func() { _ = f.Close() }, nil
}
