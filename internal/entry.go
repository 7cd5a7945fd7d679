package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/mcpserver"
	"github.com/starford/ansuz/internal/site"
	"github.com/starford/ansuz/internal/storage"
)

// setup applies options, validates the config, initializes the JSON
// logger, and wires the builder over the configured directories.
func setup(opts []Option) (*Config, *slog.Logger, *storage.NoteDir, *site.Builder, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, nil, nil, nil, fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("notes_path", cfg.Notes.Path),
		slog.String("output_path", cfg.Output.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	notes, err := storage.NewNoteDir(cfg.Notes.Path)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("init notes dir: %w", err)
	}
	pages, err := storage.NewPageDir(cfg.Output.Path)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("init output dir: %w", err)
	}

	builder := site.NewBuilder(notes, pages, logger)
	return cfg, logger, notes, builder, nil
}

// RunBuild executes one synchronous build pass and exits.
func RunBuild(_ context.Context, opts ...Option) error {
	_, _, _, builder, err := setup(opts)
	if err != nil {
		return err
	}
	return builder.Build()
}

// RunWatch runs an initial build, then rebuilds on note changes until
// interrupted.
func RunWatch(ctx context.Context, opts ...Option) error {
	_, logger, notes, builder, err := setup(opts)
	if err != nil {
		return err
	}

	if err := builder.Build(); err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	watchCtx, cancel := context.WithCancel(gCtx)
	defer cancel()

	g.Go(func() error {
		return builder.Watch(watchCtx, notes.Root())
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
		}
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Watch error", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// RunMCP syncs the search index and serves the MCP tools over stdio.
func RunMCP(_ context.Context, opts ...Option) error {
	cfg, logger, notes, builder, err := setup(opts)
	if err != nil {
		return err
	}

	if err := notes.Ensure(); err != nil {
		return err
	}

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	if err := index.Sync(db, notes, logger); err != nil {
		logger.Warn("initial sync failed", slog.String("error", err.Error()))
	}

	srv := mcpserver.New(notes, db, builder, logger)
	logger.Info("MCP server starting on stdio")
	return srv.ServeStdio()
}
