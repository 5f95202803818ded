package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/compressopts/internal/config"
	"github.com/specialistvlad/compressopts/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	writer config.Writer
}

// NewApp is the constructor for the main application. Translated options are
// written to outW unless the config names an output file; log records go to
// logW through the App's own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, writer config.Writer) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.",
		"format", cfg.Format,
		"workers", cfg.WorkerCount,
	)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		writer: writer,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
