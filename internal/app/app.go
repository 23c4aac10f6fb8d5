package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/modgraphgo/internal/config"
	"github.com/vk/modgraphgo/internal/ctxlog"
	"github.com/vk/modgraphgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	manifest *config.Manifest
	config   *Config
}

// NewApp is the constructor for the main application. It loads the manifest
// eagerly so that declaration problems surface before any resolution work.
// A failure to load is a fatal startup error and panics; main recovers it.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	manifest, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load manifest: %w", err))
	}
	logger.Debug("Manifest loaded and translated into unified model.", "modules", len(manifest.Modules))

	reg := registry.New()
	if _, err := reg.Lookup(appConfig.Output); err != nil {
		panic(err)
	}
	logger.Debug("Output format resolved.", "format", appConfig.Output)

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		manifest: manifest,
		config:   appConfig,
	}
}

// Manifest returns the loaded manifest. This is primarily for testing.
func (a *App) Manifest() *config.Manifest {
	return a.manifest
}
