package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/synroute/internal/chemlib"
	"github.com/vk/synroute/internal/config"
	"github.com/vk/synroute/internal/ctxlog"
	"github.com/vk/synroute/internal/planner"
	"github.com/vk/synroute/internal/registry"
	"github.com/vk/synroute/internal/render"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	planner  *planner.Planner
	renderer *render.Renderer
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a validated
// knowledge base. Fatal startup problems (unloadable or inconsistent rule
// libraries) panic; the entrypoint recovers to present a clean message.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := &config.Model{}
	if !cfg.NoBuiltin {
		model = chemlib.Builtin()
		logger.Debug("Builtin rule library constructed.",
			"compounds", len(model.Compounds), "rules", len(model.Rules))
	}

	if cfg.LibraryPath != "" {
		extra, err := loader.Load(ctx, cfg.LibraryPath)
		if err != nil {
			// A failure to load a rule library is a fatal startup error.
			panic(fmt.Errorf("failed to load rule library: %w", err))
		}
		model.Merge(extra)
		logger.Debug("External rule libraries merged.",
			"compounds", len(model.Compounds), "rules", len(model.Rules))
	}

	reg := registry.New()
	reg.PopulateFromModel(model)
	if err := reg.Validate(ctx); err != nil {
		// An inconsistent knowledge base (rules naming unknown compounds)
		// is a data-entry error; refuse to start on it.
		panic(err)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		planner:  planner.New(reg),
		renderer: render.New(reg),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Planner returns the application's planner. This is primarily for testing.
func (a *App) Planner() *planner.Planner {
	return a.planner
}
