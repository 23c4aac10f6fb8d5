package app

import (
	"context"
	"fmt"

	"github.com/vk/modgraphgo/internal/ctxlog"
	"github.com/vk/modgraphgo/internal/graph"
)

// Run executes the main application logic: register every declared module,
// validate the graph, and render the requested output. Resolver errors are
// returned unwrapped enough for the caller to match them with errors.As.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	resolver := graph.New()
	for _, m := range a.manifest.Modules {
		err := resolver.Register(&graph.Module{
			Name:        m.Name,
			Artifact:    m.Artifact,
			Description: m.Description,
			DependsOn:   m.DependsOn,
		})
		if err != nil {
			return fmt.Errorf("invalid module declaration: %w", err)
		}
	}
	a.logger.Debug("All modules registered.", "count", resolver.Len())

	if err := resolver.Validate(); err != nil {
		return fmt.Errorf("invalid dependency graph: %w", err)
	}
	a.logger.Debug("Graph validation passed.")

	renderer, err := a.registry.Lookup(a.config.Output)
	if err != nil {
		return err
	}

	if resolver.Len() == 0 {
		a.logger.Warn("No modules found in manifest, nothing to order.")
	}

	if err := renderer.Render(a.outW, resolver); err != nil {
		return fmt.Errorf("failed to render %s output: %w", a.config.Output, err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
