package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/vk/synroute/internal/ctxlog"
	"github.com/vk/synroute/internal/rank"
	"github.com/vk/synroute/internal/registry"
	"github.com/vk/synroute/internal/report"
)

// Run executes the selected mode and writes the result to the output writer.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var err error
	switch {
	case cfg.ListCompounds:
		err = a.runList()
	case cfg.DemosPath != "":
		err = a.runDemos(ctx, cfg.DemosPath, cfg.DemoCount)
	case cfg.TopCount > 0:
		err = a.runTop(cfg.TopCount)
	default:
		err = a.runTarget(ctx, cfg.Target)
	}

	a.logger.Debug("App.Run method finished.")
	return err
}

// runTarget plans a route for one compound and prints it. An unknown target
// is reported to the user, not treated as a process failure.
func (a *App) runTarget(ctx context.Context, target string) error {
	route, err := a.planner.Plan(ctx, target)
	if errors.Is(err, registry.ErrUnknownCompound) {
		fmt.Fprintln(a.outW, a.renderer.UnknownTarget(target))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.outW, a.renderer.Route(route))
	return nil
}

// runList prints every known compound display name in sorted order.
func (a *App) runList() error {
	compounds := a.registry.Compounds()
	names := make([]string, 0, len(compounds))
	for _, c := range compounds {
		names = append(names, c.Name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.outW, "Known compounds:")
	fmt.Fprintln(a.outW, a.renderer.CompoundList(names))
	return nil
}

// runTop prints the n cheapest reachable compounds.
func (a *App) runTop(n int) error {
	entries := rank.Cheapest(a.registry, a.planner, n)
	fmt.Fprintln(a.outW, a.renderer.Ranking(entries))
	return nil
}

// runDemos writes the Markdown demo report to the given path.
func (a *App) runDemos(ctx context.Context, path string, count int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating demo report file: %w", err)
	}
	defer f.Close()

	if err := report.Generate(ctx, f, a.registry, a.planner, count); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing demo report file: %w", err)
	}

	fmt.Fprintf(a.outW, "Demo report written to %s\n", path)
	return nil
}
