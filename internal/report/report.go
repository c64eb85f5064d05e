// Package report writes the batch demonstration document: the cheapest
// reachable targets, each with its automatically planned route, as Markdown.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/synroute/internal/ctxlog"
	"github.com/vk/synroute/internal/planner"
	"github.com/vk/synroute/internal/rank"
	"github.com/vk/synroute/internal/registry"
	"github.com/vk/synroute/internal/render"
)

// Generate plans routes for the count cheapest reachable compounds and
// writes them to w as a Markdown document of fenced examples. The file
// handling belongs to the caller; this function only formats.
func Generate(ctx context.Context, w io.Writer, reg *registry.Registry, p *planner.Planner, count int) error {
	logger := ctxlog.FromContext(ctx)
	rend := render.New(reg)

	entries := rank.Cheapest(reg, p, count)
	logger.Debug("Demo targets ranked.", "requested", count, "found", len(entries))

	fmt.Fprintln(w, "# Synthesis route designer: example collection")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Automatically planned routes for %d target compounds.\n", len(entries))
	fmt.Fprintln(w)

	for i, e := range entries {
		route, err := p.Plan(ctx, e.Compound.ID)
		if err != nil {
			// The compound came from the registry moments ago, so this is a
			// programming error, not a data problem.
			return fmt.Errorf("planning demo target %q: %w", e.Compound.ID, err)
		}

		fmt.Fprintf(w, "## Example %d: %s\n", i+1, e.Compound.Name)
		fmt.Fprintln(w, "```")
		fmt.Fprintln(w, rend.RouteText(route))
		fmt.Fprintln(w, "```")
		fmt.Fprintln(w)
	}

	return nil
}
