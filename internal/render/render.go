// Package render formats planning results for humans: plain text for the
// report writer and lipgloss-styled text for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/vk/synroute/internal/config"
	"github.com/vk/synroute/internal/planner"
	"github.com/vk/synroute/internal/rank"
	"github.com/vk/synroute/internal/registry"
)

// Renderer resolves compound IDs to display names while formatting.
type Renderer struct {
	reg *registry.Registry
}

// New creates a Renderer over the given registry.
func New(reg *registry.Registry) *Renderer {
	return &Renderer{reg: reg}
}

// UnknownTarget formats the message for a query that did not resolve.
func (r *Renderer) UnknownTarget(query string) string {
	return fmt.Sprintf("Target %q is not in the compound registry.", query)
}

// RouteText renders a route as plain text, one numbered step per line in
// synthesis order. Used verbatim inside the Markdown report.
func (r *Renderer) RouteText(route *planner.Route) string {
	name := route.Target.Name

	if !route.Reachable {
		return fmt.Sprintf("No route from the configured starting materials to %q.", name)
	}
	if len(route.Steps) == 0 {
		return fmt.Sprintf("%q is a starting material; no synthesis steps required.", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Target: %s\n", name)
	b.WriteString("Recommended route (in synthesis order):\n")
	for i, step := range route.Steps {
		fmt.Fprintf(&b, "%02d. %s\n", i+1, r.stepLine(step))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Route renders a route for the terminal with lipgloss styling. The line
// structure matches RouteText.
func (r *Renderer) Route(route *planner.Route) string {
	name := route.Target.Name

	if !route.Reachable {
		return warnStyle.Render(fmt.Sprintf("No route from the configured starting materials to %q.", name))
	}
	if len(route.Steps) == 0 {
		return fmt.Sprintf("%s is a starting material; no synthesis steps required.", titleStyle.Render(name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Target: %s\n", titleStyle.Render(name))
	b.WriteString("Recommended route (in synthesis order):\n")
	for i, step := range route.Steps {
		fmt.Fprintf(&b, "%s %s → %s    %s\n",
			stepNumStyle.Render(fmt.Sprintf("%02d.", i+1)),
			r.inputNames(step),
			r.reg.DisplayName(step.Output),
			categoryStyle.Render("["+step.Category+"; ")+
				conditionStyle.Render("condition: "+step.Condition)+
				categoryStyle.Render("]"),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Ranking renders the cheapest-N table, one compound per line.
func (r *Renderer) Ranking(entries []rank.Entry) string {
	if len(entries) == 0 {
		return warnStyle.Render("No reachable compounds.")
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s\n",
			stepNumStyle.Render(fmt.Sprintf("%2d steps", e.Cost)),
			e.Compound.Name,
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// CompoundList renders every known display name, one per line, sorted by
// the caller (the registry hands them over in registration order).
func (r *Renderer) CompoundList(names []string) string {
	return strings.Join(names, "\n")
}

// stepLine formats a single rule application in plain text.
func (r *Renderer) stepLine(step *config.Rule) string {
	return fmt.Sprintf("%s → %s    [%s; condition: %s]",
		r.inputNames(step),
		r.reg.DisplayName(step.Output),
		step.Category,
		step.Condition,
	)
}

func (r *Renderer) inputNames(step *config.Rule) string {
	names := make([]string, len(step.Inputs))
	for i, id := range step.Inputs {
		names[i] = r.reg.DisplayName(id)
	}
	return strings.Join(names, " + ")
}
