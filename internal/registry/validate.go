package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/synroute/internal/ctxlog"
)

// Validate performs a strict integrity check over the populated registry:
// every rule input and output, and every starting material, must name a
// known compound, and no compound ID may be registered twice. Rule cycles
// are NOT rejected here; the planner's cycle guard handles them at search
// time, so a library in which A and B produce each other is valid data.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]int)
	for _, c := range r.compounds {
		seen[c.ID]++
	}
	for id, count := range seen {
		if count > 1 {
			errs = append(errs, fmt.Sprintf("compound '%s': registered %d times", id, count))
		}
	}

	for i, rule := range r.rules {
		for _, input := range rule.Inputs {
			if _, ok := r.byID[input]; !ok {
				errs = append(errs, fmt.Sprintf("rule #%d (output '%s'): unknown input compound '%s'", i+1, rule.Output, input))
			}
		}
		if _, ok := r.byID[rule.Output]; !ok {
			errs = append(errs, fmt.Sprintf("rule #%d: unknown output compound '%s'", i+1, rule.Output))
		}
	}

	for id := range r.starting {
		if _, ok := r.byID[id]; !ok {
			errs = append(errs, fmt.Sprintf("starting material '%s': unknown compound", id))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.",
		"compounds", len(r.compounds),
		"rules", len(r.rules),
		"starting_materials", len(r.starting),
	)
	return nil
}
