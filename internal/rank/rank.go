// Package rank orders reachable compounds by synthesis cost. It is a pure
// function of the registry and planner, used by the demo report writer and
// the --top CLI mode.
package rank

import (
	"sort"

	"github.com/vk/synroute/internal/config"
	"github.com/vk/synroute/internal/planner"
	"github.com/vk/synroute/internal/registry"
)

// Entry pairs a compound with its minimum synthesis cost.
type Entry struct {
	Compound *config.Compound
	Cost     int
}

// Cheapest returns up to n reachable compounds that are not themselves
// starting materials, ascending by (cost, display name) so the result is
// deterministic. A negative n means no truncation.
func Cheapest(reg *registry.Registry, p *planner.Planner, n int) []Entry {
	var entries []Entry
	for _, c := range reg.Compounds() {
		if reg.IsStartingMaterial(c.ID) {
			continue
		}
		cost, ok := p.MinimumCost(c.ID)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Compound: c, Cost: cost})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Cost != entries[j].Cost {
			return entries[i].Cost < entries[j].Cost
		}
		return entries[i].Compound.Name < entries[j].Compound.Name
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
