package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/synroute/internal/config"
	"github.com/vk/synroute/internal/ctxlog"
	"github.com/vk/synroute/internal/registry"
)

// unreachableCost is the sentinel for "no feasible route on this branch".
// Any real route costs strictly less: the cycle guard bounds recursion depth
// by the number of distinct compounds, so step counts stay far below it.
const unreachableCost = 1 << 30

// Planner plans minimum-step synthesis routes against a fixed registry.
type Planner struct {
	reg *registry.Registry
}

// New creates a Planner over the given registry. The registry must already
// be validated; the planner assumes every rule refers to known compounds.
func New(reg *registry.Registry) *Planner {
	return &Planner{reg: reg}
}

// Route is the outcome of planning one target compound.
//
// Reachable distinguishes "no feasible chain of rules" from the empty step
// sequence a starting material legitimately yields.
type Route struct {
	Target    *config.Compound
	Steps     []*config.Rule
	Cost      int
	Reachable bool
}

// Plan resolves the query (compound ID or display name) and computes a
// minimum-step route for it. An unknown query yields ErrUnknownCompound; a
// known but unsynthesizable target yields a Route with Reachable=false,
// which is a legitimate planning outcome, not an error.
func (p *Planner) Plan(ctx context.Context, query string) (*Route, error) {
	logger := ctxlog.FromContext(ctx)

	id, ok := p.reg.Resolve(query)
	if !ok {
		return nil, fmt.Errorf("%w: %q", registry.ErrUnknownCompound, query)
	}
	target, _ := p.reg.Compound(id)

	s := newSearch(p.reg)
	cost, _ := s.bestCost(id, nil)
	if cost >= unreachableCost {
		logger.Debug("Target is unreachable from starting materials.", "compound", id)
		return &Route{Target: target}, nil
	}

	route := &Route{Target: target, Cost: cost, Reachable: true}
	seen := make(map[*config.Rule]struct{})
	s.collectSteps(id, nil, seen, &route.Steps)

	logger.Debug("Route planned.", "compound", id, "cost", cost, "steps", len(route.Steps))
	return route, nil
}

// MinimumCost computes the minimum number of transformation steps needed to
// synthesize the compound with the given ID. The second return value is
// false when the compound is unreachable (unknown IDs are unreachable: no
// rule produces them and they are not starting materials).
func (p *Planner) MinimumCost(id string) (int, bool) {
	s := newSearch(p.reg)
	cost, _ := s.bestCost(id, nil)
	if cost >= unreachableCost {
		return 0, false
	}
	return cost, true
}

// search carries the per-call memo table. Results are memoized per
// (target, ancestor path): identical sub-targets reached via different
// ancestor chains are recomputed rather than shared, which keeps the cycle
// guard trivially sound at the price of some repeated work. The knowledge
// base is a few hundred compounds, so the trade is irrelevant in practice.
type search struct {
	reg  *registry.Registry
	memo map[string]memoEntry
}

type memoEntry struct {
	cost int
	rule *config.Rule
}

func newSearch(reg *registry.Registry) *search {
	return &search{reg: reg, memo: make(map[string]memoEntry)}
}

// bestCost returns the minimum step count to synthesize target given the
// active expansion path, together with the rule achieving it (nil for
// starting materials and unreachable targets).
//
// path is the ordered chain of compounds currently being expanded. A target
// that is its own ancestor is degraded to unreachable for this branch only;
// the overall search continues through other rules.
func (s *search) bestCost(target string, path []string) (int, *config.Rule) {
	if s.reg.IsStartingMaterial(target) {
		return 0, nil
	}
	for _, ancestor := range path {
		if ancestor == target {
			return unreachableCost, nil
		}
	}

	key := memoKey(target, path)
	if e, ok := s.memo[key]; ok {
		return e.cost, e.rule
	}

	childPath := extendPath(path, target)

	bestCost := unreachableCost
	var bestRule *config.Rule
	for _, rule := range s.reg.RulesProducing(target) {
		total := 1
		feasible := true
		for _, input := range rule.Inputs {
			c, _ := s.bestCost(input, childPath)
			if c >= unreachableCost {
				feasible = false
				break
			}
			total += c
		}
		// Strict less-than: on ties the first-registered rule wins, which
		// makes repeated plans reproducible.
		if feasible && total < bestCost {
			bestCost = total
			bestRule = rule
		}
	}

	s.memo[key] = memoEntry{cost: bestCost, rule: bestRule}
	return bestCost, bestRule
}

// collectSteps re-derives the best rule for target and emits the rules for
// its inputs first (post-order), so every step's inputs are available before
// the step itself. A rule already emitted for another branch is skipped:
// shared intermediates appear exactly once, at their first point of
// completion. Returns false if the target cannot be realized, which Plan
// rules out before calling.
func (s *search) collectSteps(target string, path []string, seen map[*config.Rule]struct{}, out *[]*config.Rule) bool {
	if s.reg.IsStartingMaterial(target) {
		return true
	}

	_, rule := s.bestCost(target, path)
	if rule == nil {
		return false
	}

	childPath := extendPath(path, target)
	for _, input := range rule.Inputs {
		if !s.collectSteps(input, childPath, seen, out) {
			return false
		}
	}

	if _, done := seen[rule]; !done {
		seen[rule] = struct{}{}
		*out = append(*out, rule)
	}
	return true
}

// extendPath returns a fresh slice so sibling expansions can never alias
// each other's backing array.
func extendPath(path []string, target string) []string {
	childPath := make([]string, len(path)+1)
	copy(childPath, path)
	childPath[len(path)] = target
	return childPath
}

func memoKey(target string, path []string) string {
	return target + "\x1f" + strings.Join(path, "\x1f")
}
