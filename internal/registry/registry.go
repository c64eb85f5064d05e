package registry

import (
	"errors"

	"github.com/vk/synroute/internal/config"
)

// ErrUnknownCompound is returned when a caller-supplied name or ID does not
// resolve against the compound registry. It is distinct from a planning
// outcome: an unknown compound is a caller error, an unreachable compound
// is a legitimate result.
var ErrUnknownCompound = errors.New("unknown compound")

// Registry is the indexed, read-only view over a config.Model.
type Registry struct {
	compounds []*config.Compound
	byID      map[string]*config.Compound
	byName    map[string]string

	rules     []*config.Rule
	producing map[string][]*config.Rule

	starting map[string]struct{}
}

// New creates and initializes an empty Registry instance.
func New() *Registry {
	return &Registry{
		byID:      make(map[string]*config.Compound),
		byName:    make(map[string]string),
		producing: make(map[string][]*config.Rule),
		starting:  make(map[string]struct{}),
	}
}

// PopulateFromModel copies the loaded knowledge base into the registry's
// indexes, preserving registration order for compounds and rules. If two
// compounds share a display name the later registration wins name lookup;
// duplicate IDs are caught by Validate.
func (r *Registry) PopulateFromModel(model *config.Model) {
	for _, c := range model.Compounds {
		r.compounds = append(r.compounds, c)
		if _, exists := r.byID[c.ID]; !exists {
			r.byID[c.ID] = c
		}
		r.byName[c.Name] = c.ID
	}
	for _, rule := range model.Rules {
		r.rules = append(r.rules, rule)
		r.producing[rule.Output] = append(r.producing[rule.Output], rule)
	}
	for _, id := range model.StartingMaterials {
		r.starting[id] = struct{}{}
	}
}

// Compounds returns all known compounds in registration order. The returned
// slice must not be mutated.
func (r *Registry) Compounds() []*config.Compound {
	return r.compounds
}

// Compound looks up a compound by its stable ID.
func (r *Registry) Compound(id string) (*config.Compound, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Resolve maps a caller-supplied query to a compound ID. IDs take priority
// over display names so the two namespaces cannot shadow each other
// surprisingly.
func (r *Registry) Resolve(query string) (string, bool) {
	if _, ok := r.byID[query]; ok {
		return query, true
	}
	if id, ok := r.byName[query]; ok {
		return id, true
	}
	return "", false
}

// DisplayName returns the human-readable name for a compound ID, falling
// back to the ID itself for unknown compounds.
func (r *Registry) DisplayName(id string) string {
	if c, ok := r.byID[id]; ok {
		return c.Name
	}
	return id
}

// RulesProducing returns all rules whose output is the given compound, in
// registration order. Unknown IDs yield an empty slice, never an error.
func (r *Registry) RulesProducing(id string) []*config.Rule {
	return r.producing[id]
}

// IsStartingMaterial reports whether the compound is freely available.
func (r *Registry) IsStartingMaterial(id string) bool {
	_, ok := r.starting[id]
	return ok
}

// RuleCount returns the number of registered rules.
func (r *Registry) RuleCount() int {
	return len(r.rules)
}
