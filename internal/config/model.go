package config

import "strings"

// Compound is a single chemical species known to the system. The ID is the
// stable, opaque key every other structure refers to; Name is for
// presentation only.
type Compound struct {
	ID   string
	Name string
}

// Rule describes how one or more input compounds become exactly one output
// compound. Input order is significant only for display. A Rule value is
// never mutated after it enters a Model.
type Rule struct {
	Inputs    []string
	Output    string
	Condition string
	Category  string
}

// Key returns a stable identity for the rule, used for deduplication when
// collecting route steps. Two rules with the same inputs, output, condition
// and category are the same step.
func (r *Rule) Key() string {
	return strings.Join(r.Inputs, "+") + ">" + r.Output + "|" + r.Condition + "|" + r.Category
}

// Model is the unified, format-agnostic representation of a complete rule
// library: the compound universe, the transformation rules in registration
// order, and the starting-material set.
//
// Registration order is semantically meaningful: it is the tie-break for
// equal-cost alternatives during planning, so loaders must preserve it.
type Model struct {
	Compounds         []*Compound
	Rules             []*Rule
	StartingMaterials []string
}

// Merge appends the contents of other onto m, preserving registration
// order (m's entries first). Duplicate detection is the registry's job,
// not the model's.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Compounds = append(m.Compounds, other.Compounds...)
	m.Rules = append(m.Rules, other.Rules...)
	m.StartingMaterials = append(m.StartingMaterials, other.StartingMaterials...)
}
