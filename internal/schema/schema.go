// Package schema declares the HCL block structures for rule-library files.
// The structs here are raw decode targets; translation into the
// format-agnostic config model lives in the hclconf package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// LocalsBlock holds arbitrary named constants defined by a library file.
// Attribute values become variables reachable from rule blocks in the same
// file as `local.<name>`.
type LocalsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Compound declares one chemical species. The label is the stable compound
// ID; the name attribute is the human-readable display name.
type Compound struct {
	ID   string         `hcl:"id,label"`
	Name hcl.Expression `hcl:"name"`
}

// Rule declares one transformation: an ordered list of input compound IDs,
// exactly one output compound ID, a free-text condition, and a free-text
// category. All four attributes are kept as expressions so they may
// reference `local.*` values.
type Rule struct {
	Inputs    hcl.Expression `hcl:"inputs"`
	Output    hcl.Expression `hcl:"output"`
	Condition hcl.Expression `hcl:"condition"`
	Category  hcl.Expression `hcl:"category"`
}

// StartingMaterials declares compound IDs that are freely available (cost 0).
type StartingMaterials struct {
	IDs hcl.Expression `hcl:"ids"`
}

// LibraryFile represents the top-level structure of a rule-library file,
// containing all block kinds a library may define.
type LibraryFile struct {
	Locals            *LocalsBlock         `hcl:"locals,block"`
	Compounds         []*Compound          `hcl:"compound,block"`
	Rules             []*Rule              `hcl:"rule,block"`
	StartingMaterials []*StartingMaterials `hcl:"starting_materials,block"`
	Body              hcl.Body             `hcl:",remain"`
}
