// This file contains the logic for translating decoded HCL schema structs
// into the format-agnostic model defined in the config package, including
// evaluation of `local.*` references.

package hclconf

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/synroute/internal/config"
	"github.com/vk/synroute/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateFile converts one decoded library file into a model fragment.
func (l *Loader) translateFile(ctx context.Context, root *schema.LibraryFile) (*config.Model, error) {
	evalCtx, err := buildEvalContext(root.Locals)
	if err != nil {
		return nil, err
	}

	model := &config.Model{}

	for _, c := range root.Compounds {
		name, err := evalString(c.Name, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("compound %q: invalid name: %w", c.ID, err)
		}
		model.Compounds = append(model.Compounds, &config.Compound{ID: c.ID, Name: name})
	}

	for i, r := range root.Rules {
		rule, err := translateRule(r, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("rule #%d: %w", i+1, err)
		}
		model.Rules = append(model.Rules, rule)
	}

	for _, sm := range root.StartingMaterials {
		ids, err := evalStringSlice(sm.IDs, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("starting_materials: invalid ids: %w", err)
		}
		model.StartingMaterials = append(model.StartingMaterials, ids...)
	}

	return model, nil
}

// translateRule evaluates all four rule attributes against the file's locals.
func translateRule(r *schema.Rule, evalCtx *hcl.EvalContext) (*config.Rule, error) {
	inputs, err := evalStringSlice(r.Inputs, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("invalid inputs: %w", err)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("rule must name at least one input compound")
	}

	output, err := evalString(r.Output, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("invalid output: %w", err)
	}

	condition, err := evalString(r.Condition, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("invalid condition: %w", err)
	}

	category, err := evalString(r.Category, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}

	return &config.Rule{
		Inputs:    inputs,
		Output:    output,
		Condition: condition,
		Category:  category,
	}, nil
}

// buildEvalContext evaluates the locals block (if any) and exposes its
// attributes as the `local` object variable. Locals are plain constants and
// may not reference each other.
func buildEvalContext(locals *schema.LocalsBlock) (*hcl.EvalContext, error) {
	vals := make(map[string]cty.Value)

	if locals != nil && locals.Body != nil {
		attrs, diags := locals.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid locals block: %w", diags)
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid local %q: %w", name, diags)
			}
			vals[name] = val
		}
	}

	if len(vals) == 0 {
		// Still provide an empty object so `local.x` fails with a clear
		// "object has no attribute" diagnostic instead of an unknown variable.
		return &hcl.EvalContext{
			Variables: map[string]cty.Value{"local": cty.EmptyObjectVal},
		}, nil
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.ObjectVal(vals)},
	}, nil
}

// evalString evaluates an expression and converts the result to a Go string.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), err)
	}
	if converted.IsNull() {
		return "", fmt.Errorf("value must not be null")
	}
	return converted.AsString(), nil
}

// evalStringSlice evaluates an expression and converts the result to a Go
// string slice.
func evalStringSlice(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	converted, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to list of string: %w", val.Type().FriendlyName(), err)
	}
	if converted.IsNull() {
		return nil, fmt.Errorf("value must not be null")
	}

	var out []string
	for it := converted.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() {
			return nil, fmt.Errorf("list elements must not be null")
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}
