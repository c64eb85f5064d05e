package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/synroute/internal/config"
	"github.com/vk/synroute/internal/planner"
	"github.com/vk/synroute/internal/rank"
	"github.com/vk/synroute/internal/registry"
)

func testRenderer(t *testing.T) (*Renderer, *registry.Registry) {
	t.Helper()

	model := &config.Model{
		Compounds: []*config.Compound{
			{ID: "alkane:C2", Name: "ethane"},
			{ID: "haloalkane:C2", Name: "chloroethane"},
			{ID: "alcohol:C2", Name: "ethanol"},
		},
		Rules: []*config.Rule{
			{Inputs: []string{"alkane:C2"}, Output: "haloalkane:C2", Condition: "Cl2, UV light", Category: "substitution"},
			{Inputs: []string{"haloalkane:C2"}, Output: "alcohol:C2", Condition: "aqueous NaOH, reflux", Category: "substitution"},
		},
		StartingMaterials: []string{"alkane:C2"},
	}

	reg := registry.New()
	reg.PopulateFromModel(model)
	require.NoError(t, reg.Validate(context.Background()))
	return New(reg), reg
}

func TestRouteText(t *testing.T) {
	t.Parallel()
	r, reg := testRenderer(t)

	route, err := planner.New(reg).Plan(context.Background(), "ethanol")
	require.NoError(t, err)

	want := "Target: ethanol\n" +
		"Recommended route (in synthesis order):\n" +
		"01. ethane → chloroethane    [substitution; condition: Cl2, UV light]\n" +
		"02. chloroethane → ethanol    [substitution; condition: aqueous NaOH, reflux]"
	assert.Equal(t, want, r.RouteText(route))
}

func TestRouteTextUnreachable(t *testing.T) {
	t.Parallel()
	r, _ := testRenderer(t)

	route := &planner.Route{Target: &config.Compound{ID: "x", Name: "xenonol"}}
	assert.Equal(t,
		`No route from the configured starting materials to "xenonol".`,
		r.RouteText(route))
}

func TestRouteTextStartingMaterial(t *testing.T) {
	t.Parallel()
	r, reg := testRenderer(t)

	route, err := planner.New(reg).Plan(context.Background(), "ethane")
	require.NoError(t, err)
	require.True(t, route.Reachable)
	require.Empty(t, route.Steps)

	assert.Equal(t,
		`"ethane" is a starting material; no synthesis steps required.`,
		r.RouteText(route))
}

func TestRouteStyledMatchesPlainStructure(t *testing.T) {
	t.Parallel()
	r, reg := testRenderer(t)

	route, err := planner.New(reg).Plan(context.Background(), "ethanol")
	require.NoError(t, err)

	out := r.Route(route)
	assert.Contains(t, out, "Target:")
	assert.Contains(t, out, "ethanol")
	assert.Contains(t, out, "Recommended route (in synthesis order):")
	assert.Contains(t, out, "ethane → chloroethane")
	assert.Contains(t, out, "condition: aqueous NaOH, reflux")
}

func TestUnknownTarget(t *testing.T) {
	t.Parallel()
	r, _ := testRenderer(t)

	assert.Equal(t,
		`Target "unobtanium" is not in the compound registry.`,
		r.UnknownTarget("unobtanium"))
}

func TestRanking(t *testing.T) {
	t.Parallel()
	r, _ := testRenderer(t)

	entries := []rank.Entry{
		{Compound: &config.Compound{ID: "haloalkane:C2", Name: "chloroethane"}, Cost: 1},
		{Compound: &config.Compound{ID: "alcohol:C2", Name: "ethanol"}, Cost: 2},
	}
	out := r.Ranking(entries)
	assert.Contains(t, out, "1 steps")
	assert.Contains(t, out, "chloroethane")
	assert.Contains(t, out, "ethanol")

	assert.Contains(t, r.Ranking(nil), "No reachable compounds.")
}

func TestCompoundList(t *testing.T) {
	t.Parallel()
	r, _ := testRenderer(t)

	assert.Equal(t, "a\nb\nc", r.CompoundList([]string{"a", "b", "c"}))
}
