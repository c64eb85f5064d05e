package chemlib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/synroute/internal/planner"
	"github.com/vk/synroute/internal/registry"
)

func TestBuiltinIsInternallyConsistent(t *testing.T) {
	t.Parallel()

	m := Builtin()
	reg := registry.New()
	reg.PopulateFromModel(m)
	require.NoError(t, reg.Validate(context.Background()))
}

func TestBuiltinShape(t *testing.T) {
	t.Parallel()

	m := Builtin()

	// 5 families for C1..C10, alkenes for C2..C10, the 10x10 ester grid and
	// 6 benzene derivatives.
	assert.Len(t, m.Compounds, 10*5+9+100+6)

	// Per chain length: 3 substitutions + 2 oxidations, plus 3 alkene rules
	// for C2+; 100 esterifications; 5 aromatic rules.
	assert.Len(t, m.Rules, 10*5+9*3+100+5)

	// Alkanes C1..C10, alkenes C2..C4, benzene, methanol, ethanol.
	assert.Len(t, m.StartingMaterials, 16)
}

func TestBuiltinDisplayNames(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.PopulateFromModel(Builtin())
	require.NoError(t, reg.Validate(context.Background()))

	assert.Equal(t, "ethanol", reg.DisplayName("alcohol:C2"))
	assert.Equal(t, "chloromethane", reg.DisplayName("haloalkane:C1"))
	assert.Equal(t, "propene", reg.DisplayName("alkene:C3"))
	assert.Equal(t, "decanoic acid", reg.DisplayName("acid:C10"))
	assert.Equal(t, "ethyl ethanoate", reg.DisplayName("ester:C2:C2"))
	assert.Equal(t, "methyl butanoate", reg.DisplayName("ester:C4:C1"))
	assert.Equal(t, "aniline", reg.DisplayName("aniline"))
}

func TestBuiltinKnownRoutes(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.PopulateFromModel(Builtin())
	require.NoError(t, reg.Validate(context.Background()))
	p := planner.New(reg)

	testCases := []struct {
		query string
		cost  int
	}{
		// ethanol is a starting material, so the classic ester is three
		// steps: ethanol -> ethanal -> ethanoic acid, then esterification.
		{"ethyl ethanoate", 3},
		{"ethanal", 1},
		{"aniline", 2},
		{"phenol", 2},
		{"chloroethane", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			route, err := p.Plan(context.Background(), tc.query)
			require.NoError(t, err)
			require.True(t, route.Reachable)
			assert.Equal(t, tc.cost, route.Cost)
			assert.Len(t, route.Steps, tc.cost)
		})
	}
}

func TestBuiltinEverythingIsReachable(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.PopulateFromModel(Builtin())
	require.NoError(t, reg.Validate(context.Background()))
	p := planner.New(reg)

	for _, c := range reg.Compounds() {
		_, ok := p.MinimumCost(c.ID)
		assert.True(t, ok, "compound %s should be reachable", c.ID)
	}
}
