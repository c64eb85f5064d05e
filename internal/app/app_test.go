package app_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/synroute/internal/app"
	"github.com/vk/synroute/internal/testutil"
)

func TestRunTargetWithBuiltinLibrary(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, nil, app.Config{Target: "ethyl ethanoate"})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "Target:")
	assert.Contains(t, result.Output, "ethyl ethanoate")
	assert.Contains(t, result.Output, "Recommended route (in synthesis order):")
	assert.Contains(t, result.Output, "ethanol")
	assert.Contains(t, result.Output, "esterification")
}

func TestRunTargetByCompoundID(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, nil, app.Config{Target: "haloalkane:C3"})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "chloropropane")
	assert.Contains(t, result.Output, "substitution")
}

func TestRunTargetUnknownCompound(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, nil, app.Config{Target: "unobtanium"})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, `Target "unobtanium" is not in the compound registry.`)
}

func TestRunTargetStartingMaterial(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, nil, app.Config{Target: "benzene"})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "is a starting material; no synthesis steps required.")
}

func TestRunList(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, nil, app.Config{ListCompounds: true})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "Known compounds:")
	lines := strings.Split(strings.TrimSpace(result.Output), "\n")
	// Header plus one line per builtin compound, sorted.
	require.Len(t, lines, 1+len(result.App.Registry().Compounds()))
	assert.True(t, sortedStrings(lines[1:]), "compound names must be sorted")
	assert.Contains(t, lines, "ethanol")
	assert.Contains(t, lines, "benzene")
}

func sortedStrings(ss []string) bool {
	for i := 1; i < len(ss); i++ {
		if ss[i] < ss[i-1] {
			return false
		}
	}
	return true
}

func TestRunTop(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, nil, app.Config{TopCount: 3})
	require.NoError(t, result.Err)

	lines := strings.Split(strings.TrimSpace(result.Output), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Contains(t, line, "steps")
	}
}

func TestRunDemosWritesReportFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "demos.md")
	result := testutil.RunApp(t, nil, app.Config{DemosPath: path, DemoCount: 4})
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "Demo report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# Synthesis route designer: example collection")
	assert.Equal(t, 4, strings.Count(content, "## Example "))
}

func TestCustomLibraryExtendsBuiltin(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, map[string]string{
		"polymers.hcl": `
compound "polymer:PE" {
  name = "polyethene"
}

rule {
  inputs    = ["alkene:C2"]
  output    = "polymer:PE"
  condition = "high pressure, Ziegler-Natta catalyst"
  category  = "addition polymerisation"
}
`,
	}, app.Config{Target: "polyethene"})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "polyethene")
	assert.Contains(t, result.Output, "ethene → polyethene")
	assert.Contains(t, result.Output, "addition polymerisation")
}

func TestNoBuiltinUsesOnlyCustomLibrary(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, map[string]string{
		"minimal.hcl": `
compound "ore" {
  name = "bauxite"
}

compound "metal" {
  name = "aluminium"
}

rule {
  inputs    = ["ore"]
  output    = "metal"
  condition = "electrolysis of molten cryolite solution"
  category  = "reduction"
}

starting_materials {
  ids = ["ore"]
}
`,
	}, app.Config{NoBuiltin: true, Target: "aluminium"})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "bauxite → aluminium")
	assert.Equal(t, 2, len(result.App.Registry().Compounds()))

	// Builtin compounds must not exist in this registry.
	unknown := testutil.RunApp(t, map[string]string{
		"minimal.hcl": `
compound "ore" { name = "bauxite" }
starting_materials { ids = ["ore"] }
`,
	}, app.Config{NoBuiltin: true, Target: "ethanol"})
	require.NoError(t, unknown.Err)
	assert.Contains(t, unknown.Output, "is not in the compound registry")
}

func TestStartupFailsOnInconsistentLibrary(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, map[string]string{
		"broken.hcl": `
rule {
  inputs    = ["ghost"]
  output    = "alcohol:C2"
  condition = "unclear"
  category  = "substitution"
}
`,
	}, app.Config{Target: "ethanol"})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "application startup panicked")
	assert.Contains(t, result.Err.Error(), "ghost")
}

func TestStartupFailsOnMalformedLibraryFile(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, map[string]string{
		"broken.hcl": `compound "x" {`,
	}, app.Config{Target: "ethanol"})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "failed to load rule library")
}
