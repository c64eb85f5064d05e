// Package chemlib builds the builtin rule library: the common high-school
// organic chemistry reactions over the C1..C10 homologous series, the ester
// grid, and the benzene derivatives.
//
// Builtin returns a fresh, explicitly constructed config.Model on every
// call; there is no package-level registry, so tests and embedders can hold
// several independent knowledge bases.
package chemlib

import (
	"fmt"

	"github.com/vk/synroute/internal/config"
)

// maxChainLength is the longest carbon chain the builtin library covers.
const maxChainLength = 10

// prefixes are the IUPAC multiplying prefixes for chain lengths 1..10,
// indexed from 1.
var prefixes = [maxChainLength + 1]string{
	"", "meth", "eth", "prop", "but", "pent", "hex", "hept", "oct", "non", "dec",
}

func alkaneID(n int) string     { return fmt.Sprintf("alkane:C%d", n) }
func alkeneID(n int) string     { return fmt.Sprintf("alkene:C%d", n) }
func haloalkaneID(n int) string { return fmt.Sprintf("haloalkane:C%d", n) }
func alcoholID(n int) string    { return fmt.Sprintf("alcohol:C%d", n) }
func aldehydeID(n int) string   { return fmt.Sprintf("aldehyde:C%d", n) }
func acidID(n int) string       { return fmt.Sprintf("acid:C%d", n) }
func esterID(a, b int) string   { return fmt.Sprintf("ester:C%d:C%d", a, b) }

// Builtin constructs the builtin knowledge base.
func Builtin() *config.Model {
	m := &config.Model{}
	buildCompounds(m)
	buildRules(m)

	for n := 1; n <= maxChainLength; n++ {
		m.StartingMaterials = append(m.StartingMaterials, alkaneID(n))
	}
	// Short alkenes and the two industrial alcohols are cheap feedstocks;
	// benzene comes straight from coal tar / reforming.
	m.StartingMaterials = append(m.StartingMaterials,
		alkeneID(2), alkeneID(3), alkeneID(4),
		"benzene",
		alcoholID(1), alcoholID(2),
	)
	return m
}

func buildCompounds(m *config.Model) {
	add := func(id, name string) {
		m.Compounds = append(m.Compounds, &config.Compound{ID: id, Name: name})
	}

	for n := 1; n <= maxChainLength; n++ {
		p := prefixes[n]
		add(alkaneID(n), p+"ane")
		add(haloalkaneID(n), "chloro"+p+"ane")
		add(alcoholID(n), p+"anol")
		add(aldehydeID(n), p+"anal")
		add(acidID(n), p+"anoic acid")
		if n >= 2 {
			add(alkeneID(n), p+"ene")
		}
	}

	for a := 1; a <= maxChainLength; a++ {
		for b := 1; b <= maxChainLength; b++ {
			add(esterID(a, b), prefixes[b]+"yl "+prefixes[a]+"anoate")
		}
	}

	aromatics := []struct{ id, name string }{
		{"benzene", "benzene"},
		{"chlorobenzene", "chlorobenzene"},
		{"bromobenzene", "bromobenzene"},
		{"nitrobenzene", "nitrobenzene"},
		{"aniline", "aniline"},
		{"phenol", "phenol"},
	}
	for _, a := range aromatics {
		add(a.id, a.name)
	}
}

func buildRules(m *config.Model) {
	add := func(inputs []string, output, condition, category string) {
		m.Rules = append(m.Rules, &config.Rule{
			Inputs:    inputs,
			Output:    output,
			Condition: condition,
			Category:  category,
		})
	}

	for n := 1; n <= maxChainLength; n++ {
		alkane := alkaneID(n)
		halo := haloalkaneID(n)
		alcohol := alcoholID(n)
		aldehyde := aldehydeID(n)
		acid := acidID(n)

		add([]string{alkane}, halo, "Cl2, UV light", "substitution")
		add([]string{halo}, alcohol, "NaOH(aq), heat", "substitution")
		add([]string{alcohol}, halo, "HCl/ZnCl2 or SOCl2", "substitution")

		if n >= 2 {
			alkene := alkeneID(n)
			add([]string{halo}, alkene, "NaOH(ethanol), heat", "elimination")
			add([]string{alkene}, alcohol, "H2O, H+ catalyst", "addition")
			add([]string{alcohol}, alkene, "conc. H2SO4, 170 C", "elimination")
		}

		add([]string{alcohol}, aldehyde, "Cu catalyst, heat", "oxidation")
		add([]string{aldehyde}, acid, "acidic KMnO4 or [O]", "oxidation")
	}

	for a := 1; a <= maxChainLength; a++ {
		for b := 1; b <= maxChainLength; b++ {
			add(
				[]string{acidID(a), alcoholID(b)},
				esterID(a, b),
				"conc. H2SO4, heat",
				"esterification",
			)
		}
	}

	add([]string{"benzene"}, "chlorobenzene", "Cl2, FeCl3", "substitution")
	add([]string{"benzene"}, "bromobenzene", "Br2, FeBr3", "substitution")
	add([]string{"benzene"}, "nitrobenzene", "conc. HNO3 + conc. H2SO4, 55 C", "nitration")
	add([]string{"nitrobenzene"}, "aniline", "Fe/HCl", "reduction")
	add([]string{"chlorobenzene"}, "phenol", "NaOH, high temperature and pressure, then acidify", "hydrolysis")
}
