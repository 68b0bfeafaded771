package codegen_test

import (
	"testing"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/codegen"
	"warehouse-counter/core/domainerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogWith(codes map[string]string) *catalog.Catalog {
	snap := catalog.Snapshot{}
	for id, code := range codes {
		snap[id] = catalog.Product{ID: id, Code: code}
	}
	cat := catalog.New()
	cat.Replace(snap)
	return cat
}

func TestSegments(t *testing.T) {
	g := codegen.New()
	assert.Equal(t, "EC", g.CategoryCode("Equipo de Cómputo"))
	assert.Equal(t, "EC", g.CategoryCode("equipo de computo"))
	assert.Equal(t, "EC", g.CategoryCode("ec"))
	assert.Equal(t, "XX", g.CategoryCode("Juguetes"))
	assert.Equal(t, "JP", g.BranchCode("JARDIN PLAZA"))
	assert.Equal(t, "XX", g.BranchCode(""))
}

func TestNext(t *testing.T) {
	g := codegen.New()
	in := codegen.Input{Category: "Equipo de Cómputo", Branch: "Jardín Plaza", Name: "Laptop Dell"}

	t.Run("Empty catalog starts at 001", func(t *testing.T) {
		code, err := g.Next(catalog.New(), in)
		require.NoError(t, err)
		assert.Equal(t, "AF.EC.JP.LAP.001", code)
	})

	t.Run("Next after max, not first gap", func(t *testing.T) {
		cat := catalogWith(map[string]string{"1": "AF.EC.JP.LAP.001", "2": "AF.EC.JP.LAP.003"})
		code, err := g.Next(cat, in)
		require.NoError(t, err)
		assert.Equal(t, "AF.EC.JP.LAP.004", code)
	})

	t.Run("Other prefixes and malformed tails ignored", func(t *testing.T) {
		cat := catalogWith(map[string]string{
			"1": "AF.EC.JP.LAP.002",
			"2": "AF.EC.CE.LAP.050",
			"3": "AF.EC.JP.LAP.ABC",
			"4": "AF.EC.JP.LAPX.090",
		})
		code, err := g.Next(cat, in)
		require.NoError(t, err)
		assert.Equal(t, "AF.EC.JP.LAP.003", code)
	})

	t.Run("Edited product excluded", func(t *testing.T) {
		cat := catalogWith(map[string]string{"1": "AF.EC.JP.LAP.001", "2": "AF.EC.JP.LAP.007"})
		edit := in
		edit.ExcludeID = "2"
		code, err := g.Next(cat, edit)
		require.NoError(t, err)
		assert.Equal(t, "AF.EC.JP.LAP.002", code)
	})

	t.Run("Deterministic", func(t *testing.T) {
		cat := catalogWith(map[string]string{"1": "AF.EC.JP.LAP.001", "2": "AF.EC.JP.LAP.003"})
		first, _ := g.Next(cat, in)
		for i := 0; i < 10; i++ {
			again, _ := g.Next(cat, in)
			assert.Equal(t, first, again)
		}
	})

	t.Run("Unmapped labels", func(t *testing.T) {
		code, err := g.Next(catalog.New(), codegen.Input{Category: "??", Branch: "Lima", Name: "ñandú azul"})
		require.NoError(t, err)
		assert.Equal(t, "AF.XX.XX.NAN.001", code)
	})

	t.Run("Sequence above 999", func(t *testing.T) {
		cat := catalogWith(map[string]string{"1": "AF.EC.JP.LAP.999"})
		code, err := g.Next(cat, in)
		require.NoError(t, err)
		assert.Equal(t, "AF.EC.JP.LAP.1000", code)
	})
}

func TestNext_InsufficientInput(t *testing.T) {
	g := codegen.New()
	for _, name := range []string{"", "A1", "x-y", "12345"} {
		code, err := g.Next(catalog.New(), codegen.Input{Category: "Mobiliario", Name: name})
		assert.Empty(t, code)
		assert.True(t, domainerr.Is(err, domainerr.KindCodeInsufficientInput), name)
	}
}
