package sim

import (
	"math/rand"
	"testing"

	"habitat/genetics"
)

func testParams() Params {
	return Params{
		PlantFoodValue:   9,
		PreyFoodValue:    9,
		DiseaseDuration:  5,
		DiseaseMortality: 0.3,
	}
}

func testField(height, width int, seed int64) *Field {
	return NewField(height, width, rand.New(rand.NewSource(seed)))
}

func testGenes(t *testing.T, reg *genetics.Registry, values map[genetics.Attribute]genetics.Value) *genetics.Genetics {
	t.Helper()
	g := genetics.NewRandom(reg, rand.New(rand.NewSource(99)))
	for attr, v := range values {
		if err := g.Set(attr, v); err != nil {
			t.Fatalf("Set(%s) failed: %v", attr, err)
		}
	}
	return g
}

// newTestAnimal places an animal with mutation disabled and deterministic
// genes, overridden per test where a scenario depends on an attribute.
func newTestAnimal(t *testing.T, f *Field, id SpeciesID, loc Location, male bool, values map[genetics.Attribute]genetics.Value) *Animal {
	t.Helper()
	reg := genetics.DefaultRegistry(0)
	g := testGenes(t, reg, values)
	a := NewAnimal(SpeciesByID(id), f, loc, g, testParams(), rand.New(rand.NewSource(1)), false)
	a.male = male
	return a
}
