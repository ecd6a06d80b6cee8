package sim

import (
	"errors"
	"math/rand"
	"testing"

	"habitat/config"
	"habitat/genetics"
)

func testFactory(t *testing.T, cfg *config.Config, seed int64) *Factory {
	t.Helper()
	reg := genetics.DefaultRegistry(cfg.Genetics.MutationProbability)
	f, err := NewFactory(cfg, reg, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewFactory failed: %v", err)
	}
	return f
}

func TestNewFactoryUnknownSpecies(t *testing.T) {
	cfg := config.Default()
	cfg.Population.PredatorWeights = map[string]float64{"dragon": 1}

	reg := genetics.DefaultRegistry(0.2)
	if _, err := NewFactory(cfg, reg, rand.New(rand.NewSource(1))); !errors.Is(err, ErrUnknownSpecies) {
		t.Errorf("NewFactory = %v, want ErrUnknownSpecies", err)
	}
}

func TestZeroWeightFallback(t *testing.T) {
	cfg := config.Default()
	cfg.Population.PredatorWeights = map[string]float64{"tiger": 0, "leopard": 0}
	cfg.Population.PreyWeights = map[string]float64{"deer": 0}
	fac := testFactory(t, cfg, 1)

	for i := 0; i < 20; i++ {
		if sp := fac.RandomPredator(); sp.ID != Tiger {
			t.Fatalf("zero weight predator = %s, want Tiger fallback", sp.Name)
		}
		if sp := fac.RandomPrey(); sp.ID != Hare {
			t.Fatalf("zero weight prey = %s, want Hare fallback", sp.Name)
		}
	}
}

func TestSingleWeightAlwaysSelected(t *testing.T) {
	cfg := config.Default()
	cfg.Population.PredatorWeights = map[string]float64{"leopard": 5}
	cfg.Population.PreyWeights = map[string]float64{"wild_boar": 3}
	fac := testFactory(t, cfg, 1)

	for i := 0; i < 50; i++ {
		if sp := fac.RandomPredator(); sp.ID != Leopard {
			t.Fatalf("predator = %s, want Leopard", sp.Name)
		}
		if sp := fac.RandomPrey(); sp.ID != WildBoar {
			t.Fatalf("prey = %s, want WildBoar", sp.Name)
		}
	}
}

func TestWeightedSelectionCoversAll(t *testing.T) {
	cfg := config.Default()
	fac := testFactory(t, cfg, 7)

	seen := make(map[SpeciesID]int)
	for i := 0; i < 2000; i++ {
		seen[fac.RandomPrey().ID]++
	}
	for _, id := range []SpeciesID{Deer, Hare, WildBoar} {
		if seen[id] == 0 {
			t.Errorf("species %s never selected from default prey weights", SpeciesByID(id).Name)
		}
	}
}

func TestSpawnPlacesAnimal(t *testing.T) {
	cfg := config.Default()
	fac := testFactory(t, cfg, 1)
	f := testField(3, 3, 1)
	loc := Location{0, 2}

	a := fac.SpawnPrey(f, loc, false)
	if got, ok := f.AnimalAt(loc); !ok || got != a {
		t.Fatal("spawned animal not placed on the field")
	}
	if !a.Alive() || a.Age() != 0 {
		t.Errorf("newborn spawn: alive=%v age=%d, want alive at age 0", a.Alive(), a.Age())
	}
}

func TestSpawnRandomizedAge(t *testing.T) {
	cfg := config.Default()
	fac := testFactory(t, cfg, 1)
	f := testField(10, 10, 1)

	var aged bool
	for col := 0; col < 10; col++ {
		a := fac.SpawnPredator(f, Location{0, col}, true)
		if a.Age() > 0 {
			aged = true
		}
		if a.Age() >= a.Genes().GetMaxAge() {
			t.Errorf("seeded animal age %d at or past max age %d", a.Age(), a.Genes().GetMaxAge())
		}
	}
	if !aged {
		t.Error("no seeded animal started with a nonzero age")
	}
}
