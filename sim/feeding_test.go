package sim

import (
	"math/rand"
	"testing"

	"habitat/genetics"
)

func TestHuntPriority(t *testing.T) {
	f := testField(3, 3, 1)
	tiger := newTestAnimal(t, f, Tiger, Location{1, 1}, true, map[genetics.Attribute]genetics.Value{
		genetics.BreedingAge: genetics.IntValue(12),
	})
	deer := newTestAnimal(t, f, Deer, Location{0, 0}, true, nil)
	hare := newTestAnimal(t, f, Hare, Location{2, 2}, true, nil)

	// A young tiger prefers hares over deer regardless of adjacency order.
	loc, ok := Hunt(f, tiger, tiger.Species().YoungPrey, 9)
	if !ok {
		t.Fatal("hunt found no prey with two candidates adjacent")
	}
	if loc != hare.Location() {
		t.Errorf("kill at %v, want the hare's cell %v", loc, hare.Location())
	}
	if hare.Alive() {
		t.Error("hunted hare still alive")
	}
	if hare.DeathCause() != CauseEaten {
		t.Errorf("prey DeathCause = %v, want eaten", hare.DeathCause())
	}
	if !deer.Alive() {
		t.Error("lower priority deer was killed")
	}
	if f.OrganismAt(loc) != nil {
		t.Error("prey cell not vacated; the hunter moves there, no plant grows")
	}
	if tiger.FoodLevel() != 9 {
		t.Errorf("hunter food = %v, want 9", tiger.FoodLevel())
	}
}

func TestHuntNoMatch(t *testing.T) {
	f := testField(3, 3, 1)
	tiger := newTestAnimal(t, f, Tiger, Location{1, 1}, true, nil)
	NewPlant(f, Location{0, 0})
	newTestAnimal(t, f, WildBoar, Location{2, 2}, true, nil)

	// Wild boar is not on the young prey list.
	if loc, ok := Hunt(f, tiger, tiger.Species().YoungPrey, 9); ok {
		t.Errorf("hunt returned %v with no valid prey adjacent", loc)
	}
}

func TestGraze(t *testing.T) {
	f := testField(3, 3, 1)
	deer := newTestAnimal(t, f, Deer, Location{1, 1}, true, nil)
	plantLoc := Location{0, 1}
	plant := NewPlant(f, plantLoc)

	loc, ok := Graze(f, deer, 9)
	if !ok {
		t.Fatal("graze found nothing with a plant adjacent")
	}
	if loc != plantLoc {
		t.Errorf("graze at %v, want %v", loc, plantLoc)
	}
	if plant.Alive() {
		t.Error("grazed plant still alive")
	}
	if f.OrganismAt(plantLoc) != nil {
		t.Error("grazed cell not vacated")
	}
	if deer.FoodLevel() != 9 {
		t.Errorf("grazer food = %v, want 9", deer.FoodLevel())
	}
}

func TestGrazeNoPlants(t *testing.T) {
	f := testField(3, 3, 1)
	deer := newTestAnimal(t, f, Deer, Location{1, 1}, true, nil)
	newTestAnimal(t, f, Hare, Location{0, 0}, true, nil)

	if loc, ok := Graze(f, deer, 9); ok {
		t.Errorf("graze returned %v with no plants adjacent", loc)
	}
}

func TestFindFoodAdultPriority(t *testing.T) {
	f := testField(3, 3, 1)
	tiger := newTestAnimal(t, f, Tiger, Location{1, 1}, true, map[genetics.Attribute]genetics.Value{
		genetics.BreedingAge: genetics.IntValue(12),
	})
	tiger.age = 20

	boar := newTestAnimal(t, f, WildBoar, Location{0, 0}, true, nil)
	hare := newTestAnimal(t, f, Hare, Location{2, 2}, true, nil)

	loc, ok := tiger.findFood(testParams(), rand.New(rand.NewSource(3)))
	if !ok {
		t.Fatal("adult tiger found no food")
	}
	if loc != boar.Location() {
		t.Errorf("kill at %v, want the boar's cell %v", loc, boar.Location())
	}
	if boar.Alive() {
		t.Error("wild boar survived an adult tiger")
	}
	if !hare.Alive() {
		t.Error("lower priority hare was killed")
	}
}

func TestFindFoodGrazer(t *testing.T) {
	f := testField(3, 3, 1)
	hare := newTestAnimal(t, f, Hare, Location{1, 1}, true, nil)
	plantLoc := Location{2, 1}
	NewPlant(f, plantLoc)

	loc, ok := hare.findFood(testParams(), rand.New(rand.NewSource(3)))
	if !ok {
		t.Fatal("grazer found no food with a plant adjacent")
	}
	if loc != plantLoc {
		t.Errorf("graze at %v, want %v", loc, plantLoc)
	}
}

func TestFindFoodDedicatedHunterIgnoresPlants(t *testing.T) {
	f := testField(3, 3, 1)
	leopard := newTestAnimal(t, f, Leopard, Location{1, 1}, true, nil)
	NewPlant(f, Location{0, 0})

	if loc, ok := leopard.findFood(testParams(), rand.New(rand.NewSource(3))); ok {
		t.Errorf("dedicated hunter fed at %v with only plants nearby", loc)
	}
}
