package sim

import "math/rand"

// Feeding strategies are free functions over the field: species select a
// strategy and a prey table, they do not carry feeding code of their own.

// Hunt scans the hunter's shuffled adjacent locations once per prey type,
// in priority order. The first live match is killed, its cell vacated,
// and the hunter's food level set to preyFoodValue. The returned location
// is where the kill happened; ok is false when nothing was caught.
func Hunt(f *Field, hunter *Animal, prey []SpeciesID, preyFoodValue float64) (Location, bool) {
	adjacent := f.Adjacent(hunter.Location())
	for _, target := range prey {
		for _, loc := range adjacent {
			victim, ok := f.AnimalAt(loc)
			if !ok || !victim.Alive() || victim.Species().ID != target {
				continue
			}
			victim.deathCause = CauseEaten
			victim.SetDead()
			hunter.foodLevel = preyFoodValue
			return loc, true
		}
	}
	return Location{}, false
}

// Graze scans the grazer's shuffled adjacent locations for the first
// plant, consumes it, and sets the grazer's food level to plantFoodValue.
func Graze(f *Field, grazer *Animal, plantFoodValue float64) (Location, bool) {
	for _, loc := range f.Adjacent(grazer.Location()) {
		plant, ok := f.PlantAt(loc)
		if !ok || !plant.Alive() {
			continue
		}
		plant.SetDead()
		grazer.foodLevel = plantFoodValue
		return loc, true
	}
	return Location{}, false
}

// findFood runs the animal's species feeding strategy: hunt the age
// appropriate prey table (gated by the species hunt probability for
// opportunists), then graze if the species eats plants.
func (a *Animal) findFood(p Params, rng *rand.Rand) (Location, bool) {
	sp := a.species
	if sp.Hunts && rng.Float64() <= sp.HuntProbability {
		prey := sp.AdultPrey
		if a.Young() {
			prey = sp.YoungPrey
		}
		if loc, ok := Hunt(a.field, a, prey, p.PreyFoodValue); ok {
			return loc, true
		}
	}
	if sp.Grazes {
		return Graze(a.field, a, p.PlantFoodValue)
	}
	return Location{}, false
}
