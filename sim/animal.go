package sim

import (
	"math/rand"

	"habitat/genetics"
)

// DeathCause records why an animal left the field. Every cause except
// CauseEaten leaves a plant in the vacated cell.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseOldAge
	CauseStarvation
	CauseDisease
	CauseOvercrowding
	CauseEaten
)

func (c DeathCause) String() string {
	switch c {
	case CauseOldAge:
		return "old_age"
	case CauseStarvation:
		return "starvation"
	case CauseDisease:
		return "disease"
	case CauseOvercrowding:
		return "overcrowding"
	case CauseEaten:
		return "eaten"
	default:
		return "none"
	}
}

// Animal is a live organism driven by the shared lifecycle. Species
// identity only selects the feeding table; everything else is carried by
// the animal's genetics and disease state.
type Animal struct {
	species *Species
	field   *Field
	loc     Location

	alive      bool
	age        int
	foodLevel  float64
	male       bool
	genes      *genetics.Genetics
	disease    *Disease
	deathCause DeathCause
}

// NewAnimal creates an animal and places it on the field, replacing any
// plant occupying loc. With randomize set (first-generation seeding) the
// animal starts at a random age with a partial food reserve and may
// already be infected; otherwise it is a newborn with full food.
func NewAnimal(sp *Species, field *Field, loc Location, genes *genetics.Genetics, p Params, rng *rand.Rand, randomize bool) *Animal {
	a := &Animal{
		species:   sp,
		field:     field,
		loc:       loc,
		alive:     true,
		foodLevel: p.fullFoodLevel(sp),
		male:      rng.Intn(2) == 0,
		genes:     genes,
		disease:   NewDisease(p.DiseaseDuration, p.DiseaseMortality, p.DiseaseImmunity),
	}
	if randomize {
		if maxAge := genes.GetMaxAge(); maxAge > 0 {
			a.age = rng.Intn(maxAge)
		}
		a.foodLevel *= rng.Float64()
		a.disease.TryInfect(genes.GetDiseaseProbability(), rng)
	}
	field.Place(a, loc)
	return a
}

// Location returns the animal's cell.
func (a *Animal) Location() Location { return a.loc }

// Alive reports whether the animal is still on the field.
func (a *Animal) Alive() bool { return a.alive }

// Species returns the animal's species descriptor.
func (a *Animal) Species() *Species { return a.species }

// Age returns the animal's age in simulated days.
func (a *Animal) Age() int { return a.age }

// FoodLevel returns the remaining food reserve.
func (a *Animal) FoodLevel() float64 { return a.foodLevel }

// Male reports the animal's gender.
func (a *Animal) Male() bool { return a.male }

// Genes returns the animal's genetics.
func (a *Animal) Genes() *genetics.Genetics { return a.genes }

// Disease returns the animal's infection state.
func (a *Animal) Disease() *Disease { return a.disease }

// DeathCause returns why the animal died, CauseNone while alive.
func (a *Animal) DeathCause() DeathCause { return a.deathCause }

// Young reports whether the animal has not yet reached breeding age.
// Hunters use a reduced prey table while young.
func (a *Animal) Young() bool { return a.age < a.genes.GetBreedingAge() }

// SetDead removes the animal from the field without leaving a plant
// behind. A dead animal is never infected.
func (a *Animal) SetDead() {
	if !a.alive {
		return
	}
	a.alive = false
	a.disease.SetInfected(false)
	a.field.Remove(a.loc)
}

// die ends the animal's turn for cause and fills its cell with a plant.
func (a *Animal) die(cause DeathCause) {
	a.deathCause = cause
	a.SetDead()
	a.field.ReplaceDeadWithPlant(a.loc)
}

// setLocation moves the animal, vacating the old cell and claiming the
// new one.
func (a *Animal) setLocation(loc Location) {
	a.field.Remove(a.loc)
	a.loc = loc
	a.field.Place(a, loc)
}

// Act runs one simulated day for the animal. The step order is fixed:
// ageing, hunger, reproduction, disease, food seeking, then movement.
// A due infection that resolves fatally pre-empts movement even when a
// destination was already found. Newborns are appended to newborns for
// the driver to merge after the generation completes.
func (a *Animal) Act(p Params, rng *rand.Rand, newborns *[]*Animal) {
	if !a.alive {
		return
	}

	a.age++
	if a.age > a.genes.GetMaxAge() {
		a.die(CauseOldAge)
		return
	}

	a.foodLevel -= a.genes.GetMetabolism()
	if a.foodLevel <= 0 {
		a.die(CauseStarvation)
		return
	}

	if !a.male {
		a.giveBirth(p, rng, newborns)
	}

	fatal := a.diseaseStep(rng)

	dest, found := a.findFood(p, rng)
	if !found {
		dest, found = a.field.FreeAdjacent(a.loc)
	}

	if fatal {
		a.die(CauseDisease)
		return
	}
	if !found {
		a.die(CauseOvercrowding)
		return
	}
	a.setLocation(dest)
}

// diseaseStep progresses an existing infection or attempts a new one
// from infected same-species neighbours. It reports whether a due
// infection resolved fatally; the caller applies the death.
func (a *Animal) diseaseStep(rng *rand.Rand) bool {
	if a.disease.Infected() {
		a.disease.IncrementInfected()
		if a.disease.Due() {
			if rng.Float64() < a.disease.MortalityRate() {
				return true
			}
			a.disease.Resolve()
		}
		return false
	}
	for _, n := range a.field.LivingNeighbourAnimals(a.loc) {
		if n.species.ID == a.species.ID && n.disease.Infected() {
			a.disease.TryInfect(a.genes.GetDiseaseProbability(), rng)
			break
		}
	}
	return false
}

// giveBirth attempts reproduction with an adjacent partner. The litter
// is capped by the number of free adjacent cells; plants in claimed
// cells are displaced.
func (a *Animal) giveBirth(p Params, rng *rand.Rand, newborns *[]*Animal) {
	partner := a.findPartner()
	if partner == nil {
		return
	}
	shared := a.breedWith(partner, p, rng)
	litter := a.litterSize(rng)
	for i := 0; i < litter; i++ {
		loc, ok := a.field.FreeAdjacent(a.loc)
		if !ok {
			return
		}
		if plant, grown := a.field.PlantAt(loc); grown {
			plant.SetDead()
		}
		baby := NewAnimal(a.species, a.field, loc, shared.Copy().Mutate(rng), p, rng, false)
		*newborns = append(*newborns, baby)
	}
}

// findPartner returns the first live adjacent animal of the same species
// and opposite gender, nil if none.
func (a *Animal) findPartner() *Animal {
	for _, n := range a.field.LivingNeighbourAnimals(a.loc) {
		if n.species.ID == a.species.ID && n.male != a.male {
			return n
		}
	}
	return nil
}

func (a *Animal) breedWith(partner *Animal, p Params, rng *rand.Rand) *genetics.Genetics {
	if p.BlendNumerics {
		if child, err := genetics.BreedBlended(a.genes, partner.genes, p.ParentBias, true, rng); err == nil {
			return child
		}
	}
	return genetics.Breed(a.genes, partner.genes, rng)
}

// litterSize draws the number of offspring for this breeding event, 0
// when underage or the probability draw fails.
func (a *Animal) litterSize(rng *rand.Rand) int {
	if a.age < a.genes.GetBreedingAge() {
		return 0
	}
	if rng.Float64() > a.genes.GetBreedingProbability() {
		return 0
	}
	max := a.genes.GetMaxLitterSize()
	if max < 1 {
		return 0
	}
	return rng.Intn(max) + 1
}
