package sim

import (
	"math/rand"
	"sort"

	"habitat/config"
	"habitat/genetics"
)

// Factory instantiates animals for seeding and testing. Species selection
// is weighted-random with predator and prey weights summing independently.
// Configuration keys are resolved against the species table at
// construction so a weights/table mismatch fails the run up front.
type Factory struct {
	reg    *genetics.Registry
	params Params
	rng    *rand.Rand

	predators     []weightedSpecies
	prey          []weightedSpecies
	predatorTotal float64
	preyTotal     float64
}

type weightedSpecies struct {
	species *Species
	weight  float64
}

// NewFactory builds a factory from the population configuration. It
// returns ErrUnknownSpecies when a weight key has no species table entry.
func NewFactory(cfg *config.Config, reg *genetics.Registry, rng *rand.Rand) (*Factory, error) {
	f := &Factory{
		reg:    reg,
		params: ParamsFromConfig(cfg),
		rng:    rng,
	}
	var err error
	f.predators, f.predatorTotal, err = resolveWeights(cfg.Population.PredatorWeights)
	if err != nil {
		return nil, err
	}
	f.prey, f.preyTotal, err = resolveWeights(cfg.Population.PreyWeights)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// resolveWeights maps configuration keys to species descriptors in a
// deterministic order. Non-positive weights are kept out of the table.
func resolveWeights(weights map[string]float64) ([]weightedSpecies, float64, error) {
	keys := make([]string, 0, len(weights))
	for key := range weights {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var entries []weightedSpecies
	var total float64
	for _, key := range keys {
		sp, err := SpeciesByKey(key)
		if err != nil {
			return nil, 0, err
		}
		w := weights[key]
		if w <= 0 {
			continue
		}
		entries = append(entries, weightedSpecies{species: sp, weight: w})
		total += w
	}
	return entries, total, nil
}

// RandomPredator selects a predator species by weight. A zero total
// weight is a degenerate configuration; the selection falls back to the
// tiger rather than dividing by zero.
func (f *Factory) RandomPredator() *Species {
	return pickWeighted(f.predators, f.predatorTotal, Tiger, f.rng)
}

// RandomPrey selects a prey species by weight, falling back to the hare
// on zero total weight.
func (f *Factory) RandomPrey() *Species {
	return pickWeighted(f.prey, f.preyTotal, Hare, f.rng)
}

func pickWeighted(entries []weightedSpecies, total float64, fallback SpeciesID, rng *rand.Rand) *Species {
	if total <= 0 || len(entries) == 0 {
		return SpeciesByID(fallback)
	}
	draw := rng.Float64() * total
	var cum float64
	for _, e := range entries {
		cum += e.weight
		if draw < cum {
			return e.species
		}
	}
	return entries[len(entries)-1].species
}

// Spawn creates an animal of species sp at loc with freshly drawn
// genetics. randomize seeds a first-generation animal with random age,
// partial food, and a chance of starting infected.
func (f *Factory) Spawn(sp *Species, field *Field, loc Location, randomize bool) *Animal {
	genes := genetics.NewRandom(f.reg, f.rng)
	return NewAnimal(sp, field, loc, genes, f.params, f.rng, randomize)
}

// SpawnPredator creates a weighted-random predator at loc.
func (f *Factory) SpawnPredator(field *Field, loc Location, randomize bool) *Animal {
	return f.Spawn(f.RandomPredator(), field, loc, randomize)
}

// SpawnPrey creates a weighted-random prey animal at loc.
func (f *Factory) SpawnPrey(field *Field, loc Location, randomize bool) *Animal {
	return f.Spawn(f.RandomPrey(), field, loc, randomize)
}
