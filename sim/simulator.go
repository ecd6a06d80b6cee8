package sim

import (
	"fmt"
	"math/rand"

	"habitat/config"
	"habitat/genetics"
)

// StepReport summarizes one simulated day for callers that track
// population flow: births and deaths per species, deaths broken down by
// cause.
type StepReport struct {
	Step   int
	Births map[SpeciesID]int
	Deaths map[SpeciesID]map[DeathCause]int
}

// TotalBirths returns the number of animals born this step.
func (r StepReport) TotalBirths() int {
	var total int
	for _, n := range r.Births {
		total += n
	}
	return total
}

// TotalDeaths returns the number of animals that died this step.
func (r StepReport) TotalDeaths() int {
	var total int
	for _, causes := range r.Deaths {
		for _, n := range causes {
			total += n
		}
	}
	return total
}

// DeathsByCause flattens the per-species breakdown into cause totals.
func (r StepReport) DeathsByCause() map[DeathCause]int {
	out := make(map[DeathCause]int)
	for _, causes := range r.Deaths {
		for cause, n := range causes {
			out[cause] += n
		}
	}
	return out
}

// Simulator owns one run: the field, the live animal list, the attribute
// registry, and the run's single random source. It is single threaded;
// one Step call fully completes before the next begins, and the caller's
// loop owns pacing and cancellation.
type Simulator struct {
	cfg     *config.Config
	params  Params
	rng     *rand.Rand
	reg     *genetics.Registry
	field   *Field
	factory *Factory

	animals []*Animal
	step    int
}

// New builds a simulator from a validated configuration and seeds the
// initial population. The same seed and configuration always produce the
// same run.
func New(cfg *config.Config, seed int64) (*Simulator, error) {
	rng := rand.New(rand.NewSource(seed))

	reg := genetics.DefaultRegistry(cfg.Genetics.MutationProbability)
	for _, name := range cfg.Genetics.DisabledAttributes {
		attr, err := genetics.ParseAttribute(name)
		if err != nil {
			return nil, fmt.Errorf("disabling attribute: %w", err)
		}
		if err := reg.SetActive(attr, false); err != nil {
			return nil, fmt.Errorf("disabling attribute %s: %w", attr, err)
		}
	}

	factory, err := NewFactory(cfg, reg, rng)
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		cfg:     cfg,
		params:  ParamsFromConfig(cfg),
		rng:     rng,
		reg:     reg,
		field:   NewField(cfg.Field.Height, cfg.Field.Width, rng),
		factory: factory,
	}
	s.Reset()
	return s, nil
}

// Reset clears the field and reseeds the initial population. The step
// counter restarts at zero; the random source keeps advancing, so Reset
// does not replay the previous run.
func (s *Simulator) Reset() {
	s.field.Clear()
	s.animals = s.animals[:0]
	s.step = 0
	s.populate()
}

// populate fills every cell: a weighted-random predator or prey animal
// by the configured densities, a plant otherwise. First-generation
// animals start at a random age with a chance of infection.
func (s *Simulator) populate() {
	predProb := s.cfg.Population.PredatorProbability
	preyProb := s.cfg.Population.PreyProbability
	for row := 0; row < s.field.Height(); row++ {
		for col := 0; col < s.field.Width(); col++ {
			loc := Location{Row: row, Col: col}
			if s.rng.Float64() <= predProb {
				s.animals = append(s.animals, s.factory.SpawnPredator(s.field, loc, true))
			} else if s.rng.Float64() <= preyProb {
				s.animals = append(s.animals, s.factory.SpawnPrey(s.field, loc, true))
			} else {
				NewPlant(s.field, loc)
			}
		}
	}
}

// Step advances the world by exactly one simulated day: every live
// animal takes its turn in list order, newborns are merged afterwards,
// and the dead are dropped from the list.
func (s *Simulator) Step() StepReport {
	s.step++
	report := StepReport{
		Step:   s.step,
		Births: make(map[SpeciesID]int),
		Deaths: make(map[SpeciesID]map[DeathCause]int),
	}

	var newborns []*Animal
	for _, a := range s.animals {
		a.Act(s.params, s.rng, &newborns)
	}
	for _, b := range newborns {
		report.Births[b.Species().ID]++
	}

	survivors := s.animals[:0]
	for _, a := range s.animals {
		if a.Alive() {
			survivors = append(survivors, a)
		} else {
			report.recordDeath(a)
		}
	}
	// A newborn can already be dead here: born next to a predator that
	// acted later the same day.
	for _, b := range newborns {
		if b.Alive() {
			survivors = append(survivors, b)
		} else {
			report.recordDeath(b)
		}
	}
	s.animals = survivors
	return report
}

func (r *StepReport) recordDeath(a *Animal) {
	id := a.Species().ID
	if r.Deaths[id] == nil {
		r.Deaths[id] = make(map[DeathCause]int)
	}
	r.Deaths[id][a.DeathCause()]++
}

// Field returns the simulator's grid.
func (s *Simulator) Field() *Field { return s.field }

// Animals returns the live animal list. Callers must not mutate it.
func (s *Simulator) Animals() []*Animal { return s.animals }

// Registry returns the attribute registry for this run.
func (s *Simulator) Registry() *genetics.Registry { return s.reg }

// StepCount returns the number of completed days.
func (s *Simulator) StepCount() int { return s.step }

// Stats computes a census of the current field.
func (s *Simulator) Stats() FieldStats { return ComputeStats(s.field) }

// Viable reports whether any animal species still has live members.
func (s *Simulator) Viable() bool { return s.Stats().Viable() }
