package telemetry

import (
	"time"

	"habitat/sim"
)

// Collector accumulates step reports within fixed-size windows and
// produces WindowStats. It also times each step so the window carries a
// mean wall-time per simulated day.
type Collector struct {
	window      int
	windowStart int

	births int
	deaths map[sim.DeathCause]int

	stepTime  time.Duration
	stepCount int
	stepStart time.Time
}

// NewCollector creates a collector flushing every window steps. Windows
// shorter than one step are clamped to one.
func NewCollector(window int) *Collector {
	if window < 1 {
		window = 1
	}
	return &Collector{
		window: window,
		deaths: make(map[sim.DeathCause]int),
	}
}

// StartStep marks the beginning of a simulated day for wall-time
// tracking.
func (c *Collector) StartStep() {
	c.stepStart = time.Now()
}

// Record folds one step report into the current window and closes the
// step timer opened by StartStep.
func (c *Collector) Record(report sim.StepReport) {
	if !c.stepStart.IsZero() {
		c.stepTime += time.Since(c.stepStart)
		c.stepStart = time.Time{}
	}
	c.stepCount++
	c.births += report.TotalBirths()
	for cause, n := range report.DeathsByCause() {
		c.deaths[cause] += n
	}
}

// ShouldFlush reports whether the window ending at step is complete.
func (c *Collector) ShouldFlush(step int) bool {
	return step-c.windowStart >= c.window
}

// Flush produces the window's stats and resets the counters. The caller
// supplies the end-of-window census and the food and age samples of the
// live population.
func (c *Collector) Flush(step int, stats sim.FieldStats, foodLevels, ages []float64) WindowStats {
	food := ComputeDistribution(foodLevels)
	age := ComputeDistribution(ages)

	w := WindowStats{
		WindowStart: c.windowStart,
		WindowEnd:   step,

		Tigers:    stats.Animals[sim.Tiger],
		Leopards:  stats.Animals[sim.Leopard],
		Hares:     stats.Animals[sim.Hare],
		Deer:      stats.Animals[sim.Deer],
		WildBoars: stats.Animals[sim.WildBoar],
		Plants:    stats.Plants,
		Infected:  stats.TotalInfected(),

		Births:             c.births,
		DeathsOldAge:       c.deaths[sim.CauseOldAge],
		DeathsStarvation:   c.deaths[sim.CauseStarvation],
		DeathsDisease:      c.deaths[sim.CauseDisease],
		DeathsOvercrowding: c.deaths[sim.CauseOvercrowding],
		Kills:              c.deaths[sim.CauseEaten],

		FoodMean: food.Mean,
		FoodStd:  food.Std,
		FoodP10:  food.P10,
		FoodP50:  food.P50,
		FoodP90:  food.P90,

		AgeMean: age.Mean,
		AgeP50:  age.P50,
		AgeP90:  age.P90,
	}
	for _, n := range c.deaths {
		w.Deaths += n
	}
	if c.stepCount > 0 {
		w.StepMillis = float64(c.stepTime.Milliseconds()) / float64(c.stepCount)
	}

	c.windowStart = step
	c.births = 0
	c.deaths = make(map[sim.DeathCause]int)
	c.stepTime = 0
	c.stepCount = 0
	return w
}

// Samples extracts the food and age samples Flush consumes from the
// live animal list.
func Samples(animals []*sim.Animal) (foodLevels, ages []float64) {
	foodLevels = make([]float64, 0, len(animals))
	ages = make([]float64, 0, len(animals))
	for _, a := range animals {
		if !a.Alive() {
			continue
		}
		foodLevels = append(foodLevels, a.FoodLevel())
		ages = append(ages, float64(a.Age()))
	}
	return foodLevels, ages
}
