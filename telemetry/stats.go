// Package telemetry aggregates per-step simulation reports into fixed
// windows and writes them out as CSV for offline analysis.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one window of simulated
// days. Population columns are the census at window end; event columns
// sum over the window.
type WindowStats struct {
	WindowStart int `csv:"-"`
	WindowEnd   int `csv:"window_end"`

	// Population at window end
	Tigers    int `csv:"tigers"`
	Leopards  int `csv:"leopards"`
	Hares     int `csv:"hares"`
	Deer      int `csv:"deer"`
	WildBoars int `csv:"wild_boars"`
	Plants    int `csv:"plants"`
	Infected  int `csv:"infected"`

	// Events during window
	Births             int `csv:"births"`
	Deaths             int `csv:"deaths"`
	DeathsOldAge       int `csv:"deaths_old_age"`
	DeathsStarvation   int `csv:"deaths_starvation"`
	DeathsDisease      int `csv:"deaths_disease"`
	DeathsOvercrowding int `csv:"deaths_overcrowding"`
	Kills              int `csv:"kills"`

	// Food reserve distribution (sampled at window end)
	FoodMean float64 `csv:"food_mean"`
	FoodStd  float64 `csv:"food_std"`
	FoodP10  float64 `csv:"food_p10"`
	FoodP50  float64 `csv:"food_p50"`
	FoodP90  float64 `csv:"food_p90"`

	// Age distribution (sampled at window end)
	AgeMean float64 `csv:"age_mean"`
	AgeP50  float64 `csv:"age_p50"`
	AgeP90  float64 `csv:"age_p90"`

	// Wall time per simulated day, averaged over the window
	StepMillis float64 `csv:"step_ms"`
}

// Animals returns the live animal count at window end.
func (w WindowStats) Animals() int {
	return w.Tigers + w.Leopards + w.Hares + w.Deer + w.WildBoars
}

// LogValue renders the window as a structured record for slog.
func (w WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day", w.WindowEnd),
		slog.Int("animals", w.Animals()),
		slog.Int("plants", w.Plants),
		slog.Int("infected", w.Infected),
		slog.Int("births", w.Births),
		slog.Int("deaths", w.Deaths),
		slog.Int("kills", w.Kills),
		slog.Float64("food_mean", w.FoodMean),
	)
}

// Distribution summarizes a sample: mean, standard deviation, and three
// quantiles. The zero value stands for an empty sample.
type Distribution struct {
	Mean float64
	Std  float64
	P10  float64
	P50  float64
	P90  float64
}

// ComputeDistribution summarizes values. The input is not modified.
func ComputeDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		d.Std = stat.StdDev(sorted, nil)
	}
	return d
}
