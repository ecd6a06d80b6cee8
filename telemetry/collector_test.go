package telemetry

import (
	"testing"

	"habitat/sim"
)

func testReport(step, hareBirths int, tigerDeaths map[sim.DeathCause]int) sim.StepReport {
	r := sim.StepReport{
		Step:   step,
		Births: map[sim.SpeciesID]int{sim.Hare: hareBirths},
		Deaths: map[sim.SpeciesID]map[sim.DeathCause]int{},
	}
	if len(tigerDeaths) > 0 {
		r.Deaths[sim.Tiger] = tigerDeaths
	}
	return r
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(2)

	c.Record(testReport(1, 2, map[sim.DeathCause]int{sim.CauseStarvation: 1}))
	if c.ShouldFlush(1) {
		t.Error("flush due after one of two steps")
	}
	c.Record(testReport(2, 1, map[sim.DeathCause]int{sim.CauseEaten: 3}))
	if !c.ShouldFlush(2) {
		t.Fatal("flush not due at window end")
	}

	census := sim.FieldStats{
		Animals:  map[sim.SpeciesID]int{sim.Hare: 6, sim.Tiger: 2},
		Infected: map[sim.SpeciesID]int{sim.Hare: 1},
		Plants:   40,
	}
	w := c.Flush(2, census, []float64{4, 6}, []float64{10, 20})

	if w.WindowStart != 0 || w.WindowEnd != 2 {
		t.Errorf("window = [%d, %d], want [0, 2]", w.WindowStart, w.WindowEnd)
	}
	if w.Births != 3 {
		t.Errorf("births = %d, want 3", w.Births)
	}
	if w.Deaths != 4 {
		t.Errorf("deaths = %d, want 4", w.Deaths)
	}
	if w.DeathsStarvation != 1 || w.Kills != 3 {
		t.Errorf("starvation/kills = %d/%d, want 1/3", w.DeathsStarvation, w.Kills)
	}
	if w.Hares != 6 || w.Tigers != 2 || w.Plants != 40 || w.Infected != 1 {
		t.Errorf("census columns = %d/%d/%d/%d, want 6/2/40/1", w.Hares, w.Tigers, w.Plants, w.Infected)
	}
	if w.FoodMean != 5 {
		t.Errorf("food mean = %v, want 5", w.FoodMean)
	}
	if w.AgeMean != 15 {
		t.Errorf("age mean = %v, want 15", w.AgeMean)
	}
}

func TestCollectorResetsAfterFlush(t *testing.T) {
	c := NewCollector(2)
	c.Record(testReport(1, 5, map[sim.DeathCause]int{sim.CauseDisease: 2}))
	c.Record(testReport(2, 0, nil))
	c.Flush(2, sim.FieldStats{}, nil, nil)

	if c.ShouldFlush(3) {
		t.Error("flush due one step into a fresh window")
	}
	c.Record(testReport(3, 0, nil))
	c.Record(testReport(4, 0, nil))
	w := c.Flush(4, sim.FieldStats{}, nil, nil)

	if w.WindowStart != 2 || w.WindowEnd != 4 {
		t.Errorf("second window = [%d, %d], want [2, 4]", w.WindowStart, w.WindowEnd)
	}
	if w.Births != 0 || w.Deaths != 0 {
		t.Errorf("second window events = %d births %d deaths, want none", w.Births, w.Deaths)
	}
}

func TestCollectorClampsWindow(t *testing.T) {
	c := NewCollector(0)
	c.Record(testReport(1, 0, nil))
	if !c.ShouldFlush(1) {
		t.Error("window below one step was not clamped")
	}
}
