package main

import (
	"math"
	"sync"

	"habitat/config"
	"habitat/sim"
)

// checkEvery is how often (in simulated days) a run is censused for
// extinction and balance.
const checkEvery = 10

// FitnessEvaluator runs headless simulations and scores parameter
// vectors. Lower fitness is better.
type FitnessEvaluator struct {
	params     *ParamVector
	maxSteps   int
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastQuality float64
}

// NewFitnessEvaluator creates an evaluator running every seed per
// parameter vector.
func NewFitnessEvaluator(params *ParamVector, maxSteps int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxSteps:   maxSteps,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastQuality returns the balance score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the outcome of a single run.
type runResult struct {
	survivalDays int
	quality      float64
}

// Evaluate scores a raw parameter vector. Fitness is negative survival
// days scaled by a balance bonus, averaged over the seeds. Seeds run in
// parallel; each owns its simulator and random source.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(raw, s)
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += -float64(r.survivalDays) * (1 + 0.2*r.quality)
		totalQuality += r.quality
	}
	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes one headless run until predator or prey
// extinction, or until the step budget is spent.
func (fe *FitnessEvaluator) runSimulation(raw []float64, seed int64) runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, raw)

	s, err := sim.New(cfg, seed)
	if err != nil {
		// Clamped parameters always validate; an error here means the
		// base config itself is broken, which main checked already.
		return runResult{}
	}

	var result runResult
	var samples int
	for day := 1; day <= fe.maxSteps; day++ {
		s.Step()
		if day%checkEvery != 0 {
			continue
		}

		predators, prey := census(s)
		if predators == 0 || prey == 0 {
			result.survivalDays = day
			result.quality /= math.Max(float64(samples), 1)
			return result
		}
		// Balance: how close the minority side is to an even split.
		minority := math.Min(float64(predators), float64(prey))
		result.quality += 2 * minority / float64(predators+prey)
		samples++
	}

	result.survivalDays = fe.maxSteps
	result.quality /= math.Max(float64(samples), 1)
	return result
}

// census splits the live population into dedicated hunters and grazers.
func census(s *sim.Simulator) (predators, prey int) {
	stats := s.Stats()
	for _, sp := range sim.AllSpecies() {
		n := stats.Animals[sp.ID]
		if sp.Grazes {
			prey += n
		} else {
			predators += n
		}
	}
	return predators, prey
}

func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
