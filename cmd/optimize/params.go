// Package main provides CMA-ES search for habitat configuration
// parameters that keep predator and prey populations coexisting.
package main

import (
	"math"

	"habitat/config"
)

// ParamSpec defines a single searchable parameter.
type ParamSpec struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
	Integer bool
}

// ParamVector holds the set of all searchable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of searchable parameters.
// Attribute ranges themselves are fixed; the search covers the run
// configuration around them.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "plant_value", Min: 3, Max: 15, Default: 9},
			{Name: "prey_value", Min: 3, Max: 15, Default: 9},
			{Name: "predator_probability", Min: 0.01, Max: 0.08, Default: 0.03},
			{Name: "prey_probability", Min: 0.03, Max: 0.2, Default: 0.09},
			{Name: "mutation_probability", Min: 0, Max: 0.5, Default: 0.2},
			{Name: "disease_duration", Min: 1, Max: 10, Default: 5, Integer: true},
			{Name: "disease_mortality", Min: 0, Max: 1, Default: 0.3},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to the [0,1] search space.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] search coordinates back to raw values.
func (pv *ParamVector) Denormalize(x []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + x[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp bounds raw values to their declared ranges. CMA-ES proposals can
// step outside the box.
func (pv *ParamVector) Clamp(raw []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v := raw[i]
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
		if spec.Integer {
			v = math.Round(v)
		}
		clamped[i] = v
	}
	return clamped
}

// ApplyToConfig writes clamped raw values into a configuration.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, raw []float64) {
	clamped := pv.Clamp(raw)
	for i, spec := range pv.Specs {
		v := clamped[i]
		switch spec.Name {
		case "plant_value":
			cfg.Food.PlantValue = v
		case "prey_value":
			cfg.Food.PreyValue = v
		case "predator_probability":
			cfg.Population.PredatorProbability = v
		case "prey_probability":
			cfg.Population.PreyProbability = v
		case "mutation_probability":
			cfg.Genetics.MutationProbability = v
		case "disease_duration":
			cfg.Disease.Duration = int(v)
		case "disease_mortality":
			cfg.Disease.MortalityRate = v
		}
	}
}
