package sim

import "habitat/config"

// Params is the engine-facing slice of the run configuration: the values
// the lifecycle consults every day. It is plain data so tests can build
// one directly.
type Params struct {
	PlantFoodValue   float64
	PreyFoodValue    float64
	DiseaseDuration  int
	DiseaseMortality float64
	DiseaseImmunity  bool
	BlendNumerics    bool
	ParentBias       float64
}

// ParamsFromConfig extracts the lifecycle parameters from a loaded
// configuration.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		PlantFoodValue:   cfg.Food.PlantValue,
		PreyFoodValue:    cfg.Food.PreyValue,
		DiseaseDuration:  cfg.Disease.Duration,
		DiseaseMortality: cfg.Disease.MortalityRate,
		DiseaseImmunity:  cfg.Disease.Immunity,
		BlendNumerics:    cfg.Genetics.BlendNumerics,
		ParentBias:       cfg.Genetics.ParentBias,
	}
}

// fullFoodLevel is the food level a newborn or well-fed animal starts
// with: prey value for dedicated hunters, plant value for anything that
// grazes.
func (p Params) fullFoodLevel(sp *Species) float64 {
	if sp.Grazes {
		return p.PlantFoodValue
	}
	return p.PreyFoodValue
}
