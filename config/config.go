// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters. It is consumed,
// never produced, by the engine: load it once and pass it into the
// Simulator and Factory at construction.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Food       FoodConfig       `yaml:"food"`
	Disease    DiseaseConfig    `yaml:"disease"`
	Genetics   GeneticsConfig   `yaml:"genetics"`
	Population PopulationConfig `yaml:"population"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// FieldConfig holds the grid dimensions.
type FieldConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// FoodConfig holds the food levels gained by consuming organisms.
type FoodConfig struct {
	PlantValue float64 `yaml:"plant_value"` // food level after grazing a plant
	PreyValue  float64 `yaml:"prey_value"`  // food level after a kill
}

// DiseaseConfig holds the infection parameters shared by every animal.
type DiseaseConfig struct {
	Duration      int     `yaml:"duration"`       // days an infection lasts before resolution
	MortalityRate float64 `yaml:"mortality_rate"` // probability of death at resolution
	Immunity      bool    `yaml:"immunity"`       // recovered animals cannot be re-infected
}

// GeneticsConfig holds breeding and mutation parameters.
type GeneticsConfig struct {
	MutationProbability float64  `yaml:"mutation_probability"` // per-attribute chance per breeding event
	BlendNumerics       bool     `yaml:"blend_numerics"`       // average numeric attributes instead of picking a parent
	ParentBias          float64  `yaml:"parent_bias"`          // weight towards the mother, 0..1
	DisabledAttributes  []string `yaml:"disabled_attributes"`  // attribute names to deactivate
}

// PopulationConfig holds initial seeding densities and spawn weights.
// Predator and prey weights sum independently.
type PopulationConfig struct {
	PredatorProbability float64            `yaml:"predator_probability"`
	PreyProbability     float64            `yaml:"prey_probability"`
	PredatorWeights     map[string]float64 `yaml:"predator_weights"`
	PreyWeights         map[string]float64 `yaml:"prey_weights"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	Window int `yaml:"window"` // steps per stats window
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Field.Height <= 0 || c.Field.Width <= 0 {
		return fmt.Errorf("config: field dimensions must be positive, got %dx%d",
			c.Field.Height, c.Field.Width)
	}
	if c.Disease.Duration < 1 {
		return fmt.Errorf("config: disease duration must be at least 1, got %d", c.Disease.Duration)
	}
	if c.Genetics.ParentBias < 0 || c.Genetics.ParentBias > 1 {
		return fmt.Errorf("config: parent_bias %g outside [0, 1]", c.Genetics.ParentBias)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
