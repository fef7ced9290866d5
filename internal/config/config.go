// Package config holds the immutable parameter set consumed by the
// simulation core. Parameters are read once, validated, and passed by value;
// nothing in the core reaches back into a file or global state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NumTraits is the length of the physical genome.
const NumTraits = 4

// Indices into the physical genome and its mean/std vectors.
const (
	TraitDeathAge = iota
	TraitSex
	TraitStrength
	TraitVelocity
)

// Config is the full parameter set for one simulation run.
type Config struct {
	GridSize   int `yaml:"grid_size"`
	NCell      int `yaml:"n_cell"`
	NumSim     int `yaml:"num_sim"`
	NumSensors int `yaml:"num_sensors"`
	NumActions int `yaml:"num_actions"`

	MeanDeath    float64 `yaml:"mean_death"`
	StdDeath     float64 `yaml:"std_death"`
	MeanSex      float64 `yaml:"mean_sex"`
	StdSex       float64 `yaml:"std_sex"`
	MeanStrength float64 `yaml:"mean_strength"`
	StdStrength  float64 `yaml:"std_strength"`
	MeanVelocity float64 `yaml:"mean_velocity"`
	StdVelocity  float64 `yaml:"std_velocity"`

	// Derived trait vectors, grouped once at load time so cell construction
	// can index them by trait.
	MeanPhysics [NumTraits]float64 `yaml:"-"`
	StdPhysics  [NumTraits]float64 `yaml:"-"`
}

// Default returns the standard configuration.
func Default() Config {
	c := Config{
		GridSize:     50,
		NCell:        100,
		NumSim:       100,
		NumSensors:   5,
		NumActions:   4,
		MeanDeath:    60,
		StdDeath:     15,
		MeanSex:      0.5,
		StdSex:       0.5,
		MeanStrength: 1,
		StdStrength:  0.3,
		MeanVelocity: 2,
		StdVelocity:  1,
	}
	c.derive()
	return c
}

// Load reads a YAML parameter file and returns the named profile. The file
// maps profile names to parameter blocks; fields missing from the block keep
// their defaults.
func Load(path, profile string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var profiles map[string]Config
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	c, ok := profiles[profile]
	if !ok {
		return Config{}, fmt.Errorf("config %s has no profile %q", path, profile)
	}
	base := Default()
	fillZero(&c, base)
	c.derive()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s profile %q: %w", path, profile, err)
	}
	return c, nil
}

// fillZero copies defaults into integer fields the profile left unset. The
// mean/std pairs are kept as written, zero being a legitimate value there.
func fillZero(c *Config, base Config) {
	if c.GridSize == 0 {
		c.GridSize = base.GridSize
	}
	if c.NCell == 0 {
		c.NCell = base.NCell
	}
	if c.NumSim == 0 {
		c.NumSim = base.NumSim
	}
	if c.NumSensors == 0 {
		c.NumSensors = base.NumSensors
	}
	if c.NumActions == 0 {
		c.NumActions = base.NumActions
	}
}

func (c *Config) derive() {
	c.MeanPhysics = [NumTraits]float64{c.MeanDeath, c.MeanSex, c.MeanStrength, c.MeanVelocity}
	c.StdPhysics = [NumTraits]float64{c.StdDeath, c.StdSex, c.StdStrength, c.StdVelocity}
}

// Validate checks the parameter set for values the core cannot run with.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("grid_size must be positive, got %d", c.GridSize)
	}
	if c.NCell < 0 {
		return fmt.Errorf("n_cell must be non-negative, got %d", c.NCell)
	}
	if c.NumSim <= 0 {
		return fmt.Errorf("num_sim must be positive, got %d", c.NumSim)
	}
	if c.NumSensors != 5 {
		return fmt.Errorf("num_sensors must be 5 to match the sensor set, got %d", c.NumSensors)
	}
	if c.NumActions < 4 {
		return fmt.Errorf("num_actions must be at least 4 to drive movement, got %d", c.NumActions)
	}
	for i, std := range c.StdPhysics {
		if std < 0 {
			return fmt.Errorf("trait %d has negative std %f", i, std)
		}
	}
	return nil
}
