package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNx       = 81
	DefaultLength   = 2.0
	DefaultSteps    = 25
	DefaultDt       = 0.025
	DefaultSpeed    = 1.0
	DefaultIC       = "hat"
	DefaultBoundary = "wrap"
)

type Config struct {
	Nx               int     `yaml:"nx"`
	Length           float64 `yaml:"length"`
	Steps            int     `yaml:"steps"`
	Dt               float64 `yaml:"dt"`
	WaveSpeed        float64 `yaml:"wave_speed"`
	InitialCondition string  `yaml:"initial_condition"`
	Boundary         string  `yaml:"boundary"`
	SnapshotEvery    int     `yaml:"snapshot_every"`
}

func DefaultConfig() *Config {
	return &Config{
		Nx:               DefaultNx,
		Length:           DefaultLength,
		Steps:            DefaultSteps,
		Dt:               DefaultDt,
		WaveSpeed:        DefaultSpeed,
		InitialCondition: DefaultIC,
		Boundary:         DefaultBoundary,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Dx returns the grid spacing implied by the config.
func (c *Config) Dx() float64 {
	if c.Nx < 2 {
		return c.Length
	}
	return c.Length / float64(c.Nx-1)
}

// Courant returns c*dt/dx implied by the config.
func (c *Config) Courant() float64 {
	return c.WaveSpeed * c.Dt / c.Dx()
}
