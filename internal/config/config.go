// Package config handles filtrate configuration loading.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid")

// Config is the root configuration structure.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Build   BuildConfig   `yaml:"build"`
	Cache   CacheConfig   `yaml:"cache"`
	Report  ReportConfig  `yaml:"report"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig selects the sampled point cloud.
type DatasetConfig struct {
	Kind   string  `yaml:"kind"`
	Points int     `yaml:"points"`
	Seed   int64   `yaml:"seed"`
	Noise  float64 `yaml:"noise"`
}

// BuildConfig holds filtration build settings.
type BuildConfig struct {
	MaxDim    int     `yaml:"max_dim"`
	Threshold float64 `yaml:"threshold"`
	// Bigraded switches to the codensity × distance bifiltration.
	Bigraded bool `yaml:"bigraded"`
	// K is the codensity neighbour rank, used when Bigraded is set.
	K int `yaml:"k"`
}

// CacheConfig holds distance-matrix cache settings. An empty Dir disables it.
type CacheConfig struct {
	Dir        string `yaml:"dir"`
	MemEntries int    `yaml:"mem_entries"`
}

// ReportConfig holds output settings. An empty Path writes to stdout.
type ReportConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Kind:   "circle",
			Points: 64,
			Seed:   1,
		},
		Build: BuildConfig{
			MaxDim:    2,
			Threshold: 0.5,
			K:         4,
		},
		Cache: CacheConfig{
			MemEntries: 64,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports the first out-of-range value, wrapping ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.Dataset.Points <= 0:
		return fmt.Errorf("%w: dataset.points=%d must be > 0", ErrInvalid, c.Dataset.Points)
	case c.Dataset.Noise < 0 || math.IsNaN(c.Dataset.Noise):
		return fmt.Errorf("%w: dataset.noise=%v must be >= 0", ErrInvalid, c.Dataset.Noise)
	case c.Build.MaxDim < 0:
		return fmt.Errorf("%w: build.max_dim=%d must be >= 0", ErrInvalid, c.Build.MaxDim)
	case c.Build.Threshold < 0 || math.IsNaN(c.Build.Threshold):
		return fmt.Errorf("%w: build.threshold=%v must be >= 0", ErrInvalid, c.Build.Threshold)
	case c.Build.Bigraded && (c.Build.K < 1 || c.Build.K >= c.Dataset.Points):
		return fmt.Errorf("%w: build.k=%d must be in [1,%d)", ErrInvalid, c.Build.K, c.Dataset.Points)
	}

	return nil
}

// Load loads configuration from a file, on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads config from path, or returns default if not found.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
