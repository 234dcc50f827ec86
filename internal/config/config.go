package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config holds all skyline configuration.
type Config struct {
	// Solver configuration
	Solver SolverConfig `yaml:"solver"`

	// Input parsing
	Loader LoaderConfig `yaml:"loader"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig configures the divide-and-conquer solver.
type SolverConfig struct {
	Strategy string `yaml:"strategy"` // recursive, inplace

	// Number of top recursion levels whose halves are solved on separate
	// goroutines. 0 keeps the solver single-threaded.
	ParallelDepth int `yaml:"parallel_depth"`
}

// LoaderConfig configures input parsing.
type LoaderConfig struct {
	// Signed integer width for coordinates: 8, 16, 32 or 64.
	CoordinateBits int `yaml:"coordinate_bits"`

	// Upper bound on the capacity preallocated from the declared point count.
	MaxCapacityHint int `yaml:"max_capacity_hint"`
}

// Solver strategies.
const (
	StrategyRecursive = "recursive"
	StrategyInPlace   = "inplace"
)

// ValidStrategies lists all supported solver strategies.
var ValidStrategies = []string{StrategyRecursive, StrategyInPlace}

// ValidCoordinateBits lists the accepted coordinate widths.
var ValidCoordinateBits = []int{8, 16, 32, 64}

// maxParallelDepth bounds the fork depth to 2^maxParallelDepth goroutines.
const maxParallelDepth = 16

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Strategy:      StrategyRecursive,
			ParallelDepth: 0,
		},
		Loader: LoaderConfig{
			CoordinateBits:  16,
			MaxCapacityHint: 1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidStrategies, c.Solver.Strategy) {
		return fmt.Errorf("invalid solver strategy: %s (valid: %v)", c.Solver.Strategy, ValidStrategies)
	}
	if c.Solver.ParallelDepth < 0 || c.Solver.ParallelDepth > maxParallelDepth {
		return fmt.Errorf("invalid solver parallel_depth: %d (valid: 0..%d)", c.Solver.ParallelDepth, maxParallelDepth)
	}

	if !slices.Contains(ValidCoordinateBits, c.Loader.CoordinateBits) {
		return fmt.Errorf("invalid loader coordinate_bits: %d (valid: %v)", c.Loader.CoordinateBits, ValidCoordinateBits)
	}
	if c.Loader.MaxCapacityHint < 0 {
		return fmt.Errorf("invalid loader max_capacity_hint: %d", c.Loader.MaxCapacityHint)
	}

	return c.Logging.Validate()
}
