// Package benchconfig loads and saves the YAML configuration for a
// benchmark run: how many keys to drive through each tree variant, how
// wide the keys are, and what mix of operations to issue. It carries over
// github.com/ssargent/freyjadb's pkg/config struct shape and function
// names (LoadConfig/SaveConfig/DefaultConfig), replacing the server-bind
// fields with benchmark parameters.
package benchconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validVariants are the store names a Config's Variants list may name.
var validVariants = map[string]bool{"eb32": true, "ebmb": true, "pebble": true}

// Config describes one benchmark run.
type Config struct {
	// KeyCount is the number of keys to insert before measuring.
	KeyCount int `yaml:"key_count"`

	// KeyWidth is the width in bytes of each key, used by the ebmb and
	// pebble variants. The eb32 variant ignores it (its keys are always
	// 4 bytes).
	KeyWidth int `yaml:"key_width"`

	// Variants lists which stores to exercise: any of "eb32", "ebmb",
	// "pebble".
	Variants []string `yaml:"variants"`

	Workload Workload `yaml:"workload"`
	Logging  Logging  `yaml:"logging"`
}

// Workload describes the relative mix of operations a run issues after
// the initial load, as fractions that should sum to 1.0.
type Workload struct {
	LookupFraction float64 `yaml:"lookup_fraction"`
	InsertFraction float64 `yaml:"insert_fraction"`
	DeleteFraction float64 `yaml:"delete_fraction"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default benchmark configuration.
func DefaultConfig() *Config {
	return &Config{
		KeyCount: 100_000,
		KeyWidth: 16,
		Variants: []string{"eb32", "ebmb", "pebble"},
		Workload: Workload{
			LookupFraction: 0.8,
			InsertFraction: 0.1,
			DeleteFraction: 0.1,
		},
		Logging: Logging{Level: "info"},
	}
}

// Validate reports whether the configuration describes a runnable
// benchmark: a positive key count and width, at least one recognized
// variant, and workload fractions that sum to 1 (within floating-point
// tolerance).
func (c *Config) Validate() error {
	if c.KeyCount <= 0 {
		return fmt.Errorf("key_count must be positive, got %d", c.KeyCount)
	}
	if c.KeyWidth <= 0 {
		return fmt.Errorf("key_width must be positive, got %d", c.KeyWidth)
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("variants must name at least one store to exercise")
	}
	for _, v := range c.Variants {
		if !validVariants[v] {
			return fmt.Errorf("unknown variant %q", v)
		}
	}
	sum := c.Workload.LookupFraction + c.Workload.InsertFraction + c.Workload.DeleteFraction
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("workload fractions must sum to 1, got %.4f", sum)
	}
	return nil
}

// LoadConfig loads a benchmark configuration from the specified path and
// validates it before returning.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config at %s: %w", configPath, err)
	}

	return &config, nil
}

// SaveConfig validates the configuration and saves it to the specified
// path.
func SaveConfig(config *Config, configPath string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ConfigExists reports whether a configuration file exists at configPath.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

// defaultConfigEnvVar names the environment variable that overrides the
// path GetDefaultConfigPath returns.
const defaultConfigEnvVar = "EBMBTREEBENCH_CONFIG"

// GetDefaultConfigPath returns a default location for the config file:
// the value of EBMBTREEBENCH_CONFIG if set, otherwise config.yaml under
// ~/.config/ebmbtreebench (./ebmbtreebench.yaml if the home directory is
// unknown). LoadConfig and SaveConfig do not consult it, since both take an
// explicit path, and the bench command does not call it.
func GetDefaultConfigPath() string {
	if p := os.Getenv(defaultConfigEnvVar); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./ebmbtreebench.yaml"
	}
	configDir := filepath.Join(homeDir, ".config", "ebmbtreebench")
	return filepath.Join(configDir, "config.yaml")
}
