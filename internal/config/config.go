package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the arith CLI
type Config struct {
	// Precision is the number of decimal places printed for results.
	// -1 selects the shortest representation that round-trips.
	Precision int `yaml:"precision" env:"ARITH_PRECISION"`

	// HistoryEnabled toggles recording of evaluations to disk
	HistoryEnabled bool `yaml:"history_enabled" env:"ARITH_HISTORY_ENABLED"`

	// HistoryPath is the msgpack file evaluations are persisted to
	HistoryPath string `yaml:"history_path" env:"ARITH_HISTORY_PATH"`

	// HistorySize bounds how many evaluations are kept
	HistorySize int `yaml:"history_size" env:"ARITH_HISTORY_SIZE"`

	// Logging
	Verbose bool `yaml:"verbose" env:"ARITH_VERBOSE"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Precision:      -1,
		HistoryEnabled: true,
		HistoryPath:    defaultHistoryPath(),
		HistorySize:    100,
		Verbose:        false,
	}
}

// globalConfigFilePath returns the global config file path (~/.arith/config.yaml)
func globalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".arith/config.yaml"
	}
	return filepath.Join(home, ".arith", "config.yaml")
}

// projectConfigFilePath returns the project-level config file path (./.arith/config.yaml)
func projectConfigFilePath() string {
	return ".arith/config.yaml"
}

// defaultHistoryPath returns the default history file path (~/.arith/history.msgpack)
func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".arith/history.msgpack"
	}
	return filepath.Join(home, ".arith", "history.msgpack")
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Environment variables
// 2. Project-level config (./.arith/config.yaml)
// 3. Global config (~/.arith/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	globalConfigPath := globalConfigFilePath()
	if data, err := os.ReadFile(globalConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", globalConfigPath, err)
		}
	}

	projectConfigPath := projectConfigFilePath()
	if data, err := os.ReadFile(projectConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", projectConfigPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads configuration from a specific YAML file path
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file path.
// It creates parent directories if they don't exist.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// SaveGlobal writes the configuration to the global config path.
func (c *Config) SaveGlobal() error {
	return c.Save(globalConfigFilePath())
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ARITH_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Precision = n
		}
	}
	if v := os.Getenv("ARITH_HISTORY_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.HistoryEnabled = b
		}
	}
	if v := os.Getenv("ARITH_HISTORY_PATH"); v != "" {
		cfg.HistoryPath = v
	}
	if v := os.Getenv("ARITH_HISTORY_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HistorySize = n
		}
	}
	if v := os.Getenv("ARITH_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Precision < -1 || c.Precision > 15 {
		return fmt.Errorf("precision must be between -1 and 15, got %d", c.Precision)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("history_size must be positive, got %d", c.HistorySize)
	}
	if c.HistoryEnabled && c.HistoryPath == "" {
		return fmt.Errorf("history_path must be set when history is enabled")
	}
	return nil
}
