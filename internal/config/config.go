// Package config loads roofscope configuration.
//
// Precedence, lowest to highest: built-in defaults, the YAML file at
// ~/.roofscope/config.yaml, ROOFSCOPE_* environment variables, CLI flags
// (applied by the command layer).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tbakker/roofscope/internal/engine"
)

// configDirName is the per-user configuration directory.
const configDirName = ".roofscope"

// configFileName is the YAML file inside the config directory.
const configFileName = "config.yaml"

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// OutputConfig controls default rendering.
type OutputConfig struct {
	// Format is the default output format: table, json, or ndjson.
	Format string `yaml:"format"`
}

// Config is the full application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`

	// StoreDir is where the project collection lives. Defaults to the
	// config directory itself.
	StoreDir string `yaml:"store_dir"`

	// Constants overrides the engine's assumption table. Zero fields keep
	// their defaults.
	Constants engine.Constants `yaml:"constants"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging:   LoggingConfig{Level: "info", Format: "console"},
		Output:    OutputConfig{Format: "table"},
		StoreDir:  Dir(),
		Constants: engine.DefaultConstants(),
	}
}

// Dir returns the per-user config directory path. Falls back to the working
// directory when the home directory cannot be determined.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// Load builds the effective configuration from defaults, the config file
// (if present), and environment variables. A missing file is not an error;
// a malformed one is.
func Load() (*Config, error) {
	cfg := Default()

	path := filepath.Join(Dir(), configFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, unmarshalErr)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults apply
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnv(cfg)
	fillConstants(&cfg.Constants)

	if cfg.StoreDir == "" {
		cfg.StoreDir = Dir()
	}
	return cfg, nil
}

// applyEnv overlays ROOFSCOPE_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("ROOFSCOPE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ROOFSCOPE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("ROOFSCOPE_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("ROOFSCOPE_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("ROOFSCOPE_STORE_DIR"); v != "" {
		cfg.StoreDir = v
	}
}

// fillConstants backfills zero-valued constants with defaults, so a partial
// constants block in the config file only overrides what it names.
func fillConstants(c *engine.Constants) {
	def := engine.DefaultConstants()
	if c.SolarSurchargePerM2 == 0 {
		c.SolarSurchargePerM2 = def.SolarSurchargePerM2
	}
	if c.PanelEfficiency == 0 {
		c.PanelEfficiency = def.PanelEfficiency
	}
	if c.EnergyPricePerKWh == 0 {
		c.EnergyPricePerKWh = def.EnergyPricePerKWh
	}
	if c.MaintenancePerM2Year == 0 {
		c.MaintenancePerM2Year = def.MaintenancePerM2Year
	}
	if c.WorkHoursPerDay == 0 {
		c.WorkHoursPerDay = def.WorkHoursPerDay
	}
	if c.EmbodiedCO2PerM2 == 0 {
		c.EmbodiedCO2PerM2 = def.EmbodiedCO2PerM2
	}
}

// Write saves the configuration to the config file, creating the directory
// if needed.
func (c *Config) Write() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
