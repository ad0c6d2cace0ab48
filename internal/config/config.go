// Package config provides configuration management for rigup using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/rigup/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "rigup"

// Config represents the top-level configuration structure.
// Everything is optional: a machine with no config file gets the full
// catalog with defaults.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// Skip lists capability names that should be recorded as skipped
	// instead of attempted. Required capabilities cannot be skipped.
	Skip []string `mapstructure:"skip" yaml:"skip"`

	// Toolchains toggles individual toolchain strategies by name.
	// Absent entries default to enabled.
	Toolchains map[string]bool `mapstructure:"toolchains" yaml:"toolchains"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support
	viper.SetEnvPrefix("RIGUP")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ToolchainEnabled reports whether the named toolchain strategy should run.
// Toolchains are enabled unless explicitly disabled.
func (c *Config) ToolchainEnabled(name string) bool {
	if c == nil || c.Toolchains == nil {
		return true
	}
	enabled, ok := c.Toolchains[name]
	if !ok {
		return true
	}
	return enabled
}

// ShouldSkip reports whether the capability name is on the skip list.
func (c *Config) ShouldSkip(name string) bool {
	if c == nil {
		return false
	}
	for _, s := range c.Skip {
		if s == name {
			return true
		}
	}
	return false
}
