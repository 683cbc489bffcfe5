// Package config provides Viper-based configuration loading for abilityroll.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// RollConfig selects what to roll.
type RollConfig struct {
	// Strategy is the strategy name, e.g. "traditional" or "drop-twice".
	Strategy string `mapstructure:"strategy"`
	// Trials > 0 prints per-position averages over that many trials;
	// 0 prints a single outcome.
	Trials int `mapstructure:"trials"`
	// Seed makes a run reproducible. 0 uses crypto/rand.
	Seed uint64 `mapstructure:"seed"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	// Format is one of "text", "json", "yaml".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Roll    RollConfig    `mapstructure:"roll"`
	Output  OutputConfig  `mapstructure:"output"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRoll(c.Roll); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateOutput(c.Output); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// validateRoll checks the shape of the roll section. Strategy names are
// resolved by the abilities package; only emptiness is checked here.
func validateRoll(r RollConfig) error {
	var errs []string
	if strings.TrimSpace(r.Strategy) == "" {
		errs = append(errs, "roll.strategy must not be empty")
	}
	if r.Trials < 0 {
		errs = append(errs, fmt.Sprintf("roll.trials must be >= 0, got %d", r.Trials))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	validFormats := map[string]bool{"text": true, "json": true, "yaml": true}
	if !validFormats[o.Format] {
		return fmt.Errorf("output.format must be one of [text, json, yaml], got %q", o.Format)
	}
	return nil
}

// Load builds a Config from defaults, the optional YAML file at path, and
// ABILITYROLL_* environment variables, then validates it.
//
// Precondition: path is empty or names a readable YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ABILITYROLL_ prefix
	v.SetEnvPrefix("ABILITYROLL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetDefault("roll.strategy", "traditional")
	v.SetDefault("roll.trials", 0)
	v.SetDefault("roll.seed", 0)

	v.SetDefault("output.format", "text")
}
