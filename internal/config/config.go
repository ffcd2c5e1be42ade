// Package config loads and validates the run configuration. Values come
// from environment variables first (prefix HOUSING), overlaid by an
// optional YAML file, then validated as a whole.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/iSMASHMAN/housing-group8-project/internal/cleaning"
)

// Config represents the complete application configuration.
type Config struct {
	Datasets DatasetsConfig `yaml:"datasets" envconfig:"DATASETS"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
}

// DatasetsConfig names the datasets the run works with. Only the required
// dataset is fatal when missing; optional datasets degrade to empty.
type DatasetsConfig struct {
	Required string   `yaml:"required" envconfig:"REQUIRED" default:"Housing" validate:"required"`
	Optional []string `yaml:"optional" envconfig:"OPTIONAL" default:"Electronics,Clothing"`
}

// CleaningConfig tunes the cleaning pipeline.
type CleaningConfig struct {
	MissingTokens []string `yaml:"missing_tokens" envconfig:"MISSING_TOKENS"`
	Tolerance     float64  `yaml:"tolerance" envconfig:"TOLERANCE" default:"0.000001" validate:"gt=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/housing-report.log"`
}

// Load loads configuration from environment variables and, when present,
// the YAML file at configFile (pass "" to use HOUSING_CONFIG or skip).
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("HOUSING", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile == "" {
		configFile = os.Getenv("HOUSING_CONFIG")
	}
	if configFile != "" {
		if err := overlayFile(&cfg, configFile); err != nil {
			return nil, err
		}
	}

	if len(cfg.Cleaning.MissingTokens) == 0 {
		cfg.Cleaning.MissingTokens = cleaning.DefaultMissingTokens
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration against its declared constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
