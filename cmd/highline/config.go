package main

import (
	"fmt"

	"github.com/KasperOmsK/highline/internal/config"
	"github.com/KasperOmsK/highline/internal/logging"
)

// Config is the configuration of the highline command.
type Config struct {
	Logging logging.Config `yaml:"logging" mapstructure:"logging"`
	Prompt  PromptConfig   `yaml:"prompt" mapstructure:"prompt"`
}

// PromptConfig tunes the questions asked by the command.
type PromptConfig struct {
	LegalAge int    `yaml:"legal_age" mapstructure:"legal_age"`
	ExitKey  string `yaml:"exit_key" mapstructure:"exit_key"`
}

var defaults = map[string]any{
	"logging.level":    "warn",
	"logging.format":   "console",
	"logging.no_color": false,
	"prompt.legal_age": 21,
	"prompt.exit_key":  "q",
}

// Validate validates the command configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Prompt.LegalAge < 0 {
		return fmt.Errorf("prompt.legal_age must not be negative (got: %d)", c.Prompt.LegalAge)
	}
	if c.Prompt.ExitKey == "" {
		return fmt.Errorf("prompt.exit_key is required")
	}
	return nil
}

func loadConfig(configFile, envFile string) (Config, error) {
	var cfg Config
	err := config.Load(&cfg,
		config.WithConfigFile(configFile),
		config.WithEnvFile(envFile),
		config.WithDefaults(defaults),
	)
	if err != nil {
		return Config{}, err
	}
	cfg.Logging.ApplyDefaults()
	return cfg, nil
}
