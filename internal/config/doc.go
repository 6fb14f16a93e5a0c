// Package config loads configuration for the highline command.
//
// It uses Viper to read an optional YAML file, godotenv to load an optional
// .env file into the environment, and environment variables with a prefix
// (HIGHLINE_ by default) to override both. Nested keys map to variables by
// replacing dots with underscores: prompt.legal_age is HIGHLINE_PROMPT_LEGAL_AGE.
//
// # Usage
//
//	var cfg MyConfig
//	err := config.Load(&cfg,
//	    config.WithConfigFile(path),
//	    config.WithDefaults(map[string]any{"logging.level": "warn"}),
//	)
package config
