// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for optional .env files. Each configuration type is parsed
// once per prefix and cached for the lifetime of the process, so formatters built in
// hot paths can call Load freely.
//
// # Usage
//
//	type DisplayConfig struct {
//	    Locale string `env:"LOCALE" envDefault:"en"`
//	    Limit  int    `env:"LIST_LIMIT" envDefault:"3"`
//	}
//
//	var cfg DisplayConfig
//	if err := config.Load(&cfg, config.WithPrefix("DISPLAY_")); err != nil {
//	    return err
//	}
//
// The default .env file in the working directory is read on the first Load; call
// LoadEnv to read other files explicitly. Tests can bypass the process environment with
// WithEnvironment and clear cached values with Reset.
//
// # Errors
//
// Parsing failures are wrapped with ErrParsingConfig, so callers can use errors.Is while
// still seeing the underlying env error.
package config
