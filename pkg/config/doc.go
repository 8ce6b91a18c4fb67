// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// .env files are merged into the process environment, then the environment is
// parsed into a struct through its `env` field tags. Each configuration type
// is parsed once and cached for the lifetime of the process; ResetCache and
// ForceReloadConfig exist for tests and for code that changes the
// environment at runtime.
//
//	type CLIConfig struct {
//	    LogLevel  string `env:"IPV4CHECK_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"IPV4CHECK_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`ForceReloadConfig`.
package config
