// Package config loads pipeline settings from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads an optional `.env` style settings file (or explicit
//     paths) into the process environment without overriding variables that
//     are already set.
//   - Load parses the environment into any struct annotated with `env` and
//     `envDefault` tags. WithPrefix scopes a struct to a family of variables
//     (for example `MAILTRAP_`), WithEnvironment parses from an explicit map,
//     which keeps tests independent of the process environment.
//
// Nothing is cached: each command loads what it needs once at startup and
// passes the resulting values down explicitly.
//
//	if err := config.LoadEnv(); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//	var smtp email.SMTPConfig
//	if err := config.Load(&smtp, config.WithPrefix("MAILTRAP_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
package config
