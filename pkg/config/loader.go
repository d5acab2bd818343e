package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded by LoadEnv when no paths are given.
const DefaultEnvFile = ".env"

// Option tunes a single Load call.
type Option func(*env.Options)

// WithPrefix restricts parsing to variables starting with prefix,
// e.g. "MAILTRAP_" turns `env:"USER"` into MAILTRAP_USER.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// LoadEnv reads key/value settings files into the process environment.
// Variables already set in the environment are not overridden.
//
// With no paths it loads DefaultEnvFile when present; a missing default file
// is not an error because the settings file is optional.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(DefaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		paths = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env file: %v", err))
	}
}

// Load parses environment variables into the struct pointed to by v using
// `env` field tags.
//
// Example:
//
//	type SMTPConfig struct {
//		Host string `env:"HOST" envDefault:"sandbox.smtp.mailtrap.io"`
//		Port int    `env:"PORT" envDefault:"2525"`
//	}
//
//	var cfg SMTPConfig
//	err := config.Load(&cfg, config.WithPrefix("MAILTRAP_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
