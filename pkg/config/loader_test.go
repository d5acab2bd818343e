package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtpl/pkg/config"
)

type sandboxConfig struct {
	Host string `env:"HOST" envDefault:"sandbox.smtp.mailtrap.io"`
	Port int    `env:"PORT" envDefault:"2525"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

type requiredConfig struct {
	Dir string `env:"TEMPLATES_DIR,required"`
}

func TestLoad_FromMap(t *testing.T) {
	t.Parallel()

	var cfg sandboxConfig
	err := config.Load(&cfg,
		config.WithPrefix("MAILTRAP_"),
		config.WithEnvironment(map[string]string{
			"MAILTRAP_USER": "u",
			"MAILTRAP_PASS": "p",
			"MAILTRAP_PORT": "465",
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "sandbox.smtp.mailtrap.io", cfg.Host)
	assert.Equal(t, 465, cfg.Port)
	assert.Equal(t, "u", cfg.User)
	assert.Equal(t, "p", cfg.Pass)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	var cfg sandboxConfig
	err := config.Load(&cfg, config.WithPrefix("MAILTRAP_"), config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, 2525, cfg.Port)
	assert.Empty(t, cfg.User)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid int", func(t *testing.T) {
		t.Parallel()
		var cfg sandboxConfig
		err := config.Load(&cfg, config.WithPrefix("MAILTRAP_"),
			config.WithEnvironment(map[string]string{"MAILTRAP_PORT": "twenty"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		var cfg *sandboxConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"TEMPLATES_DIR": "src/templates"}))
		assert.Equal(t, "src/templates", cfg.Dir)
	})
}

func TestLoadEnv_File(t *testing.T) {
	for _, k := range []string{"MAILTRAP_HOST", "MAILTRAP_PORT", "MAILTRAP_USER", "MAILTRAP_PASS"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	require.NoError(t, config.LoadEnv("testdata/.env.sample"))

	var cfg sandboxConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("MAILTRAP_")))
	assert.Equal(t, "smtp.example.test", cfg.Host)
	assert.Equal(t, 587, cfg.Port)
	assert.Equal(t, "sample_user", cfg.User)
	assert.Equal(t, "quoted pass", cfg.Pass)
}

func TestLoadEnv_DoesNotOverride(t *testing.T) {
	t.Setenv("MAILTRAP_USER", "from_process")

	require.NoError(t, config.LoadEnv("testdata/.env.sample"))
	assert.Equal(t, "from_process", os.Getenv("MAILTRAP_USER"))
}

func TestLoadEnv_MissingExplicitFile(t *testing.T) {
	err := config.LoadEnv("testdata/does_not_exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv("testdata/does_not_exist.env") })
}

func TestLoadEnv_MissingDefaultFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, config.LoadEnv())
}
