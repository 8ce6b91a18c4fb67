package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasneemo-o/ipv4-checker/pkg/config"
)

type testConfigDefault struct {
	LogLevel  string `env:"TEST_LOG_LEVEL_DEFAULT" envDefault:"info"`
	LogFormat string `env:"TEST_LOG_FORMAT_DEFAULT" envDefault:"text"`
	NoColor   bool   `env:"TEST_NO_COLOR_DEFAULT"`
}

type testConfigSuccess struct {
	LogLevel string `env:"TEST_LOG_LEVEL_SUCCESS" envDefault:"info"`
	NoColor  bool   `env:"TEST_NO_COLOR_SUCCESS"`
}

type testConfigSingleton struct {
	Value string `env:"TEST_VALUE_SINGLETON" envDefault:"default_value"`
}

type testConfigReload struct {
	Value string `env:"TEST_VALUE_RELOAD" envDefault:"default_value"`
}

type testConfigFile struct {
	CasesPath string `env:"TEST_CASES_PATH"`
	Level     string `env:"TEST_FILE_LEVEL"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL_SUCCESS", "debug")
	t.Setenv("TEST_NO_COLOR_SUCCESS", "true")

	var cfg testConfigSuccess
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestLoad_DefaultValues(t *testing.T) {
	var cfg testConfigDefault
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.NoColor)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_VALUE_SINGLETON", "first")

	var first testConfigSingleton
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("TEST_VALUE_SINGLETON", "second")

	var second testConfigSingleton
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value should be returned")
}

func TestForceReloadConfig(t *testing.T) {
	t.Setenv("TEST_VALUE_RELOAD", "first")

	var cfg testConfigReload
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value)

	t.Setenv("TEST_VALUE_RELOAD", "second")
	require.NoError(t, config.ForceReloadConfig(&cfg))
	assert.Equal(t, "second", cfg.Value)

	var cached testConfigReload
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, "second", cached.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[testConfigDefault](nil), config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReloadConfig[testConfigDefault](nil), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg testConfigDefault
		config.MustLoad(&cfg)
	})

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, ".env.base")
	override := filepath.Join(dir, ".env.override")

	require.NoError(t, os.WriteFile(base, []byte("TEST_CASES_PATH=cases.yaml\nTEST_FILE_LEVEL=info\n"), 0o644))
	require.NoError(t, os.WriteFile(override, []byte("TEST_FILE_LEVEL=debug\n"), 0o644))

	t.Setenv("TEST_CASES_PATH", "")
	t.Setenv("TEST_FILE_LEVEL", "")
	config.ResetCache()

	require.NoError(t, config.LoadEnv(base, override))

	var cfg testConfigFile
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "cases.yaml", cfg.CasesPath)
	assert.Equal(t, "debug", cfg.Level, "later files take precedence")
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	})
}
