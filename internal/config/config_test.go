package config

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/almanac/almanac"
)

var envKeys = []string{"LOG_LEVEL", "LOG_FORMAT", "INPUT", "STRATEGY", "WORKERS", "BLOCK_SIZE", "CEILING"}

// clearEnvVars unsets every ALMANAC_* variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		name := EnvPrefix + "_" + k
		if old, ok := os.LookupEnv(name); ok {
			require.NoError(t, os.Unsetenv(name))
			t.Cleanup(func() { _ = os.Setenv(name, old) })
		}
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, DefaultStrategy, cfg.Strategy)
	assert.Equal(t, uint64(DefaultBlockSize), cfg.BlockSize)
	assert.Zero(t, cfg.Workers)
	assert.Zero(t, cfg.Ceiling)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ALMANAC_STRATEGY", "parallel")
	t.Setenv("ALMANAC_WORKERS", "3")
	t.Setenv("ALMANAC_CEILING", "1000")
	t.Setenv("ALMANAC_LOG_LEVEL", "debug")

	env, err := LoadFromEnv()
	require.NoError(t, err)
	cfg, err := env.ToConfig()
	require.NoError(t, err)

	assert.Equal(t, almanac.StrategyParallel, cfg.Strategy)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, uint64(1000), cfg.Ceiling)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Len(t, cfg.SearchOptions(), 4)
}

func TestLoadFromEnv_BadNumber(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ALMANAC_WORKERS", "many")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestToConfig_ResolvesZeroValues(t *testing.T) {
	cfg, err := EnvConfig{Strategy: "scan"}.ToConfig()
	require.NoError(t, err)

	assert.Equal(t, almanac.StrategyScan, cfg.Strategy)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	assert.Equal(t, uint64(DefaultBlockSize), cfg.BlockSize)
	assert.Equal(t, uint64(math.MaxUint64), cfg.Ceiling)
}

func TestToConfig_UnknownStrategy(t *testing.T) {
	_, err := EnvConfig{Strategy: "bisect"}.ToConfig()
	assert.ErrorIs(t, err, almanac.ErrUnknownStrategy)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ALMANAC_STRATEGY=scan\nALMANAC_INPUT=puzzle.txt\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("ALMANAC_STRATEGY")
		_ = os.Unsetenv("ALMANAC_INPUT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, almanac.StrategyScan, cfg.Strategy)
	assert.Equal(t, "puzzle.txt", cfg.Input)
}

func TestLoad_MissingDotEnv(t *testing.T) {
	clearEnvVars(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, almanac.StrategyInterval, cfg.Strategy)
}
