package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable, e.g. ALMANAC_LOG_LEVEL.
const EnvPrefix = "ALMANAC"

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// LogLevel is the zap level (debug, info, warn, error).
	// Env: ALMANAC_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is console or json.
	// Env: ALMANAC_LOG_FORMAT (default: console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Input is the almanac file read when --input is not given.
	// Env: ALMANAC_INPUT (default: input.txt)
	Input string `envconfig:"INPUT" default:"input.txt"`

	// Strategy is the search strategy: scan, parallel or interval.
	// Env: ALMANAC_STRATEGY (default: interval)
	Strategy string `envconfig:"STRATEGY" default:"interval"`

	// Workers is the parallel pool size; 0 uses GOMAXPROCS.
	// Env: ALMANAC_WORKERS
	Workers int `envconfig:"WORKERS"`

	// BlockSize is the number of candidates per worker per batch.
	// Env: ALMANAC_BLOCK_SIZE (default: 65536)
	BlockSize uint64 `envconfig:"BLOCK_SIZE" default:"65536"`

	// Ceiling bounds the search; 0 means unbounded.
	// Env: ALMANAC_CEILING
	Ceiling uint64 `envconfig:"CEILING"`
}

// LoadFromEnv loads configuration from ALMANAC_* environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
