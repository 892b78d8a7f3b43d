// Package config provides CLI configuration loaded from the environment
// and an optional .env file.
package config

import (
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/almanac/almanac"
)

// Default values. Struct tag defaults in env.go must match these.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultStrategy  = "interval"
	DefaultInput     = "input.txt"
	DefaultBlockSize = almanac.DefaultBlockSize
)

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	Input     string
	Strategy  almanac.Strategy
	Workers   int
	BlockSize uint64
	// Ceiling is the largest location searched; math.MaxUint64 means unbounded.
	Ceiling uint64
}

// ToConfig validates an EnvConfig and resolves zero values to defaults.
func (e EnvConfig) ToConfig() (Config, error) {
	s, err := almanac.ParseStrategy(e.Strategy)
	if err != nil {
		return Config{}, fmt.Errorf("config: STRATEGY: %w", err)
	}
	cfg := Config{
		LogLevel:  e.LogLevel,
		LogFormat: e.LogFormat,
		Input:     e.Input,
		Strategy:  s,
		Workers:   e.Workers,
		BlockSize: e.BlockSize,
		Ceiling:   e.Ceiling,
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.BlockSize == 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	if cfg.Ceiling == 0 {
		cfg.Ceiling = math.MaxUint64
	}
	return cfg, nil
}

// SearchOptions converts the configuration into almanac search options.
func (c Config) SearchOptions() []almanac.Option {
	return []almanac.Option{
		almanac.WithStrategy(c.Strategy),
		almanac.WithWorkers(c.Workers),
		almanac.WithBlockSize(c.BlockSize),
		almanac.WithCeiling(c.Ceiling),
	}
}

// Load reads envPath (if it exists) into the process environment, then
// resolves ALMANAC_* variables into a Config.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", envPath, err)
	}
	env, err := LoadFromEnv()
	if err != nil {
		return Config{}, err
	}
	return env.ToConfig()
}
