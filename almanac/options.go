package almanac

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Strategy selects how MinimalValidLocation explores candidate locations.
// All strategies return the same answer.
type Strategy int

const (
	// StrategyScan tries locations 0, 1, 2, … one at a time.
	StrategyScan Strategy = iota

	// StrategyParallel scans consecutive blocks of locations on a worker pool.
	StrategyParallel

	// StrategyInterval propagates location intervals backward through the stages.
	StrategyInterval
)

var strategyNames = map[Strategy]string{
	StrategyScan:     "scan",
	StrategyParallel: "parallel",
	StrategyInterval: "interval",
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "scan", "parallel" or "interval" (case-insensitive)
// to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// DefaultBlockSize is the number of consecutive candidates a parallel worker
// checks per batch.
const DefaultBlockSize = 1 << 16

// Option configures the search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*SearchOptions)

// SearchOptions holds parameters and hooks for MinimalValidLocation.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy selects the exploration algorithm.
	Strategy Strategy

	// Ceiling is the largest location considered. Reaching it without a hit
	// yields ErrCeilingExceeded. math.MaxUint64 means unbounded.
	Ceiling uint64

	// Workers is the parallel pool size (StrategyParallel only).
	Workers int

	// BlockSize is the number of candidates per worker per batch.
	BlockSize uint64

	// OnCandidate is called for every location tried by StrategyScan with
	// its inverted seed and whether it was accepted.
	OnCandidate func(location, seed uint64, accepted bool)

	// Logger receives debug progress messages.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns SearchOptions with sane defaults:
//   - context.Background()
//   - StrategyScan
//   - no ceiling (math.MaxUint64)
//   - runtime.GOMAXPROCS(0) workers, DefaultBlockSize candidates per block
//   - no-op hook and logger
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:         context.Background(),
		Strategy:    StrategyScan,
		Ceiling:     math.MaxUint64,
		Workers:     runtime.GOMAXPROCS(0),
		BlockSize:   DefaultBlockSize,
		OnCandidate: func(uint64, uint64, bool) {},
		Logger:      zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the exploration strategy.
func WithStrategy(s Strategy) Option {
	return func(o *SearchOptions) {
		if _, ok := strategyNames[s]; !ok {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithCeiling bounds the search to locations ≤ c.
func WithCeiling(c uint64) Option {
	return func(o *SearchOptions) {
		o.Ceiling = c
	}
}

// WithWorkers sets the parallel pool size.
//
//	n > 0: use n workers
//	n ≤ 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *SearchOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithBlockSize sets how many consecutive candidates a worker checks per batch.
func WithBlockSize(n uint64) Option {
	return func(o *SearchOptions) {
		if n == 0 {
			o.err = fmt.Errorf("%w: BlockSize must be positive", ErrOptionViolation)
			return
		}
		o.BlockSize = n
	}
}

// WithOnCandidate registers a callback for every candidate tried by StrategyScan.
func WithOnCandidate(fn func(location, seed uint64, accepted bool)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// WithLogger routes debug progress messages to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *SearchOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}
