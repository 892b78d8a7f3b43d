package almanac

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/almanac/remap"
)

// ctxCheckEvery is the number of candidates tried between cancellation checks.
const ctxCheckEvery = 1 << 12

// MinimalValidLocation returns the smallest location L ≤ Ceiling such that
// Invert(L) lies in one of SeedRanges().
//
// Errors:
//   - ErrOptionViolation  - an Option was given an invalid value.
//   - ErrNoSeedRanges     - the seeds hold no (start, length) pair.
//   - ErrCeilingExceeded  - no location up to the ceiling qualifies.
//   - ctx.Err()           - the context was cancelled.
//
// With the default unbounded ceiling and StrategyScan or StrategyParallel
// the search runs until a hit or cancellation; StrategyInterval always
// terminates.
func (a *Almanac) MinimalValidLocation(opts ...Option) (uint64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if a.seedSet.Len() == 0 {
		return 0, ErrNoSeedRanges
	}

	log := o.Logger.With(zap.Stringer("strategy", o.Strategy))
	log.Debug("search started",
		zap.Uint64("ceiling", o.Ceiling),
		zap.Int("seed_ranges", len(a.seedRanges)))

	var (
		loc uint64
		err error
	)
	switch o.Strategy {
	case StrategyParallel:
		loc, err = a.searchParallel(o, log)
	case StrategyInterval:
		loc, err = a.searchIntervals(o, log)
	default:
		loc, err = a.searchScan(o)
	}
	if err != nil {
		log.Debug("search failed", zap.Error(err))
		return 0, err
	}
	log.Debug("search finished", zap.Uint64("location", loc))

	return loc, nil
}

// accepts reports whether location inverts into a seed range, and that seed.
func (a *Almanac) accepts(location uint64) (uint64, bool) {
	seed := a.Invert(location)
	return seed, a.seedSet.Contains(seed)
}

func ceilingErr(c uint64) error {
	return fmt.Errorf("%w: %d", ErrCeilingExceeded, c)
}

// searchScan is the reference linear scan.
func (a *Almanac) searchScan(o SearchOptions) (uint64, error) {
	for c := uint64(0); ; c++ {
		if c%ctxCheckEvery == 0 {
			select {
			case <-o.Ctx.Done():
				return 0, o.Ctx.Err()
			default:
			}
		}
		seed, ok := a.accepts(c)
		o.OnCandidate(c, seed, ok)
		if ok {
			return c, nil
		}
		if c == o.Ceiling {
			return 0, ceilingErr(o.Ceiling)
		}
	}
}

// searchParallel scans batches of Workers×BlockSize consecutive locations.
// Each batch finishes before the next one starts, so the smallest hit of the
// first batch with any hit is the global minimum.
func (a *Almanac) searchParallel(o SearchOptions, log *zap.Logger) (uint64, error) {
	batch := satMul(uint64(o.Workers), o.BlockSize)
	for lo := uint64(0); ; {
		hi := min(o.Ceiling, satAdd(lo, batch-1))
		loc, found, err := a.scanBatch(o.Ctx, lo, hi, o.BlockSize)
		if err != nil {
			return 0, err
		}
		if found {
			return loc, nil
		}
		log.Debug("batch exhausted", zap.Uint64("from", lo), zap.Uint64("to", hi))
		if hi == o.Ceiling {
			return 0, ceilingErr(o.Ceiling)
		}
		lo = hi + 1
	}
}

// scanBatch splits [lo, hi] into blocks and scans them concurrently.
func (a *Almanac) scanBatch(ctx context.Context, lo, hi, block uint64) (uint64, bool, error) {
	var (
		best  atomic.Uint64
		found atomic.Bool
	)
	best.Store(math.MaxUint64)

	g, gctx := errgroup.WithContext(ctx)
	for start := lo; ; {
		end := min(hi, satAdd(start, block-1))
		from, to := start, end
		g.Go(func() error {
			return a.scanBlock(gctx, from, to, &best, &found)
		})
		if end == hi {
			break
		}
		start = end + 1
	}
	if err := g.Wait(); err != nil {
		return 0, false, err
	}

	return best.Load(), found.Load(), nil
}

// scanBlock scans [from, to] and records its first hit in best.
// It gives up early once another block has recorded a smaller hit.
func (a *Almanac) scanBlock(ctx context.Context, from, to uint64, best *atomic.Uint64, found *atomic.Bool) error {
	for c := from; ; c++ {
		if (c-from)%ctxCheckEvery == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if found.Load() && best.Load() < c {
				return nil
			}
		}
		if _, ok := a.accepts(c); ok {
			storeMin(best, c)
			found.Store(true)
			return nil
		}
		if c == to {
			return nil
		}
	}
}

// locPiece tracks a run of locations and the interval they currently map to
// partway through inversion; loc.Lo corresponds to cur.Lo.
type locPiece struct {
	loc remap.Interval
	cur remap.Interval
}

// searchIntervals inverts the whole range [0, Ceiling] at once, one stage at
// a time in reverse order, then intersects the resulting seed intervals with
// the seed ranges.
//
// Every piece is a constant translation, so within a piece the smallest
// qualifying seed corresponds to the smallest location.
func (a *Almanac) searchIntervals(o SearchOptions, log *zap.Logger) (uint64, error) {
	domain := remap.Interval{Lo: 0, Hi: o.Ceiling}
	pieces := []locPiece{{loc: domain, cur: domain}}

	for i := StageCount - 1; i >= 0; i-- {
		select {
		case <-o.Ctx.Done():
			return 0, o.Ctx.Err()
		default:
		}
		next := make([]locPiece, 0, len(pieces))
		for _, p := range pieces {
			for _, rp := range a.stages[i].ReverseImage(p.cur) {
				lo := p.loc.Lo + (rp.From.Lo - p.cur.Lo)
				next = append(next, locPiece{
					loc: remap.Interval{Lo: lo, Hi: lo + (rp.From.Hi - rp.From.Lo)},
					cur: rp.To,
				})
			}
		}
		pieces = next
		log.Debug("stage inverted", zap.Stringer("stage", Stage(i)), zap.Int("pieces", len(pieces)))
	}

	var (
		best  uint64
		found bool
	)
	for _, p := range pieces {
		seed, ok := a.seedSet.FirstIn(p.cur)
		if !ok {
			continue
		}
		if c := p.loc.Lo + (seed - p.cur.Lo); !found || c < best {
			best, found = c, true
		}
	}
	if !found {
		return 0, ceilingErr(o.Ceiling)
	}

	return best, nil
}

// storeMin lowers v to c if c is smaller.
func storeMin(v *atomic.Uint64, c uint64) {
	for {
		cur := v.Load()
		if c >= cur || v.CompareAndSwap(cur, c) {
			return
		}
	}
}

// satAdd returns a+b, saturating at math.MaxUint64.
func satAdd(a, b uint64) uint64 {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxUint64
}

// satMul returns a*b, saturating at math.MaxUint64.
func satMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}
