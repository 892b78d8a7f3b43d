package almanac_test

import (
	"testing"

	"github.com/katalvlaran/almanac/almanac"
	"github.com/katalvlaran/almanac/parser"
	"github.com/katalvlaran/almanac/remap"
	"github.com/stretchr/testify/require"
)

const sampleFixture = "../testdata/sample.yaml"

// loadSample decodes the reference fixture and builds its pipeline.
func loadSample(tb testing.TB) (*parser.Fixture, *almanac.Almanac) {
	tb.Helper()
	fx, err := parser.LoadFixtureFile(sampleFixture)
	require.NoError(tb, err)
	a, err := fx.Almanac()
	require.NoError(tb, err)
	return fx, a
}

// chainStages returns seven single-range stages where [0..span] is carried
// to [1000·(i+1) ..] by stage i, so every value of [0..span] stays range-matched.
func chainStages(span uint64) map[almanac.Stage]*remap.VirtualMap {
	out := make(map[almanac.Stage]*remap.VirtualMap, almanac.StageCount)
	from := uint64(0)
	for _, s := range almanac.Stages() {
		to := uint64(1000 * (int(s) + 1))
		m := remap.NewVirtualMap()
		m.Insert(from, span, to)
		out[s] = m
		from = to
	}
	return out
}
