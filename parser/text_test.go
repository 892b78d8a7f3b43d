package parser_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/almanac/almanac"
	"github.com/katalvlaran/almanac/parser"
	"github.com/katalvlaran/almanac/remap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleText    = "../testdata/sample.txt"
	sampleFixture = "../testdata/sample.yaml"
	missingText   = "../testdata/missing_stage.txt"
)

// TestParseFile_Sample checks seeds and every stage table of the sample.
func TestParseFile_Sample(t *testing.T) {
	a, err := parser.ParseFile(sampleText)
	require.NoError(t, err)

	assert.Equal(t, []uint64{79, 14, 55, 13}, a.Seeds())
	assert.Equal(t, []remap.Range{
		remap.NewRange(50, 98, 2),
		remap.NewRange(52, 50, 48),
	}, a.Stage(almanac.SeedToSoil).Ranges())
	assert.Equal(t, 4, a.Stage(almanac.FertilizerToWater).Len())
	assert.Equal(t, []remap.Range{
		remap.NewRange(60, 56, 37),
		remap.NewRange(56, 93, 4),
	}, a.Stage(almanac.HumidityToLocation).Ranges())
}

// TestParse_MatchesFixture ensures the text and YAML renditions build the same pipeline.
func TestParse_MatchesFixture(t *testing.T) {
	fromText, err := parser.ParseFile(sampleText)
	require.NoError(t, err)
	fromYAML, err := parser.Load(sampleFixture)
	require.NoError(t, err)

	assert.Equal(t, fromYAML.Seeds(), fromText.Seeds())
	for _, s := range almanac.Stages() {
		assert.Equal(t, fromYAML.Stage(s).Ranges(), fromText.Stage(s).Ranges(), "stage %s", s)
	}
}

// TestParse_MissingStage surfaces almanac.ErrMissingStage naming the stage.
func TestParse_MissingStage(t *testing.T) {
	_, err := parser.ParseFile(missingText)
	require.ErrorIs(t, err, almanac.ErrMissingStage)
	assert.Contains(t, err.Error(), "temperature-to-humidity")
}

// TestParse_Errors covers malformed inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", parser.ErrMalformedSeeds},
		{"no seeds header", "seed-to-soil map:\n1 2 3\n", parser.ErrMalformedSeeds},
		{"bad seed", "seeds: 1 x 3\n", parser.ErrMalformedSeeds},
		{"negative seed", "seeds: -1\n", parser.ErrMalformedSeeds},
		{"two values", "seeds: 1 2\n\nseed-to-soil map:\n1 2\n", parser.ErrMalformedStageInput},
		{"four values", "seeds: 1 2\n\nseed-to-soil map:\n1 2 3 4\n", parser.ErrMalformedStageInput},
		{"not a number", "seeds: 1 2\n\nseed-to-soil map:\n1 b 3\n", parser.ErrMalformedStageInput},
		{"orphan triple", "seeds: 1 2\n\n1 2 3\n", parser.ErrMalformedStageInput},
		{"duplicate", "seeds: 1 2\n\nseed-to-soil map:\n1 2 3\n\nseed-to-soil map:\n4 5 6\n", parser.ErrDuplicateStage},
		{"only seeds", "seeds: 1 2\n", almanac.ErrMissingStage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.Parse(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_SynonymRejected ensures near-miss stage names are not accepted.
func TestParse_SynonymRejected(t *testing.T) {
	var b strings.Builder
	b.WriteString("seeds: 1 2\n\n")
	for _, s := range almanac.Stages() {
		name := s.String()
		if s == almanac.LightToTemperature {
			name = "light-to-temp"
		}
		b.WriteString(name + " map:\n0 0 1\n\n")
	}
	_, err := parser.Parse(strings.NewReader(b.String()))
	require.ErrorIs(t, err, almanac.ErrMissingStage)
	assert.Contains(t, err.Error(), "light-to-temperature")
}

// TestParse_EmptyStageIsIdentity accepts a header with no triples.
func TestParse_EmptyStageIsIdentity(t *testing.T) {
	var b strings.Builder
	b.WriteString("seeds: 7 1\n\n")
	for _, s := range almanac.Stages() {
		b.WriteString(s.String() + " map:\n\n")
	}
	a, err := parser.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), a.Locate(7))
	assert.Equal(t, 0, a.Stage(almanac.SeedToSoil).Len())
}

// TestParseFile_NotFound wraps the os error.
func TestParseFile_NotFound(t *testing.T) {
	_, err := parser.ParseFile("../testdata/does-not-exist.txt")
	assert.Error(t, err)
}
