// Package parser turns almanac input into an *almanac.Almanac.
//
// Two formats are understood:
//
//   - the plain text puzzle format (Parse, ParseFile):
//
//     seeds: 79 14 55 13
//
//     seed-to-soil map:
//     50 98 2
//     52 50 48
//     …
//
//   - YAML fixtures (LoadFixture, LoadFixtureFile) carrying the same data plus
//     optional expected answers, used as externally loaded test tables.
//
// Stage lines are "destination source length" triples. Every one of the
// seven stages must be present under its exact name; tables under other
// names are validated and then ignored.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/almanac/almanac"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
)

// Parse reads a text almanac from r.
//
// Errors:
//   - ErrMalformedSeeds      - first non-blank line is not "seeds: n n …".
//   - ErrMalformedStageInput - a stage line is not three integers, or appears
//     before any stage header.
//   - ErrDuplicateStage      - a stage header repeats.
//   - almanac.ErrMissingStage - one of the seven stages is absent.
func Parse(r io.Reader) (*almanac.Almanac, error) {
	var (
		seeds   []uint64
		gotSeed bool
		tables  = make(map[string][][3]uint64, almanac.StageCount)
		current string
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if !gotSeed {
			rest, ok := strings.CutPrefix(line, seedsPrefix)
			if !ok {
				return nil, fmt.Errorf("%w: line %d: want %q prefix", ErrMalformedSeeds, lineNo, seedsPrefix)
			}
			nums, err := parseNumbers(rest)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedSeeds, lineNo, err)
			}
			seeds, gotSeed = nums, true
			continue
		}

		if name, ok := strings.CutSuffix(line, mapSuffix); ok {
			if _, dup := tables[name]; dup {
				return nil, fmt.Errorf("%w: %q at line %d", ErrDuplicateStage, name, lineNo)
			}
			tables[name] = [][3]uint64{}
			current = name
			continue
		}

		if current == "" {
			return nil, fmt.Errorf("%w: line %d: values before any stage header", ErrMalformedStageInput, lineNo)
		}
		t, err := parseTriple(line)
		if err != nil {
			return nil, fmt.Errorf("%w: stage %q line %d: %v", ErrMalformedStageInput, current, lineNo, err)
		}
		tables[current] = append(tables[current], t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: read input: %w", err)
	}
	if !gotSeed {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedSeeds)
	}

	return almanac.NewFromNamed(seeds, tables)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*almanac.Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Load reads path as a YAML fixture when its extension is .yaml or .yml and
// as a text almanac otherwise.
func Load(path string) (*almanac.Almanac, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		fx, err := LoadFixtureFile(path)
		if err != nil {
			return nil, err
		}
		return fx.Almanac()
	default:
		return ParseFile(path)
	}
}

// parseNumbers splits s on whitespace into non-negative integers.
func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// parseTriple parses "destination source length".
func parseTriple(line string) ([3]uint64, error) {
	var t [3]uint64
	nums, err := parseNumbers(line)
	if err != nil {
		return t, err
	}
	if len(nums) != 3 {
		return t, fmt.Errorf("want 3 integers, got %d", len(nums))
	}
	copy(t[:], nums)
	return t, nil
}
