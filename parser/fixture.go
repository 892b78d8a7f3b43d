package parser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/almanac/almanac"
)

// Fixture is a YAML almanac with optional expected answers.
type Fixture struct {
	Name   string                `yaml:"name"`
	Seeds  []uint64              `yaml:"seeds"`
	Stages map[string][][]uint64 `yaml:"stages"`
	Expect Expectations          `yaml:"expect"`
}

// Expectations holds the known answers for a Fixture. Nil pointers and empty
// slices mean "not asserted".
type Expectations struct {
	Locations            []uint64              `yaml:"locations"`
	Lowest               *uint64               `yaml:"lowest"`
	MinimalValidLocation *uint64               `yaml:"minimal_valid_location"`
	Traces               []almanac.Instruction `yaml:"traces"`
}

// LoadFixture decodes a single YAML fixture from r. Unknown keys are rejected.
func LoadFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedFixture)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedFixture, err)
	}

	return &fx, nil
}

// LoadFixtureFile opens path and decodes it with LoadFixture.
func LoadFixtureFile(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadFixture(f)
}

// Triples returns the stage tables as fixed-size triples.
// Returns ErrMalformedStageInput if any row is not exactly three values.
func (fx *Fixture) Triples() (map[string][][3]uint64, error) {
	out := make(map[string][][3]uint64, len(fx.Stages))
	for name, rows := range fx.Stages {
		ts := make([][3]uint64, 0, len(rows))
		for i, row := range rows {
			if len(row) != 3 {
				return nil, fmt.Errorf("%w: stage %q row %d: want 3 integers, got %d",
					ErrMalformedStageInput, name, i, len(row))
			}
			ts = append(ts, [3]uint64{row[0], row[1], row[2]})
		}
		out[name] = ts
	}
	return out, nil
}

// Almanac builds the pipeline described by the fixture.
func (fx *Fixture) Almanac() (*almanac.Almanac, error) {
	tables, err := fx.Triples()
	if err != nil {
		return nil, err
	}
	return almanac.NewFromNamed(fx.Seeds, tables)
}
