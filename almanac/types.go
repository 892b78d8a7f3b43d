package almanac

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the almanac package.
var (
	// ErrMissingStage indicates one of the seven required stages was not supplied.
	ErrMissingStage = errors.New("almanac: missing stage")

	// ErrNoSeedRanges indicates the seed list holds no complete (start, length) pair,
	// so no location can ever be accepted by the search.
	ErrNoSeedRanges = errors.New("almanac: no seed ranges")

	// ErrCeilingExceeded indicates the search reached its ceiling without a hit.
	ErrCeilingExceeded = errors.New("almanac: no valid location at or below ceiling")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("almanac: invalid option supplied")

	// ErrUnknownStrategy indicates a strategy name could not be parsed.
	ErrUnknownStrategy = errors.New("almanac: unknown search strategy")
)

// Stage identifies one step of the pipeline. The numeric order is the
// forward composition order and must not be permuted.
type Stage int

const (
	SeedToSoil Stage = iota
	SoilToFertilizer
	FertilizerToWater
	WaterToLight
	LightToTemperature
	TemperatureToHumidity
	HumidityToLocation

	// StageCount is the number of stages in a pipeline.
	StageCount = 7
)

var stageNames = [StageCount]string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// Stages returns all stages in forward order.
func Stages() []Stage {
	out := make([]Stage, StageCount)
	for i := range out {
		out[i] = Stage(i)
	}
	return out
}

// String returns the stage name as written in almanac input, e.g. "seed-to-soil".
func (s Stage) String() string {
	if s < 0 || int(s) >= StageCount {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Source returns the quantity the stage consumes, e.g. "seed".
func (s Stage) Source() string {
	src, _, _ := strings.Cut(s.String(), "-to-")
	return src
}

// Target returns the quantity the stage produces, e.g. "soil".
func (s Stage) Target() string {
	_, dst, _ := strings.Cut(s.String(), "-to-")
	return dst
}

// ParseStage maps an exact stage name to its Stage. Synonyms and other
// spellings are rejected.
func ParseStage(name string) (Stage, bool) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), true
		}
	}
	return 0, false
}

// Instruction is the value of one seed at every point of the pipeline.
type Instruction struct {
	Seed        uint64 `yaml:"seed"`
	Soil        uint64 `yaml:"soil"`
	Fertilizer  uint64 `yaml:"fertilizer"`
	Water       uint64 `yaml:"water"`
	Light       uint64 `yaml:"light"`
	Temperature uint64 `yaml:"temperature"`
	Humidity    uint64 `yaml:"humidity"`
	Location    uint64 `yaml:"location"`
}

// Path returns the eight values in pipeline order, seed first.
func (in Instruction) Path() []uint64 {
	return []uint64{
		in.Seed, in.Soil, in.Fertilizer, in.Water,
		in.Light, in.Temperature, in.Humidity, in.Location,
	}
}

// String renders the instruction as "seed 79, soil 81, …, location 82".
func (in Instruction) String() string {
	var b strings.Builder
	b.WriteString("seed ")
	fmt.Fprint(&b, in.Seed)
	for i, v := range in.Path()[1:] {
		fmt.Fprintf(&b, ", %s %d", Stage(i).Target(), v)
	}
	return b.String()
}

func instructionFromPath(p [StageCount + 1]uint64) Instruction {
	return Instruction{
		Seed:        p[0],
		Soil:        p[1],
		Fertilizer:  p[2],
		Water:       p[3],
		Light:       p[4],
		Temperature: p[5],
		Humidity:    p[6],
		Location:    p[7],
	}
}
