package parser

import "errors"

// Sentinel errors returned by the parser package. A missing stage surfaces
// as almanac.ErrMissingStage.
var (
	// ErrMalformedSeeds indicates the "seeds:" header is absent or holds a non-integer.
	ErrMalformedSeeds = errors.New("parser: malformed seeds line")

	// ErrMalformedStageInput indicates a stage line is not three non-negative integers.
	ErrMalformedStageInput = errors.New("parser: malformed stage input")

	// ErrDuplicateStage indicates the same stage header appears twice.
	ErrDuplicateStage = errors.New("parser: duplicate stage")

	// ErrMalformedFixture indicates a YAML fixture could not be decoded.
	ErrMalformedFixture = errors.New("parser: malformed fixture")
)
