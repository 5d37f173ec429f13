package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrEmptyVector is raised by every derived-statistic operation on a
	// vector with zero elements. It is never recovered locally; it surfaces
	// through Result and the runner up to the boundary.
	ErrEmptyVector = errors.New("stat vector size is 0")

	// Scoring errors - semantic failures in the scoring routine
	ErrScoring        = errors.New("scoring failed")
	ErrModelInvalid   = fmt.Errorf("%w: invalid model", ErrScoring)
	ErrFrameMalformed = fmt.Errorf("%w: malformed frame", ErrScoring)

	// Numeric/runtime errors - arithmetic or resource failures
	ErrNumeric = errors.New("numeric failure")

	// Logic errors - violated preconditions and invariants
	ErrLogic      = errors.New("logic failure")
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrLogic)

	ErrKeyNotFound = errors.New("metric key not found")
)

// Error constructors with context
func NewScoringError(detail string) error {
	return fmt.Errorf("%w: %s", ErrScoring, detail)
}

func NewNumericError(op string, err error) error {
	return fmt.Errorf("%w in %s: %v", ErrNumeric, op, err)
}

func NewOutOfRangeError(idx, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, idx, size)
}

// Error checking helpers used by the boundary to select a status code
func IsScoringError(err error) bool {
	return errors.Is(err, ErrScoring)
}

func IsNumericError(err error) bool {
	// The empty-vector error is categorized as a runtime failure unless a
	// caller has wrapped it into something more specific.
	return errors.Is(err, ErrNumeric) || errors.Is(err, ErrEmptyVector)
}

func IsLogicError(err error) bool {
	return errors.Is(err, ErrLogic)
}
