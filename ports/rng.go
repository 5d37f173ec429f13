package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic
// resampling. Bootstrap resamples must be reproducible for the same seed.
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a
	// named operation.
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// ResampleStream creates a deterministic RNG stream for one bootstrap
	// resample, keyed by the base seed and resample index only, so two runs
	// over identical input with the same seed produce identical intervals.
	ResampleStream(ctx context.Context, index int, baseSeed int64) (*rand.Rand, error)
}
