package rng

import (
	"context"
	"math/rand"

	"govmaf/ports"
)

// Adapter implements ports.RNGPort with deterministic seeded streams.
type Adapter struct{}

// New creates an RNG adapter.
func New() *Adapter {
	return &Adapter{}
}

var _ ports.RNGPort = (*Adapter)(nil)

// SeededStream creates a deterministic random number generator for a named operation
func (a *Adapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(seed + int64(hashString(name)))), nil
}

// ResampleStream derives a per-resample stream from the base seed and the
// resample index alone. No per-run state enters the seed, so reruns with
// the same seed over the same input reproduce the same resamples.
func (a *Adapter) ResampleStream(ctx context.Context, index int, baseSeed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(baseSeed + int64(index))), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2
	}
	return hash
}
