package score

import (
	"sort"

	"govmaf/domain/core"
	"govmaf/domain/stat"
)

// AggregateMethod selects how GetScore collapses a score stream into one
// scalar. The method affects only GetScore, never the stored sequences.
type AggregateMethod int

const (
	AggregateMean AggregateMethod = iota
	AggregateMinimum
	AggregateHarmonicMean
)

func (m AggregateMethod) String() string {
	switch m {
	case AggregateMinimum:
		return "minimum"
	case AggregateHarmonicMean:
		return "harmonic_mean"
	default:
		return "mean"
	}
}

// ParseAggregateMethod maps a config string onto an AggregateMethod,
// defaulting to mean for anything unrecognized.
func ParseAggregateMethod(s string) AggregateMethod {
	switch s {
	case "minimum", "min":
		return AggregateMinimum
	case "harmonic_mean", "harmonic":
		return AggregateHarmonicMean
	default:
		return AggregateMean
	}
}

// Result maps metric keys to score vectors for one quality-computation
// invocation. It is populated incrementally as frames are scored and read
// once at the end to extract the aggregate scalar.
type Result struct {
	id        core.RunID
	d         map[string]*stat.Vector
	method    AggregateMethod
	numFrames int
}

// NewResult creates an empty result with mean aggregation.
func NewResult() *Result {
	return &Result{
		id:     core.RunID(core.NewID()),
		d:      make(map[string]*stat.Vector),
		method: AggregateMean,
	}
}

// ID returns the run identifier assigned at construction.
func (r *Result) ID() core.RunID {
	return r.id
}

// SetScores inserts or overwrites the vector for key.
func (r *Result) SetScores(key string, v *stat.Vector) {
	r.d[key] = v
}

// GetScores returns the vector for key, or a fresh empty vector when the
// key is absent. The silent miss is preserved behavior from the original
// score pipeline: callers that care about absence must check HasScores
// first, because every statistic on the empty vector fails with
// core.ErrEmptyVector rather than reporting the missing key.
func (r *Result) GetScores(key string) *stat.Vector {
	if v, ok := r.d[key]; ok {
		return v
	}
	return stat.NewVector()
}

// HasScores reports whether key has a stored vector.
func (r *Result) HasScores(key string) bool {
	_, ok := r.d[key]
	return ok
}

// GetScore resolves one scalar for key via the current aggregation method.
// An empty or absent key propagates the empty-vector error.
func (r *Result) GetScore(key string) (float64, error) {
	list := r.GetScores(key)
	switch r.method {
	case AggregateMinimum:
		return list.Minimum()
	case AggregateHarmonicMean:
		return list.HarmonicMean()
	default:
		return list.Mean()
	}
}

// Keys returns all metric keys in lexical order.
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.d))
	for k := range r.d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NumFrames returns the frame count associated with this result.
func (r *Result) NumFrames() int {
	return r.numFrames
}

// SetNumFrames records the frame count.
func (r *Result) SetNumFrames(n int) {
	r.numFrames = n
}

// AggregateMethod returns the current aggregation policy.
func (r *Result) AggregateMethod() AggregateMethod {
	return r.method
}

// SetAggregateMethod switches the policy used by future GetScore calls.
func (r *Result) SetAggregateMethod(m AggregateMethod) {
	r.method = m
}
