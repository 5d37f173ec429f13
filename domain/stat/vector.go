package stat

import (
	"math"
	"sort"

	"govmaf/domain/core"
)

// Vector is an ordered, growable sequence of per-frame scores with derived
// statistics. Insertion order is preserved and duplicates are allowed. Every
// derived-statistic operation requires a non-empty sequence and returns
// core.ErrEmptyVector otherwise - never a silent zero or NaN.
type Vector struct {
	l []float64
}

// NewVector creates an empty vector.
func NewVector() *Vector {
	return &Vector{}
}

// NewVectorFrom creates a vector seeded with the given scores.
func NewVectorFrom(scores []float64) *Vector {
	l := make([]float64, len(scores))
	copy(l, scores)
	return &Vector{l: l}
}

// Append adds a score to the end of the sequence. No upper bound.
func (v *Vector) Append(x float64) {
	v.l = append(v.l, x)
}

// Size returns the number of scores.
func (v *Vector) Size() int {
	return len(v.l)
}

// Values returns a read-only snapshot of the full sequence.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.l))
	copy(out, v.l)
	return out
}

// At returns the score at index i.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.l) {
		return 0, core.NewOutOfRangeError(i, len(v.l))
	}
	return v.l[i], nil
}

// Mean returns the arithmetic mean.
func (v *Vector) Mean() (float64, error) {
	if err := v.assertSize(); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, e := range v.l {
		sum += e
	}
	return sum / float64(len(v.l)), nil
}

// Minimum returns the smallest score.
func (v *Vector) Minimum() (float64, error) {
	if err := v.assertSize(); err != nil {
		return 0, err
	}
	min := v.l[0]
	for _, e := range v.l {
		if e < min {
			min = e
		}
	}
	return min, nil
}

// HarmonicMean returns 1/(average of 1/(x+1)) - 1. The +1 shift keeps the
// reciprocal defined for zero-valued scores; the exact shifted form is part
// of the score contract, not the textbook harmonic mean.
func (v *Vector) HarmonicMean() (float64, error) {
	if err := v.assertSize(); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, e := range v.l {
		sum += 1.0 / (e + 1.0)
	}
	return 1.0/(sum/float64(len(v.l))) - 1.0, nil
}

// SecondMoment returns the average of the squared scores.
func (v *Vector) SecondMoment() (float64, error) {
	if err := v.assertSize(); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, e := range v.l {
		sum += e * e
	}
	return sum / float64(len(v.l)), nil
}

// Var returns SecondMoment() - Mean()^2, the raw population formula. For
// near-constant sequences floating-point cancellation can push the result
// slightly negative; the raw value is returned unclamped on purpose.
func (v *Vector) Var() (float64, error) {
	m2, err := v.SecondMoment()
	if err != nil {
		return 0, err
	}
	m, err := v.Mean()
	if err != nil {
		return 0, err
	}
	return m2 - m*m, nil
}

// Std returns the square root of Var. A negative Var yields NaN, which is
// propagated rather than guarded.
func (v *Vector) Std() (float64, error) {
	variance, err := v.Var()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Percentile returns the linear-interpolation percentile. perc is clamped
// to [0, 100]. On a sorted copy, pos = perc*(n-1)/100; the result blends
// the two neighboring ranks weighted by distance to each integer index.
// The exact weighting matters: percentile methods disagree across
// libraries, and this one must match the score pipeline.
func (v *Vector) Percentile(perc float64) (float64, error) {
	if err := v.assertSize(); err != nil {
		return 0, err
	}
	if perc < 0.0 {
		perc = 0.0
	} else if perc > 100.0 {
		perc = 100.0
	}
	sorted := make([]float64, len(v.l))
	copy(sorted, v.l)
	sort.Float64s(sorted)

	pos := perc * float64(len(v.l)-1) / 100.0
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo], nil
	}
	return sorted[lo]*(float64(hi)-pos) + sorted[hi]*(pos-float64(lo)), nil
}

func (v *Vector) assertSize() error {
	if len(v.l) == 0 {
		return core.ErrEmptyVector
	}
	return nil
}
