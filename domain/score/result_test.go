package score

import (
	"errors"
	"testing"

	"govmaf/domain/core"
	"govmaf/domain/stat"
)

func TestGetScorePerAggregateMethod(t *testing.T) {
	tests := []struct {
		name   string
		method AggregateMethod
		want   float64
	}{
		{"mean", AggregateMean, 2.0},
		{"minimum", AggregateMinimum, 1.0},
		{"harmonic_mean", AggregateHarmonicMean, 1.0/((1.0/2+1.0/3+1.0/4)/3) - 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewResult()
			res.SetScores(MetricVmaf, stat.NewVectorFrom([]float64{1, 2, 3}))
			res.SetAggregateMethod(tt.method)

			got, err := res.GetScore(MetricVmaf)
			if err != nil {
				t.Fatalf("GetScore returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetScoreMinimumMatchesVector(t *testing.T) {
	res := NewResult()
	res.SetScores(MetricVmaf, stat.NewVectorFrom([]float64{9, 3, 7}))
	res.SetAggregateMethod(AggregateMinimum)

	fromResult, err := res.GetScore(MetricVmaf)
	if err != nil {
		t.Fatalf("GetScore returned error: %v", err)
	}
	fromVector, err := res.GetScores(MetricVmaf).Minimum()
	if err != nil {
		t.Fatalf("Minimum returned error: %v", err)
	}
	if fromResult != fromVector {
		t.Errorf("GetScore = %v, Minimum = %v, want equal", fromResult, fromVector)
	}
}

func TestSwitchingMethodDoesNotMutateScores(t *testing.T) {
	res := NewResult()
	res.SetScores(MetricVmaf, stat.NewVectorFrom([]float64{1, 2, 3}))

	mean, _ := res.GetScore(MetricVmaf)
	res.SetAggregateMethod(AggregateMinimum)
	min, _ := res.GetScore(MetricVmaf)

	if mean == min {
		t.Fatalf("method switch had no effect: both %v", mean)
	}
	stored := res.GetScores(MetricVmaf).Values()
	want := []float64{1, 2, 3}
	for i := range want {
		if stored[i] != want[i] {
			t.Fatalf("stored scores changed: %v", stored)
		}
	}
}

func TestGetScoresSilentMiss(t *testing.T) {
	res := NewResult()
	v := res.GetScores("absent")
	if v == nil {
		t.Fatal("GetScores returned nil for absent key, want empty vector")
	}
	if v.Size() != 0 {
		t.Errorf("GetScores on absent key: size = %d, want 0", v.Size())
	}
	if res.HasScores("absent") {
		t.Error("HasScores = true for absent key")
	}
}

func TestGetScoreOnAbsentKeyPropagatesEmptyError(t *testing.T) {
	res := NewResult()
	if _, err := res.GetScore("absent"); !errors.Is(err, core.ErrEmptyVector) {
		t.Errorf("GetScore on absent key: err = %v, want ErrEmptyVector", err)
	}

	res.SetScores("present", stat.NewVector())
	if _, err := res.GetScore("present"); !errors.Is(err, core.ErrEmptyVector) {
		t.Errorf("GetScore on empty vector: err = %v, want ErrEmptyVector", err)
	}
}

func TestKeysSorted(t *testing.T) {
	res := NewResult()
	res.SetScores("zeta", stat.NewVectorFrom([]float64{1}))
	res.SetScores("alpha", stat.NewVectorFrom([]float64{2}))
	res.SetScores("mid", stat.NewVectorFrom([]float64{3}))

	keys := res.Keys()
	want := []string{"alpha", "mid", "zeta"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
	}
}

func TestNumFramesAccessors(t *testing.T) {
	res := NewResult()
	if res.NumFrames() != 0 {
		t.Fatalf("NumFrames = %d, want 0", res.NumFrames())
	}
	res.SetNumFrames(42)
	if res.NumFrames() != 42 {
		t.Errorf("NumFrames = %d, want 42", res.NumFrames())
	}
}

func TestParseAggregateMethod(t *testing.T) {
	tests := []struct {
		in   string
		want AggregateMethod
	}{
		{"minimum", AggregateMinimum},
		{"min", AggregateMinimum},
		{"harmonic_mean", AggregateHarmonicMean},
		{"mean", AggregateMean},
		{"", AggregateMean},
		{"bogus", AggregateMean},
	}
	for _, tt := range tests {
		if got := ParseAggregateMethod(tt.in); got != tt.want {
			t.Errorf("ParseAggregateMethod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
