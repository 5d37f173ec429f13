package analysis

import (
	"errors"
	"testing"

	"govmaf/domain/core"
	"govmaf/domain/score"
	"govmaf/domain/stat"
)

func TestSummarize(t *testing.T) {
	res := score.NewResult()
	res.SetScores(score.MetricVmaf, stat.NewVectorFrom([]float64{1, 2, 3, 4, 5}))

	s, err := Summarize(res, score.MetricVmaf)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.NumFrames != 5 {
		t.Errorf("NumFrames = %d, want 5", s.NumFrames)
	}
	if s.Mean != 3 {
		t.Errorf("Mean = %v, want 3", s.Mean)
	}
	if s.Min != 1 || s.Max != 5 {
		t.Errorf("Min, Max = %v, %v, want 1, 5", s.Min, s.Max)
	}
	if s.Median != 3 {
		t.Errorf("Median = %v, want 3", s.Median)
	}
}

func TestSummarizeMissingKey(t *testing.T) {
	res := score.NewResult()
	if _, err := Summarize(res, "absent"); !errors.Is(err, core.ErrKeyNotFound) {
		t.Errorf("err = %v, want ErrKeyNotFound", err)
	}
}

func TestSummarizeAllSkipsEmptyStreams(t *testing.T) {
	res := score.NewResult()
	res.SetScores("full", stat.NewVectorFrom([]float64{1, 2}))
	res.SetScores("empty", stat.NewVector())

	summaries := SummarizeAll(res)
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	if summaries[0].Key != "full" {
		t.Errorf("Key = %q, want full", summaries[0].Key)
	}
}
