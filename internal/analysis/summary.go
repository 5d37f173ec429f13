package analysis

import (
	"govmaf/domain/core"
	"govmaf/domain/score"

	"github.com/montanaflynn/stats"
)

// RunSummary describes the shape of a per-frame score stream for reports.
// These are descriptive statistics only; the aggregate score itself always
// comes from score.Result, whose formulas are part of the score contract.
type RunSummary struct {
	Key       string  `json:"key"`
	NumFrames int     `json:"num_frames"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Median    float64 `json:"median"`
	Q25       float64 `json:"q25"`
	Q75       float64 `json:"q75"`
}

// Summarize computes descriptive statistics for one metric stream.
func Summarize(res *score.Result, key string) (*RunSummary, error) {
	if !res.HasScores(key) {
		return nil, core.ErrKeyNotFound
	}
	data := res.GetScores(key).Values()
	if len(data) == 0 {
		return nil, core.ErrEmptyVector
	}

	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	median, _ := stats.Median(data)
	q25, _ := stats.Percentile(data, 25)
	q75, _ := stats.Percentile(data, 75)

	return &RunSummary{
		Key:       key,
		NumFrames: len(data),
		Mean:      mean,
		StdDev:    stdDev,
		Min:       min,
		Max:       max,
		Median:    median,
		Q25:       q25,
		Q75:       q75,
	}, nil
}

// SummarizeAll summarizes every metric stream in the result, skipping
// empty ones.
func SummarizeAll(res *score.Result) []*RunSummary {
	var summaries []*RunSummary
	for _, key := range res.Keys() {
		s, err := Summarize(res, key)
		if err != nil {
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries
}
