package models

import (
	"time"

	"govmaf/domain/core"
	"govmaf/domain/score"
)

// Run is a completed scoring run as persisted and reported. It is a flat
// projection of a score.Result plus the settings that produced it.
type Run struct {
	ID              string     `json:"id" db:"id"`
	ModelRef        string     `json:"model_ref" db:"model_ref"`
	AggregateMethod string     `json:"aggregate_method" db:"aggregate_method"`
	NumFrames       int        `json:"num_frames" db:"num_frames"`
	AggregateScore  float64    `json:"aggregate_score" db:"aggregate_score"`
	CILow           *float64   `json:"ci_low,omitempty" db:"ci_low"`
	CIHigh          *float64   `json:"ci_high,omitempty" db:"ci_high"`
	FrameScores     []float64  `json:"frame_scores" db:"-"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// NewRunFromResult projects a result into a persistable run. key names the
// metric stream holding the aggregate (normally score.MetricVmaf).
func NewRunFromResult(res *score.Result, modelRef core.ModelRef, key string) (*Run, error) {
	aggregate, err := res.GetScore(key)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Run{
		ID:              res.ID().String(),
		ModelRef:        modelRef.String(),
		AggregateMethod: res.AggregateMethod().String(),
		NumFrames:       res.NumFrames(),
		AggregateScore:  aggregate,
		FrameScores:     res.GetScores(key).Values(),
		CreatedAt:       now,
		CompletedAt:     &now,
	}, nil
}
