package runner

import (
	"context"
	"errors"
	"fmt"

	"govmaf/domain/core"
	"govmaf/domain/score"
	"govmaf/domain/stat"
	"govmaf/ports"
)

// Direct computes one score per frame in a single pass. Given identical
// frame input it yields identical scores.
type Direct struct {
	extractor ports.FeatureExtractor
	method    score.AggregateMethod
}

// NewDirect creates a single-pass runner.
func NewDirect(extractor ports.FeatureExtractor, method score.AggregateMethod) *Direct {
	return &Direct{extractor: extractor, method: method}
}

var _ ports.QualityRunner = (*Direct)(nil)

// Run drives the extractor over the frame stream and accumulates the
// per-frame scores into a result.
func (d *Direct) Run(ctx context.Context, src ports.FrameSource) (*score.Result, error) {
	frameScores, err := collectFrameScores(ctx, d.extractor, src)
	if err != nil {
		return nil, err
	}

	res := score.NewResult()
	res.SetAggregateMethod(d.method)
	res.SetScores(score.MetricVmaf, stat.NewVectorFrom(frameScores))
	res.SetNumFrames(len(frameScores))
	return res, nil
}

// collectFrameScores runs the extractor over every frame pair in order.
// Frame callbacks are invoked one at a time; any failure aborts the whole
// pass and the partial scores are discarded.
func collectFrameScores(ctx context.Context, extractor ports.FeatureExtractor, src ports.FrameSource) ([]float64, error) {
	var frameScores []float64
	for {
		pair, ok, err := src.Next(ctx)
		if err != nil {
			// Cancellation is not a scoring failure; it passes through
			// uncategorized. Callback-level failures are the scoring
			// routine's domain.
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: frame supply failed: %v", core.ErrScoring, err)
		}
		if !ok {
			return frameScores, nil
		}
		s, err := extractor.ScoreFrame(ctx, pair)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", pair.Index, err)
		}
		frameScores = append(frameScores, s)
	}
}

// aggregate collapses a vector per the given method, mirroring
// Result.GetScore for callers that hold a bare vector.
func aggregate(v *stat.Vector, m score.AggregateMethod) (float64, error) {
	switch m {
	case score.AggregateMinimum:
		return v.Minimum()
	case score.AggregateHarmonicMean:
		return v.HarmonicMean()
	default:
		return v.Mean()
	}
}
