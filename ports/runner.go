package ports

import (
	"context"

	"govmaf/domain/core"
	"govmaf/domain/score"
)

// FeatureExtractor computes one quality score per frame pair. It stands in
// for the external feature-extraction/model-inference routine; this core
// only consumes its per-frame output.
type FeatureExtractor interface {
	// ScoreFrame computes the quality score for a single frame pair.
	ScoreFrame(ctx context.Context, pair *FramePair) (float64, error)

	// ModelRef identifies the model the extractor was built from.
	ModelRef() core.ModelRef
}

// QualityRunner drives the scoring process over a frame stream and
// produces a populated Result. This is the system's only polymorphism
// point: callers hold the interface and never know which variant the
// factory produced.
type QualityRunner interface {
	Run(ctx context.Context, src FrameSource) (*score.Result, error)
}
