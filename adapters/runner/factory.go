package runner

import (
	"govmaf/domain/core"
	"govmaf/domain/score"
	"govmaf/ports"
)

// Model is the quality-runner configuration: an opaque model reference and
// the confidence-interval flag. The flag is fixed at construction time and
// decides the runner variant for the runner's lifetime.
type Model struct {
	Path               core.ModelRef
	EnableConfInterval bool
}

// Options carries the runner knobs shared by both variants. The bootstrap
// fields are ignored by the direct runner.
type Options struct {
	Method    score.AggregateMethod
	Resamples int
	Seed      int64
	RNG       ports.RNGPort
}

// NewForModel selects the runner variant from the model configuration:
// bootstrap when the confidence-interval flag is set, direct otherwise.
// Callers receive only the QualityRunner interface and never learn which
// variant was produced.
func NewForModel(extractor ports.FeatureExtractor, model Model, opts Options) ports.QualityRunner {
	if model.EnableConfInterval {
		return NewBootstrap(extractor, opts.RNG, opts.Method, opts.Resamples, opts.Seed)
	}
	return NewDirect(extractor, opts.Method)
}
