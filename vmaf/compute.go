// Package vmaf is the caller-facing surface of the scoring core. Compute
// mirrors the C-ABI entry point: callers hand in an output slot, two
// frame-supplying callbacks, an opaque user-data token and a settings
// struct, and get back a numeric status code.
package vmaf

import (
	"context"
	"fmt"

	"govmaf/adapters/frames"
	"govmaf/adapters/runner"
	"govmaf/domain/core"
	"govmaf/domain/score"
	"govmaf/internal"
	"govmaf/internal/cpu"
	"govmaf/internal/rng"
	"govmaf/ports"
)

// Status codes returned by Compute. Anything non-zero means no valid score
// was produced and the output slot was left untouched.
const (
	StatusOK             = 0
	StatusUnknownFailure = -1
	StatusScoringFailure = -2
	StatusNumericFailure = -3
	StatusLogicFailure   = -4
)

// ModelSettings selects the model and the runner variant.
type ModelSettings struct {
	Path               string
	EnableConfInterval bool
}

// ExtractorFactory builds the external feature extractor for a resolved
// model and CPU capability. The extractor is the out-of-scope collaborator
// that computes the actual per-frame score.
type ExtractorFactory func(model core.ModelRef, capability cpu.Capability) (ports.FeatureExtractor, error)

// Settings carries everything one scoring call needs. The CPU capability
// is resolved per call and threaded through this value, never stored in
// process-wide state, so concurrent calls with different acceleration
// settings cannot interfere.
type Settings struct {
	Model      ModelSettings
	DisableAVX bool

	Width  int
	Height int

	AggregateMethod    score.AggregateMethod
	BootstrapResamples int
	BootstrapSeed      int64

	NewExtractor ExtractorFactory
	RNG          ports.RNGPort
	Logger       *internal.Logger
}

// Compute resolves the CPU capability, runs the scoring routine over the
// callback-supplied frames and writes the aggregate score into out on
// success. Every internal failure is translated into a status code; no
// error value and no panic crosses this boundary.
func Compute(out *float64, readFrame ports.ReadFrameFunc, readPicture ports.ReadPictureFunc, userData any, settings *Settings) int {
	return ComputeContext(context.Background(), out, readFrame, readPicture, userData, settings)
}

// ComputeContext is Compute with caller-controlled cancellation.
func ComputeContext(ctx context.Context, out *float64, readFrame ports.ReadFrameFunc, readPicture ports.ReadPictureFunc, userData any, settings *Settings) (status int) {
	logger := internal.DefaultLogger
	if settings != nil && settings.Logger != nil {
		logger = settings.Logger
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("caught panic in scoring call: %v", r)
			status = StatusNumericFailure
		}
	}()

	if settings == nil {
		logger.Error("caught logic failure: nil settings")
		return StatusLogicFailure
	}

	capability := cpu.Autodetect(settings.DisableAVX)
	logger.Debug("cpu capability resolved to %s", capability)

	src := frames.NewCallbackSource(readFrame, readPicture, userData, settings.Width, settings.Height)
	res, err := Score(ctx, src, capability, settings)
	if err != nil {
		return translate(err, logger)
	}

	final, err := res.GetScore(score.MetricVmaf)
	if err != nil {
		return translate(err, logger)
	}

	*out = final
	return StatusOK
}

// Score runs the quality computation over an arbitrary frame source and
// returns the populated result. The HTTP service and the CLI call this
// directly with their own sources; Compute wraps it with the callback
// source and the status-code translation.
func Score(ctx context.Context, src ports.FrameSource, capability cpu.Capability, settings *Settings) (*score.Result, error) {
	if settings.Width <= 0 || settings.Height <= 0 {
		return nil, fmt.Errorf("%w: frame dimensions %dx%d", core.ErrLogic, settings.Width, settings.Height)
	}
	if settings.NewExtractor == nil {
		return nil, fmt.Errorf("%w: no extractor factory configured", core.ErrLogic)
	}

	extractor, err := settings.NewExtractor(core.ModelRef(settings.Model.Path), capability)
	if err != nil {
		return nil, core.NewScoringError(err.Error())
	}

	rngPort := settings.RNG
	if rngPort == nil {
		rngPort = rng.New()
	}

	qr := runner.NewForModel(extractor, runner.Model{
		Path:               core.ModelRef(settings.Model.Path),
		EnableConfInterval: settings.Model.EnableConfInterval,
	}, runner.Options{
		Method:    settings.AggregateMethod,
		Resamples: settings.BootstrapResamples,
		Seed:      settings.BootstrapSeed,
		RNG:       rngPort,
	})

	return qr.Run(ctx, src)
}

// translate maps an internal failure onto the fixed status-code set. The
// categories are checked from most to least specific; anything that fits
// none of them gets the distinct unknown code rather than being absorbed
// into a mapped one.
func translate(err error, logger *internal.Logger) int {
	switch {
	case core.IsScoringError(err):
		logger.Error("caught scoring failure: %v", err)
		return StatusScoringFailure
	case core.IsLogicError(err):
		logger.Error("caught logic failure: %v", err)
		return StatusLogicFailure
	case core.IsNumericError(err):
		logger.Error("caught numeric failure: %v", err)
		return StatusNumericFailure
	default:
		// Callback/context failures and anything uncategorized: runtime by
		// default would hide new categories, so they get their own code.
		logger.Error("caught uncategorized failure: %v", err)
		return StatusUnknownFailure
	}
}
