package runner

import (
	"context"
	"fmt"
	"math"

	"govmaf/domain/core"
	"govmaf/domain/score"
	"govmaf/domain/stat"
	"govmaf/ports"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"
)

// resampleWorkers bounds the concurrent bootstrap resamples.
const resampleWorkers = 4

// Bootstrap computes the same per-frame scores as Direct, then resamples
// them with replacement to derive a confidence interval. The per-frame
// scores are computed exactly once; resampling never re-invokes the frame
// callbacks.
type Bootstrap struct {
	extractor ports.FeatureExtractor
	rng       ports.RNGPort
	method    score.AggregateMethod
	resamples int
	seed      int64
}

// NewBootstrap creates a resampling runner. resamples values below 1 fall
// back to the default of 100.
func NewBootstrap(extractor ports.FeatureExtractor, rng ports.RNGPort, method score.AggregateMethod, resamples int, seed int64) *Bootstrap {
	if resamples < 1 {
		resamples = 100
	}
	return &Bootstrap{
		extractor: extractor,
		rng:       rng,
		method:    method,
		resamples: resamples,
		seed:      seed,
	}
}

var _ ports.QualityRunner = (*Bootstrap)(nil)

// Run performs one scoring pass and then the resampling step. The result
// holds the point-estimate stream under score.MetricVmaf, each resampled
// stream under score.ModelMetricKey(i), and the distribution of resampled
// aggregates under score.MetricVmafBootstrap.
func (b *Bootstrap) Run(ctx context.Context, src ports.FrameSource) (*score.Result, error) {
	frameScores, err := collectFrameScores(ctx, b.extractor, src)
	if err != nil {
		return nil, err
	}

	res := score.NewResult()
	res.SetAggregateMethod(b.method)
	res.SetScores(score.MetricVmaf, stat.NewVectorFrom(frameScores))
	res.SetNumFrames(len(frameScores))

	if len(frameScores) == 0 {
		// Nothing to resample; downstream aggregation reports the
		// empty-vector error.
		return res, nil
	}

	resampled := make([][]float64, b.resamples)
	aggregates := make([]float64, b.resamples)

	// Each resample is independent given the computed scores, so they run
	// on a bounded worker group. Every resample owns a stream seeded by the
	// base seed and its index, so the distribution is reproducible across
	// runs regardless of worker scheduling.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resampleWorkers)
	for i := 0; i < b.resamples; i++ {
		i := i
		g.Go(func() error {
			rng, err := b.rng.ResampleStream(gctx, i, b.seed)
			if err != nil {
				return core.NewNumericError("resample rng", err)
			}
			draw := make([]float64, len(frameScores))
			for j := range draw {
				draw[j] = frameScores[rng.Intn(len(frameScores))]
			}
			agg, err := aggregate(stat.NewVectorFrom(draw), b.method)
			if err != nil {
				return err
			}
			resampled[i] = draw
			aggregates[i] = agg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, draw := range resampled {
		res.SetScores(score.ModelMetricKey(i), stat.NewVectorFrom(draw))
	}
	res.SetScores(score.MetricVmafBootstrap, stat.NewVectorFrom(aggregates))
	return res, nil
}

// ConfidenceInterval is a two-sided interval around the aggregate score.
type ConfidenceInterval struct {
	Low    float64 `json:"low"`
	High   float64 `json:"high"`
	Level  float64 `json:"level"`
	Method string  `json:"method"`
}

// PercentileInterval derives the interval from the percentiles of the
// bootstrap aggregate distribution stored in the result.
func PercentileInterval(res *score.Result, level float64) (ConfidenceInterval, error) {
	dist := res.GetScores(score.MetricVmafBootstrap)
	alpha := (1.0 - level) / 2.0
	low, err := dist.Percentile(alpha * 100.0)
	if err != nil {
		return ConfidenceInterval{}, err
	}
	high, err := dist.Percentile((1.0 - alpha) * 100.0)
	if err != nil {
		return ConfidenceInterval{}, err
	}
	return ConfidenceInterval{Low: low, High: high, Level: level, Method: "percentile"}, nil
}

// NormalApproxInterval derives the interval from a normal approximation of
// the bootstrap distribution: mean +/- z*std with z from the standard
// normal quantile at the requested level.
func NormalApproxInterval(res *score.Result, level float64) (ConfidenceInterval, error) {
	dist := res.GetScores(score.MetricVmafBootstrap)
	mean, err := dist.Mean()
	if err != nil {
		return ConfidenceInterval{}, err
	}
	std, err := dist.Std()
	if err != nil {
		return ConfidenceInterval{}, err
	}
	if math.IsNaN(std) {
		return ConfidenceInterval{}, fmt.Errorf("%w: bootstrap distribution std is NaN", core.ErrNumeric)
	}
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1.0 - (1.0-level)/2.0)
	return ConfidenceInterval{
		Low:    mean - z*std,
		High:   mean + z*std,
		Level:  level,
		Method: "normal",
	}, nil
}
