package score

import "fmt"

// Well-known metric keys. Each key names one per-frame score stream inside
// a Result.
const (
	// MetricVmaf is the primary per-frame quality score stream.
	MetricVmaf = "vmaf"

	// MetricVmafBootstrap holds the distribution of aggregate scores across
	// bootstrap resamples. Its percentiles give the confidence interval.
	MetricVmafBootstrap = "vmaf_bootstrap"
)

// ModelMetricKey names the per-frame stream of the i-th bootstrap model,
// mirroring the pooled-model layout of the upstream score pipeline.
func ModelMetricKey(i int) string {
	return fmt.Sprintf("%s_%d", MetricVmaf, i)
}
