// Command vmaf scores a pair of raw float32 luma-plane files and prints
// the aggregate quality score.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"govmaf/adapters/excel"
	"govmaf/adapters/frames"
	"govmaf/adapters/runner"
	"govmaf/domain/core"
	"govmaf/domain/score"
	"govmaf/internal"
	"govmaf/internal/cpu"
	"govmaf/internal/testkit"
	"govmaf/models"
	"govmaf/ports"
	"govmaf/vmaf"
)

func main() {
	var (
		refPath    = flag.String("ref", "", "reference plane file (float32, little-endian)")
		disPath    = flag.String("dis", "", "distorted plane file (float32, little-endian)")
		width      = flag.Int("width", 0, "frame width in samples")
		height     = flag.Int("height", 0, "frame height in samples")
		modelPath  = flag.String("model", "model/vmaf_v0.6.1.json", "model reference")
		pool       = flag.String("pool", "mean", "aggregation method: mean, minimum, harmonic_mean")
		ci         = flag.Bool("ci", false, "enable bootstrap confidence interval")
		resamples  = flag.Int("resamples", 100, "bootstrap resample count")
		seed       = flag.Int64("seed", 42, "bootstrap seed")
		ciLevel    = flag.Float64("ci-level", 0.95, "confidence level")
		disableAVX = flag.Bool("disable-avx", false, "force the non-accelerated code path")
		exportPath = flag.String("export", "", "write per-frame scores to this xlsx file")
	)
	flag.Parse()

	if *refPath == "" || *disPath == "" || *width <= 0 || *height <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	src, err := frames.OpenRawFiles(*refPath, *disPath, *width, *height)
	if err != nil {
		log.Fatalf("Failed to open plane files: %v", err)
	}
	defer src.Close()

	settings := &vmaf.Settings{
		Model: vmaf.ModelSettings{
			Path:               *modelPath,
			EnableConfInterval: *ci,
		},
		DisableAVX:         *disableAVX,
		Width:              *width,
		Height:             *height,
		AggregateMethod:    score.ParseAggregateMethod(*pool),
		BootstrapResamples: *resamples,
		BootstrapSeed:      *seed,
		NewExtractor: func(model core.ModelRef, capability cpu.Capability) (ports.FeatureExtractor, error) {
			return &testkit.FakeExtractor{Model: model}, nil
		},
		Logger: internal.NewDefaultLogger(),
	}

	capability := cpu.Autodetect(*disableAVX)
	res, err := vmaf.Score(context.Background(), src, capability, settings)
	if err != nil {
		log.Fatalf("Scoring failed: %v", err)
	}

	run, err := models.NewRunFromResult(res, core.ModelRef(*modelPath), score.MetricVmaf)
	if err != nil {
		log.Fatalf("No score produced: %v", err)
	}

	fmt.Printf("frames: %d\n", run.NumFrames)
	fmt.Printf("%s (%s): %.6f\n", score.MetricVmaf, run.AggregateMethod, run.AggregateScore)

	if *ci {
		interval, err := runner.PercentileInterval(res, *ciLevel)
		if err != nil {
			log.Fatalf("Confidence interval failed: %v", err)
		}
		run.CILow = &interval.Low
		run.CIHigh = &interval.High
		fmt.Printf("ci %.0f%%: [%.6f, %.6f]\n", *ciLevel*100, interval.Low, interval.High)
	}

	if *exportPath != "" {
		f, err := os.Create(*exportPath)
		if err != nil {
			log.Fatalf("Failed to create export file: %v", err)
		}
		defer f.Close()
		if err := excel.NewRunExporter().Write(f, run); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("exported: %s\n", *exportPath)
	}
}
