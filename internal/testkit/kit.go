// Package testkit provides synthetic frame sources and extractor fakes for
// tests and the demo scoring path.
package testkit

import (
	"context"
	"math"

	"govmaf/domain/core"
	"govmaf/ports"
)

// SyntheticSource generates deterministic frame pairs in memory. The same
// parameters always yield the same stream.
type SyntheticSource struct {
	numFrames int
	width     int
	height    int
	next      int
}

// NewSyntheticSource creates a source that supplies numFrames pairs of
// width x height float planes.
func NewSyntheticSource(numFrames, width, height int) *SyntheticSource {
	return &SyntheticSource{numFrames: numFrames, width: width, height: height}
}

var _ ports.FrameSource = (*SyntheticSource)(nil)

// Next returns the next synthetic frame pair.
func (s *SyntheticSource) Next(ctx context.Context) (*ports.FramePair, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if s.next >= s.numFrames {
		return nil, false, nil
	}
	idx := s.next
	s.next++

	ref := make([]float32, s.width*s.height)
	dis := make([]float32, s.width*s.height)
	for i := range ref {
		// Smooth gradient reference with a frame-dependent distortion ripple.
		ref[i] = float32(i%s.width) / float32(s.width)
		dis[i] = ref[i] + 0.01*float32(math.Sin(float64(idx+i)))
	}

	return &ports.FramePair{
		Index: idx,
		Ref:   ports.Picture{Data: ref, Width: s.width, Height: s.height, Stride: s.width},
		Dis:   ports.Picture{Data: dis, Width: s.width, Height: s.height, Stride: s.width},
	}, true, nil
}

// FakeExtractor scores frames as a deterministic function of the plane
// difference, standing in for the real feature extractor.
type FakeExtractor struct {
	Model core.ModelRef
}

var _ ports.FeatureExtractor = (*FakeExtractor)(nil)

// ScoreFrame maps the mean absolute plane difference onto a 0-100 scale.
func (f *FakeExtractor) ScoreFrame(ctx context.Context, pair *ports.FramePair) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(pair.Ref.Data) == 0 || len(pair.Ref.Data) != len(pair.Dis.Data) {
		return 0, core.ErrFrameMalformed
	}
	sum := 0.0
	for i := range pair.Ref.Data {
		sum += math.Abs(float64(pair.Ref.Data[i] - pair.Dis.Data[i]))
	}
	mad := sum / float64(len(pair.Ref.Data))
	s := 100.0 * (1.0 - mad)
	if s < 0 {
		s = 0
	}
	return s, nil
}

// ModelRef identifies the fake model.
func (f *FakeExtractor) ModelRef() core.ModelRef {
	return f.Model
}

// ScriptedExtractor replays a fixed score sequence, failing once the
// script is exhausted.
type ScriptedExtractor struct {
	Model  core.ModelRef
	Scores []float64
	next   int
}

var _ ports.FeatureExtractor = (*ScriptedExtractor)(nil)

func (s *ScriptedExtractor) ScoreFrame(ctx context.Context, pair *ports.FramePair) (float64, error) {
	if s.next >= len(s.Scores) {
		return 0, core.NewScoringError("scripted extractor exhausted")
	}
	v := s.Scores[s.next]
	s.next++
	return v, nil
}

func (s *ScriptedExtractor) ModelRef() core.ModelRef {
	return s.Model
}

// FailingExtractor always fails with the configured error, used to drive
// each boundary status-code path.
type FailingExtractor struct {
	Model core.ModelRef
	Err   error
}

var _ ports.FeatureExtractor = (*FailingExtractor)(nil)

func (f *FailingExtractor) ScoreFrame(ctx context.Context, pair *ports.FramePair) (float64, error) {
	return 0, f.Err
}

func (f *FailingExtractor) ModelRef() core.ModelRef {
	return f.Model
}
