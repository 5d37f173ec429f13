package ports

import "context"

// Picture is a decoded frame handed to the scoring pipeline. Planes are
// already-decoded float samples; this core never touches a codec.
type Picture struct {
	Data   []float32
	Width  int
	Height int
	Stride int
}

// ReadFrameFunc is the raw-sample callback shape from the boundary
// contract. It fills refData and mainData for the next frame and returns
// non-zero when no more frames can be supplied.
type ReadFrameFunc func(refData, mainData, tempData []float32, strideByte int, userData any) int

// ReadPictureFunc is the picture-struct callback shape from the boundary
// contract. Non-zero return signals end of stream or a supply failure.
type ReadPictureFunc func(refPict, disPict *Picture, tempData []float32, stride int, userData any) int

// FramePair is one reference/distorted frame pair, in stream order.
type FramePair struct {
	Index int
	Ref   Picture
	Dis   Picture
}

// FrameSource supplies frame pairs one at a time. Implementations wrap the
// caller callbacks, files, or synthetic generators.
type FrameSource interface {
	// Next returns the next frame pair, or ok=false at end of stream.
	Next(ctx context.Context) (pair *FramePair, ok bool, err error)
}
