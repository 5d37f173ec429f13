// Package frames adapts frame suppliers - caller callbacks and raw plane
// files - onto the FrameSource port.
package frames

import (
	"context"
	"fmt"

	"govmaf/ports"
)

// CallbackSource drives the caller-supplied read callbacks, one frame at a
// time. The user-data token is forwarded verbatim on every invocation. A
// positive callback return signals end of stream; a negative one is a
// supply failure.
type CallbackSource struct {
	readFrame   ports.ReadFrameFunc
	readPicture ports.ReadPictureFunc
	userData    any
	width       int
	height      int
	temp        []float32
	idx         int
	done        bool
}

// NewCallbackSource wraps the boundary callbacks. readPicture takes
// precedence when both are supplied, matching the upstream pipeline which
// reads pictures for picture-based models and raw frames otherwise.
func NewCallbackSource(readFrame ports.ReadFrameFunc, readPicture ports.ReadPictureFunc, userData any, width, height int) *CallbackSource {
	return &CallbackSource{
		readFrame:   readFrame,
		readPicture: readPicture,
		userData:    userData,
		width:       width,
		height:      height,
		temp:        make([]float32, width*height),
	}
}

var _ ports.FrameSource = (*CallbackSource)(nil)

// Next invokes the callback for the next frame pair.
func (c *CallbackSource) Next(ctx context.Context) (*ports.FramePair, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if c.done {
		return nil, false, nil
	}

	stride := c.width * 4
	ref := ports.Picture{
		Data:   make([]float32, c.width*c.height),
		Width:  c.width,
		Height: c.height,
		Stride: c.width,
	}
	dis := ports.Picture{
		Data:   make([]float32, c.width*c.height),
		Width:  c.width,
		Height: c.height,
		Stride: c.width,
	}

	var rc int
	switch {
	case c.readPicture != nil:
		rc = c.readPicture(&ref, &dis, c.temp, stride, c.userData)
	case c.readFrame != nil:
		rc = c.readFrame(ref.Data, dis.Data, c.temp, stride, c.userData)
	default:
		return nil, false, fmt.Errorf("no frame callback supplied")
	}

	if rc > 0 {
		c.done = true
		return nil, false, nil
	}
	if rc < 0 {
		c.done = true
		return nil, false, fmt.Errorf("frame callback failed with code %d", rc)
	}

	pair := &ports.FramePair{Index: c.idx, Ref: ref, Dis: dis}
	c.idx++
	return pair, true, nil
}
