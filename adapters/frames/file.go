package frames

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"govmaf/ports"
)

// RawFileSource reads already-decoded float32 luma planes from a pair of
// files, one plane per frame, little-endian. This is the caller-side frame
// supply for the CLI; it is not a video decoder.
type RawFileSource struct {
	ref    *os.File
	dis    *os.File
	width  int
	height int
	idx    int
}

// OpenRawFiles opens the reference and distorted plane files.
func OpenRawFiles(refPath, disPath string, width, height int) (*RawFileSource, error) {
	ref, err := os.Open(refPath)
	if err != nil {
		return nil, fmt.Errorf("open reference: %w", err)
	}
	dis, err := os.Open(disPath)
	if err != nil {
		ref.Close()
		return nil, fmt.Errorf("open distorted: %w", err)
	}
	return &RawFileSource{ref: ref, dis: dis, width: width, height: height}, nil
}

var _ ports.FrameSource = (*RawFileSource)(nil)

// Next reads one plane from each file. A clean EOF on the reference file
// ends the stream; a short read anywhere is a supply failure.
func (s *RawFileSource) Next(ctx context.Context) (*ports.FramePair, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	refPlane := make([]float32, s.width*s.height)
	if err := binary.Read(s.ref, binary.LittleEndian, refPlane); err != nil {
		if err == io.EOF {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read reference frame %d: %w", s.idx, err)
	}
	disPlane := make([]float32, s.width*s.height)
	if err := binary.Read(s.dis, binary.LittleEndian, disPlane); err != nil {
		return nil, false, fmt.Errorf("read distorted frame %d: %w", s.idx, err)
	}

	pair := &ports.FramePair{
		Index: s.idx,
		Ref:   ports.Picture{Data: refPlane, Width: s.width, Height: s.height, Stride: s.width},
		Dis:   ports.Picture{Data: disPlane, Width: s.width, Height: s.height, Stride: s.width},
	}
	s.idx++
	return pair, true, nil
}

// Close releases both plane files.
func (s *RawFileSource) Close() error {
	err1 := s.ref.Close()
	err2 := s.dis.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
