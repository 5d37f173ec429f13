package frames

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"govmaf/ports"
)

func TestCallbackSourceSuppliesFrames(t *testing.T) {
	served := 0
	readFrame := func(refData, mainData, tempData []float32, strideByte int, userData any) int {
		if served >= 2 {
			return 1
		}
		served++
		refData[0] = float32(served)
		mainData[0] = float32(served) * 2
		return 0
	}

	src := NewCallbackSource(readFrame, nil, nil, 4, 4)

	var pairs []*ports.FramePair
	for {
		pair, ok, err := src.Next(context.Background())
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if !ok {
			break
		}
		pairs = append(pairs, pair)
	}

	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	if pairs[0].Index != 0 || pairs[1].Index != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", pairs[0].Index, pairs[1].Index)
	}
	if pairs[1].Ref.Data[0] != 2 || pairs[1].Dis.Data[0] != 4 {
		t.Errorf("frame data not carried through: %v, %v", pairs[1].Ref.Data[0], pairs[1].Dis.Data[0])
	}

	// Exhausted source stays exhausted.
	if _, ok, _ := src.Next(context.Background()); ok {
		t.Error("source supplied a frame after end of stream")
	}
}

func TestCallbackSourcePrefersPictureCallback(t *testing.T) {
	frameCalls := 0
	readFrame := func(refData, mainData, tempData []float32, strideByte int, userData any) int {
		frameCalls++
		return 1
	}
	pictureCalls := 0
	readPicture := func(refPict, disPict *ports.Picture, tempData []float32, stride int, userData any) int {
		pictureCalls++
		return 1
	}

	src := NewCallbackSource(readFrame, readPicture, nil, 4, 4)
	src.Next(context.Background())

	if pictureCalls != 1 || frameCalls != 0 {
		t.Errorf("picture calls = %d, frame calls = %d, want 1 and 0", pictureCalls, frameCalls)
	}
}

func TestCallbackSourceNegativeReturnIsFailure(t *testing.T) {
	readFrame := func(refData, mainData, tempData []float32, strideByte int, userData any) int {
		return -2
	}
	src := NewCallbackSource(readFrame, nil, nil, 4, 4)
	if _, _, err := src.Next(context.Background()); err == nil {
		t.Error("negative callback return did not surface as an error")
	}
}

func TestCallbackSourceNoCallback(t *testing.T) {
	src := NewCallbackSource(nil, nil, nil, 4, 4)
	if _, _, err := src.Next(context.Background()); err == nil {
		t.Error("missing callbacks did not surface as an error")
	}
}

func writePlaneFile(t *testing.T, path string, planes [][]float32) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	for _, plane := range planes {
		if err := binary.Write(f, binary.LittleEndian, plane); err != nil {
			t.Fatalf("write plane: %v", err)
		}
	}
}

func TestRawFileSource(t *testing.T) {
	dir := t.TempDir()
	refPath := filepath.Join(dir, "ref.raw")
	disPath := filepath.Join(dir, "dis.raw")

	writePlaneFile(t, refPath, [][]float32{{1, 2, 3, 4}, {5, 6, 7, 8}})
	writePlaneFile(t, disPath, [][]float32{{1, 2, 3, 5}, {5, 6, 7, 9}})

	src, err := OpenRawFiles(refPath, disPath, 2, 2)
	if err != nil {
		t.Fatalf("OpenRawFiles failed: %v", err)
	}
	defer src.Close()

	first, ok, err := src.Next(context.Background())
	if err != nil || !ok {
		t.Fatalf("first frame: ok = %v, err = %v", ok, err)
	}
	if first.Ref.Data[3] != 4 || first.Dis.Data[3] != 5 {
		t.Errorf("first frame data = %v, %v", first.Ref.Data, first.Dis.Data)
	}

	if _, ok, err = src.Next(context.Background()); err != nil || !ok {
		t.Fatalf("second frame: ok = %v, err = %v", ok, err)
	}

	if _, ok, err = src.Next(context.Background()); err != nil || ok {
		t.Fatalf("after EOF: ok = %v, err = %v, want end of stream", ok, err)
	}
}

func TestRawFileSourceShortDistorted(t *testing.T) {
	dir := t.TempDir()
	refPath := filepath.Join(dir, "ref.raw")
	disPath := filepath.Join(dir, "dis.raw")

	writePlaneFile(t, refPath, [][]float32{{1, 2, 3, 4}})
	writePlaneFile(t, disPath, [][]float32{{1, 2}})

	src, err := OpenRawFiles(refPath, disPath, 2, 2)
	if err != nil {
		t.Fatalf("OpenRawFiles failed: %v", err)
	}
	defer src.Close()

	if _, _, err := src.Next(context.Background()); err == nil {
		t.Error("short distorted file did not surface as an error")
	}
}
