// capture/capture_test.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package capture

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/glpaint/glpaint/math"
	"github.com/glpaint/glpaint/paint"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

func testFrame() ([]paint.ClippedPrimitive, paint.TexturesDelta) {
	var mesh paint.Mesh
	mesh.AddRectWithUV(math.Extent2D{P0: [2]float32{10, 10}, P1: [2]float32{50, 30}},
		math.Extent2D{P1: [2]float32{1, 1}}, paint.Color32{255, 0, 0, 255})
	mesh.TextureID = paint.UserTexture(3)

	prims := []paint.ClippedPrimitive{
		{ClipRect: math.Extent2D{P1: [2]float32{100, 100}}, Primitive: &mesh},
		{ClipRect: math.Extent2D{P1: [2]float32{20, 20}},
			Primitive: &paint.CallbackPrimitive{Rect: math.Extent2D{P1: [2]float32{5, 5}}}},
	}

	var delta paint.TexturesDelta
	delta.SetTexture(paint.ManagedTexture(0), paint.FullImage(
		&paint.FontImage{Width: 2, Height: 1, Pixels: []float32{0, 0.5}}, paint.TextureFilterLinear))
	delta.SetTexture(paint.UserTexture(3), paint.PartialImage([2]int{1, 2},
		paint.NewColorImage(1, 2, paint.Color32{10, 20, 30, 40})))
	delta.Free = []paint.TextureID{paint.UserTexture(1)}
	return prims, delta
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, nil)
	if err != nil {
		t.Fatal(err)
	}

	prims, delta := testFrame()
	if err := rec.Record(2, [2]int{800, 600}, prims, delta); err != nil {
		t.Fatal(err)
	}
	if err := rec.Record(1, [2]int{640, 480}, nil, paint.TexturesDelta{}); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if rec.Frames() != 2 {
		t.Errorf("recorded %d frames, expected 2", rec.Frames())
	}

	rd, err := NewReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer rd.Close()
	if rd.Header.Version != Version || rd.Header.Created.IsZero() {
		t.Errorf("unexpected header %+v", rd.Header)
	}

	fr, err := rd.Next()
	if err != nil {
		t.Fatal(err)
	}
	if fr.Index != 0 || fr.PixelsPerPoint != 2 || fr.CanvasSize != [2]int{800, 600} {
		t.Errorf("frame 0: %+v", fr)
	}

	got := fr.ClippedPrimitives()
	if len(got) != 2 {
		t.Fatalf("got %d primitives, expected 2", len(got))
	}
	m, ok := got[0].Primitive.(*paint.Mesh)
	if !ok {
		t.Fatalf("expected a mesh, got %T", got[0].Primitive)
	}
	if !reflect.DeepEqual(m, prims[0].Primitive) {
		t.Errorf("mesh: got %+v, expected %+v", m, prims[0].Primitive)
	}
	if cb, ok := got[1].Primitive.(*paint.CallbackPrimitive); !ok || cb.Rect.P1 != [2]float32{5, 5} {
		t.Errorf("callback primitive not restored: %+v", got[1].Primitive)
	}
	if meshes, verts, idx := fr.NumMeshes(); meshes != 1 || verts != 4 || idx != 6 {
		t.Errorf("NumMeshes returned %d, %d, %d", meshes, verts, idx)
	}

	d := fr.TexturesDelta()
	if len(d.Set) != 2 || !reflect.DeepEqual(d.Free, delta.Free) {
		t.Fatalf("textures delta: %+v", d)
	}
	font, ok := d.Set[0].Delta.Image.(*paint.FontImage)
	if !ok || !reflect.DeepEqual(font.Pixels, []float32{0, 0.5}) || !d.Set[0].Delta.IsWhole() {
		t.Errorf("font image not restored: %+v", d.Set[0])
	}
	if d.Set[1].Delta.Pos == nil || *d.Set[1].Delta.Pos != [2]int{1, 2} {
		t.Errorf("partial update position lost: %+v", d.Set[1].Delta)
	}
	if !bytes.Equal(d.Set[1].Delta.Image.RGBA8(), delta.Set[1].Delta.Image.RGBA8()) {
		t.Errorf("color image pixels differ")
	}

	fr, err = rd.Next()
	if err != nil {
		t.Fatal(err)
	}
	if fr.Index != 1 || len(fr.Primitives) != 0 || len(fr.Set) != 0 {
		t.Errorf("frame 1: %+v", fr)
	}

	if _, err := rd.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after the last frame, got %v", err)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.glcap")
	rec, err := Create(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	prims, delta := testFrame()
	if err := rec.Record(1, [2]int{100, 100}, prims, delta); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	rd, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer rd.Close()
	if _, err := rd.Next(); err != nil {
		t.Error(err)
	}
	if _, err := rd.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestNotCapture(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := msgpack.NewEncoder(zw).Encode(Header{Magic: "something else", Version: Version}); err != nil {
		t.Fatal(err)
	}
	zw.Close()

	if _, err := NewReader(&buf); !errors.Is(err, ErrNotCapture) {
		t.Errorf("expected ErrNotCapture, got %v", err)
	}

	if _, err := NewReader(bytes.NewReader([]byte("plain text"))); !errors.Is(err, ErrNotCapture) {
		t.Errorf("expected ErrNotCapture for uncompressed input, got %v", err)
	}
}

func TestUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := msgpack.NewEncoder(zw).Encode(Header{Magic: Magic, Version: Version + 1}); err != nil {
		t.Fatal(err)
	}
	zw.Close()

	_, err = NewReader(&buf)
	if err == nil || errors.Is(err, ErrNotCapture) {
		t.Errorf("expected a version error, got %v", err)
	}
}
