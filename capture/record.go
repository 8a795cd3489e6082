// capture/record.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package capture records the exact stream of texture deltas and
// primitives that is handed to the painter, one frame after another, so
// that it can be replayed later without the application that produced it.
//
// A capture is a zstd-compressed sequence of msgpack values: a Header
// followed by any number of Frames.
package capture

import (
	"fmt"
	"time"

	"github.com/glpaint/glpaint/math"
	"github.com/glpaint/glpaint/paint"
)

const (
	Magic   = "glpaint-capture"
	Version = 1
)

type Header struct {
	Magic   string
	Version int
	Created time.Time
}

// Frame is everything that was passed to one
// Painter.PaintAndUpdateTextures call.
type Frame struct {
	Index          int
	PixelsPerPoint float32
	CanvasSize     [2]int
	Set            []TextureRecord
	Free           []paint.TextureID
	Primitives     []PrimitiveRecord
}

// TextureRecord holds one paint.TextureUpdate. Exactly one of RGBA and
// Coverage is set, depending on whether the image was a ColorImage or a
// FontImage.
type TextureRecord struct {
	ID       paint.TextureID
	Width    int
	Height   int
	RGBA     []byte
	Coverage []float32
	Pos      *[2]int
	Filter   paint.TextureFilter
}

// PrimitiveRecord holds either a mesh or the rectangle of a callback
// primitive.
type PrimitiveRecord struct {
	ClipRect math.Extent2D
	Callback bool
	Rect     math.Extent2D
	Texture  paint.TextureID
	Indices  []uint32
	Vertices []paint.Vertex
}

func newTextureRecord(u paint.TextureUpdate) TextureRecord {
	sz := u.Delta.Image.Size()
	rec := TextureRecord{
		ID:     u.ID,
		Width:  sz[0],
		Height: sz[1],
		Pos:    u.Delta.Pos,
		Filter: u.Delta.Filter,
	}
	switch img := u.Delta.Image.(type) {
	case *paint.FontImage:
		rec.Coverage = img.Pixels
	default:
		rec.RGBA = img.RGBA8()
	}
	return rec
}

func (t TextureRecord) Image() paint.ImageData {
	if t.Coverage != nil {
		return &paint.FontImage{Width: t.Width, Height: t.Height, Pixels: t.Coverage}
	}
	img := &paint.ColorImage{Width: t.Width, Height: t.Height, Pixels: make([]paint.Color32, len(t.RGBA)/4)}
	for i := range img.Pixels {
		copy(img.Pixels[i][:], t.RGBA[4*i:4*i+4])
	}
	return img
}

func (t TextureRecord) Update() paint.TextureUpdate {
	return paint.TextureUpdate{
		ID:    t.ID,
		Delta: paint.ImageDelta{Image: t.Image(), Pos: t.Pos, Filter: t.Filter},
	}
}

func newPrimitiveRecord(cp paint.ClippedPrimitive) PrimitiveRecord {
	rec := PrimitiveRecord{ClipRect: cp.ClipRect}
	switch p := cp.Primitive.(type) {
	case *paint.Mesh:
		rec.Texture = p.TextureID
		rec.Indices = p.Indices
		rec.Vertices = p.Vertices
	case *paint.CallbackPrimitive:
		rec.Callback = true
		rec.Rect = p.Rect
	default:
		panic(fmt.Sprintf("%T: unhandled primitive type", cp.Primitive))
	}
	return rec
}

// Primitive returns the recorded primitive. Callbacks come back with a
// function that does nothing; the painter rejects them just as it did
// when they were recorded.
func (p PrimitiveRecord) Primitive() paint.ClippedPrimitive {
	if p.Callback {
		return paint.ClippedPrimitive{
			ClipRect:  p.ClipRect,
			Primitive: &paint.CallbackPrimitive{Rect: p.Rect, Callback: func(paint.PaintCallbackInfo) {}},
		}
	}
	return paint.ClippedPrimitive{
		ClipRect:  p.ClipRect,
		Primitive: &paint.Mesh{Indices: p.Indices, Vertices: p.Vertices, TextureID: p.Texture},
	}
}

func (f *Frame) TexturesDelta() paint.TexturesDelta {
	var d paint.TexturesDelta
	for _, t := range f.Set {
		d.Set = append(d.Set, t.Update())
	}
	d.Free = f.Free
	return d
}

func (f *Frame) ClippedPrimitives() []paint.ClippedPrimitive {
	prims := make([]paint.ClippedPrimitive, len(f.Primitives))
	for i, p := range f.Primitives {
		prims[i] = p.Primitive()
	}
	return prims
}

// NumMeshes returns the number of mesh primitives in the frame along with
// their total vertex and index counts.
func (f *Frame) NumMeshes() (meshes, vertices, indices int) {
	for _, p := range f.Primitives {
		if !p.Callback {
			meshes++
			vertices += len(p.Vertices)
			indices += len(p.Indices)
		}
	}
	return
}
