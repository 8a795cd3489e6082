// paint/mesh.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package paint

import (
	"fmt"
	gomath "math"

	"github.com/glpaint/glpaint/math"
)

// MaxMeshVertices is the largest number of vertices a single mesh may
// have; indices are narrowed to 16 bits when they are sent to the GPU.
const MaxMeshVertices = gomath.MaxUint16

// Vertex positions are in points, with the origin at the upper left.
type Vertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color Color32
}

// Mesh is an indexed triangle list that samples a single texture.
type Mesh struct {
	Indices   []uint32
	Vertices  []Vertex
	TextureID TextureID
}

// Validate checks that the mesh is a well-formed triangle list.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%d indices is not a multiple of 3", len(m.Indices))
	}
	if len(m.Vertices) > MaxMeshVertices {
		return fmt.Errorf("%d vertices exceeds the limit of %d", len(m.Vertices), MaxMeshVertices)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d at offset %d is out of range for %d vertices", idx, i, len(m.Vertices))
		}
	}
	return nil
}

// AddTriangle appends a triangle with the given indices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// AddRectWithUV appends a rectangle covering rect in points, mapping uv
// across it.
func (m *Mesh) AddRectWithUV(rect, uv math.Extent2D, color Color32) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		Vertex{Pos: rect.P0, UV: uv.P0, Color: color},
		Vertex{Pos: [2]float32{rect.P1[0], rect.P0[1]}, UV: [2]float32{uv.P1[0], uv.P0[1]}, Color: color},
		Vertex{Pos: [2]float32{rect.P0[0], rect.P1[1]}, UV: [2]float32{uv.P0[0], uv.P1[1]}, Color: color},
		Vertex{Pos: rect.P1, UV: uv.P1, Color: color})
	m.AddTriangle(base, base+1, base+2)
	m.AddTriangle(base+2, base+1, base+3)
}

// Primitive is either a *Mesh or a *CallbackPrimitive.
type Primitive interface {
	isPrimitive()
}

func (*Mesh) isPrimitive() {}

// PaintCallbackInfo is the information that would be made available to
// a CallbackPrimitive's function.
type PaintCallbackInfo struct {
	Viewport       math.Extent2D
	ClipRect       math.Extent2D
	PixelsPerPoint float32
	ScreenSizePx   [2]int
}

// CallbackPrimitive requests that custom drawing code run at its
// position in the paint order. The OpenGL painter does not support it.
type CallbackPrimitive struct {
	Rect     math.Extent2D
	Callback func(PaintCallbackInfo)
}

func (*CallbackPrimitive) isPrimitive() {}

// ClippedPrimitive is a primitive along with the rectangle, in points,
// that its fragments are restricted to.
type ClippedPrimitive struct {
	ClipRect  math.Extent2D
	Primitive Primitive
}
