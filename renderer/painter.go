// renderer/painter.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"

	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/math"
	"github.com/glpaint/glpaint/paint"
)

// Painter draws a GUI toolkit's per-frame output: it applies texture
// deltas, then draws each clipped primitive in order, then frees the
// textures the frame asked to free.
type Painter struct {
	dev      Device
	lg       *log.Logger
	textures *TextureStore

	program uint32
	loc     programLocations

	vao                   uint32
	indexBuffer, colorBuf uint32
	posBuffer, tcBuffer   uint32

	canvasWidth, canvasHeight int

	// Scratch buffers, reused across draws.
	indices   []uint16
	positions []float32
	tcs       []float32
	colors    []byte

	stats RendererStats
}

// NewPainter builds the painter's shader program and allocates its
// buffers. canvasWidth and canvasHeight give the size of the framebuffer
// in pixels. An error is returned if the shaders do not compile or link;
// nothing is left allocated on the device in that case.
func NewPainter(dev Device, canvasWidth, canvasHeight int, lg *log.Logger) (*Painter, error) {
	lg.Info("Starting Painter initialization")

	program, err := NewShaderProgram(dev, painterVertexShader, painterFragmentShader)
	if err != nil {
		return nil, err
	}
	loc, err := lookupLocations(dev, program)
	if err != nil {
		dev.DeleteProgram(program)
		return nil, err
	}

	p := &Painter{
		dev:          dev,
		lg:           lg,
		textures:     NewTextureStore(dev, lg),
		program:      program,
		loc:          loc,
		vao:          dev.GenVertexArray(),
		indexBuffer:  dev.GenBuffer(),
		posBuffer:    dev.GenBuffer(),
		tcBuffer:     dev.GenBuffer(),
		colorBuf:     dev.GenBuffer(),
		canvasWidth:  canvasWidth,
		canvasHeight: canvasHeight,
	}

	lg.Infof("Finished Painter initialization: canvas %dx%d", canvasWidth, canvasHeight)
	return p, nil
}

// Textures returns the painter's texture store.
func (p *Painter) Textures() *TextureStore {
	return p.textures
}

// SetCanvasSize updates the size of the framebuffer, in pixels.
func (p *Painter) SetCanvasSize(width, height int) {
	p.canvasWidth, p.canvasHeight = width, height
}

func (p *Painter) CanvasSize() [2]int {
	return [2]int{p.canvasWidth, p.canvasHeight}
}

// PaintAndUpdateTextures paints one frame: the texture updates in delta
// are applied, then the primitives are drawn, then the textures in
// delta.Free are freed.
func (p *Painter) PaintAndUpdateTextures(pixelsPerPoint float32, prims []paint.ClippedPrimitive, delta paint.TexturesDelta) {
	for _, u := range delta.Set {
		p.SetTexture(u.ID, u.Delta)
	}

	p.PaintPrimitives(pixelsPerPoint, prims)

	for _, id := range delta.Free {
		p.FreeTexture(id)
	}
}

// SetTexture applies a single texture update.
func (p *Painter) SetTexture(id paint.TextureID, delta paint.ImageDelta) {
	size := delta.Image.Size()
	pixels := delta.Image.RGBA8()

	if delta.Pos != nil {
		p.textures.SetPartial(id, delta.Pos[0], delta.Pos[1], size[0], size[1], pixels)
	} else {
		p.textures.SetFull(id, size, delta.Filter, pixels)
	}
}

func (p *Painter) FreeTexture(id paint.TextureID) {
	p.textures.Free(id)
}

// NewUserTexture creates a texture for the application's own use and
// returns its id. size[0]*size[1] must equal len(pixels).
func (p *Painter) NewUserTexture(size [2]int, pixels []paint.Color32, filter paint.TextureFilter) paint.TextureID {
	if size[0]*size[1] != len(pixels) {
		panic(fmt.Sprintf("Mismatch between user texture size %dx%d and %d texels", size[0], size[1], len(pixels)))
	}
	id := p.textures.AllocUserID()
	p.textures.SetFull(id, size, filter, paint.Color32Bytes(pixels))
	return id
}

// UpdateUserTextureData replaces all of the texels of an existing
// texture; they are uploaded before the next frame is drawn.
func (p *Painter) UpdateUserTextureData(id paint.TextureID, pixels []paint.Color32) {
	p.textures.ReplacePixels(id, paint.Color32Bytes(pixels))
}

// PaintPrimitives uploads pending textures and draws the given
// primitives, in order, to the current framebuffer.
func (p *Painter) PaintPrimitives(pixelsPerPoint float32, prims []paint.ClippedPrimitive) {
	p.textures.UploadPending()

	dev := p.dev
	dev.Enable(CapFramebufferSRGB)
	dev.Enable(CapBlend)
	dev.BlendPremultipliedAlpha()
	dev.Enable(CapScissorTest)
	dev.Viewport(0, 0, int32(p.canvasWidth), int32(p.canvasHeight))

	dev.UseProgram(p.program)
	dev.ActiveTexture(0)
	dev.Uniform2f(p.loc.screenSize, float32(p.canvasWidth)/pixelsPerPoint, float32(p.canvasHeight)/pixelsPerPoint)
	dev.Uniform1i(p.loc.sampler, 0)
	dev.BindVertexArray(p.vao)

	for _, cp := range prims {
		switch prim := cp.Primitive.(type) {
		case *paint.Mesh:
			p.paintMesh(prim, cp.ClipRect, pixelsPerPoint)
		case *paint.CallbackPrimitive:
			panic("Custom rendering callbacks are not supported by the OpenGL painter")
		default:
			panic(fmt.Sprintf("%T: unhandled primitive type", cp.Primitive))
		}
	}

	dev.Disable(CapScissorTest)
	dev.Disable(CapBlend)
	dev.Disable(CapFramebufferSRGB)

	p.stats.Frames++
}

// Scissor is a scissor rectangle in framebuffer pixels, with the origin
// at the lower left.
type Scissor struct {
	X, Y, Width, Height int
}

// ClipRectToScissor converts a clip rectangle in points (origin at the
// upper left) to a scissor rectangle for a canvas of the given size.
func ClipRectToScissor(clip math.Extent2D, pixelsPerPoint float32, canvasWidth, canvasHeight int) Scissor {
	w, h := float32(canvasWidth), float32(canvasHeight)

	minX := math.Clamp(pixelsPerPoint*clip.P0[0], 0, w)
	minY := math.Clamp(pixelsPerPoint*clip.P0[1], 0, h)
	maxX := math.Clamp(pixelsPerPoint*clip.P1[0], minX, w)
	maxY := math.Clamp(pixelsPerPoint*clip.P1[1], minY, h)

	x0, y0 := int(math.Round(minX)), int(math.Round(minY))
	x1, y1 := int(math.Round(maxX)), int(math.Round(maxY))

	return Scissor{
		X:      x0,
		Y:      canvasHeight - y1,
		Width:  x1 - x0,
		Height: y1 - y0,
	}
}

func (p *Painter) paintMesh(mesh *paint.Mesh, clip math.Extent2D, pixelsPerPoint float32) {
	if err := mesh.Validate(); err != nil {
		panic(fmt.Sprintf("%s: malformed mesh: %v", mesh.TextureID, err))
	}
	if len(mesh.Indices) == 0 {
		p.stats.SkippedMeshes++
		return
	}

	dev := p.dev
	dev.BindTexture(p.textures.handle(mesh.TextureID))

	sc := ClipRectToScissor(clip, pixelsPerPoint, p.canvasWidth, p.canvasHeight)
	if sc.Width == 0 || sc.Height == 0 {
		p.stats.ClippedAway++
	}
	dev.Scissor(int32(sc.X), int32(sc.Y), int32(sc.Width), int32(sc.Height))

	p.indices = p.indices[:0]
	for _, idx := range mesh.Indices {
		p.indices = append(p.indices, uint16(idx))
	}
	p.positions, p.tcs, p.colors = p.positions[:0], p.tcs[:0], p.colors[:0]
	for _, v := range mesh.Vertices {
		p.positions = append(p.positions, v.Pos[0], v.Pos[1])
		p.tcs = append(p.tcs, v.UV[0], v.UV[1])
		p.colors = append(p.colors, v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	}

	dev.StreamIndices(p.indexBuffer, p.indices)

	dev.StreamFloats(p.posBuffer, p.positions)
	dev.VertexAttribPointer(p.loc.pos, 2, AttribFloat, false)
	dev.EnableVertexAttribArray(p.loc.pos)

	dev.StreamFloats(p.tcBuffer, p.tcs)
	dev.VertexAttribPointer(p.loc.tc, 2, AttribFloat, false)
	dev.EnableVertexAttribArray(p.loc.tc)

	dev.StreamBytes(p.colorBuf, p.colors)
	dev.VertexAttribPointer(p.loc.srgba, 4, AttribUnsignedByte, false)
	dev.EnableVertexAttribArray(p.loc.srgba)

	dev.DrawTriangles16(len(p.indices))

	dev.DisableVertexAttribArray(p.loc.pos)
	dev.DisableVertexAttribArray(p.loc.tc)
	dev.DisableVertexAttribArray(p.loc.srgba)

	p.stats.DrawCalls++
	p.stats.Vertices += len(mesh.Vertices)
	p.stats.Triangles += len(mesh.Indices) / 3
	p.stats.BufferBytes += 2*len(p.indices) + 4*len(p.positions) + 4*len(p.tcs) + len(p.colors)
}

// TakeStats returns the statistics accumulated since the last call and
// resets them.
func (p *Painter) TakeStats() RendererStats {
	s := p.stats
	s.Merge(p.textures.TakeStats())
	p.stats = RendererStats{}
	return s
}

// Dispose releases all of the painter's GPU objects, including its
// textures. The painter must not be used afterward.
func (p *Painter) Dispose() {
	p.textures.Dispose()
	for _, buf := range []uint32{p.indexBuffer, p.posBuffer, p.tcBuffer, p.colorBuf} {
		p.dev.DeleteBuffer(buf)
	}
	p.dev.DeleteVertexArray(p.vao)
	p.dev.DeleteProgram(p.program)
	p.lg.Info("Disposed Painter")
}
