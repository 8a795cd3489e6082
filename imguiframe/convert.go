// imguiframe/convert.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package imguiframe

import (
	"unsafe"

	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/math"
	"github.com/glpaint/glpaint/paint"

	"github.com/AllenDang/cimgui-go/imgui"
)

// imgui reserves texture id 0 as invalid, so ids are offset by one and
// the namespace goes in the low bit.
func EncodeTextureID(id paint.TextureID) imgui.TextureID {
	return imgui.TextureID((id.ID+1)<<1 | uint64(id.Namespace&1))
}

func DecodeTextureID(tid imgui.TextureID) paint.TextureID {
	v := uint64(tid)
	return paint.TextureID{Namespace: paint.TextureNamespace(v & 1), ID: (v >> 1) - 1}
}

// VertexLayout describes imgui's vertex struct: its size and the byte
// offsets of its position, texture coordinate, and color fields.
type VertexLayout struct {
	Size, Pos, UV, Color int
}

func currentVertexLayout() VertexLayout {
	size, pos, uv, col := imgui.VertexBufferLayout()
	return VertexLayout{Size: size, Pos: pos, UV: uv, Color: col}
}

// DecodeVertices converts a raw imgui vertex buffer to vertices, moving
// positions so that origin is at the top-left of the display and
// premultiplying the colors, which imgui gives with straight alpha.
func DecodeVertices(raw []byte, layout VertexLayout, origin [2]float32) []paint.Vertex {
	n := len(raw) / layout.Size
	verts := make([]paint.Vertex, n)
	for i := range verts {
		v := raw[i*layout.Size:]
		pos := *(*[2]float32)(unsafe.Pointer(&v[layout.Pos]))
		uv := *(*[2]float32)(unsafe.Pointer(&v[layout.UV]))
		c := v[layout.Color : layout.Color+4]
		verts[i] = paint.Vertex{
			Pos:   math.Sub2f(pos, origin),
			UV:    uv,
			Color: paint.RGBAUnmultiplied(c[0], c[1], c[2], c[3]),
		}
	}
	return verts
}

// DrawCommand is the part of an imgui draw command that is needed to
// produce a primitive.
type DrawCommand struct {
	ClipRect    [4]float32 // min x, min y, max x, max y
	TexID       imgui.TextureID
	IdxOffset   uint32
	VtxOffset   uint32
	ElemCount   uint32
	HasCallback bool
}

// ConvertCommands returns a primitive for each of a draw list's commands.
// Each primitive's vertices are the sub-slice of the draw list's vertices
// that its indices reference, with the indices rebased to match. Commands with
// user callbacks are logged and skipped, as are commands that are
// entirely clipped away.
func ConvertCommands(verts []paint.Vertex, indices []uint16, cmds []DrawCommand, origin [2]float32,
	lg *log.Logger) []paint.ClippedPrimitive {
	var prims []paint.ClippedPrimitive
	for _, cmd := range cmds {
		if cmd.HasCallback {
			lg.Error("Unexpected user callback in imgui draw list")
			continue
		}

		clip := math.Extent2D{
			P0: math.Sub2f([2]float32{cmd.ClipRect[0], cmd.ClipRect[1]}, origin),
			P1: math.Sub2f([2]float32{cmd.ClipRect[2], cmd.ClipRect[3]}, origin),
		}
		if clip.Width() <= 0 || clip.Height() <= 0 || cmd.ElemCount == 0 {
			continue
		}

		// Each mesh carries only the vertices its indices reference.
		cmdIndices := indices[cmd.IdxOffset : cmd.IdxOffset+cmd.ElemCount]
		lo := uint32(cmdIndices[0]) + cmd.VtxOffset
		hi := lo
		for _, idx := range cmdIndices {
			v := uint32(idx) + cmd.VtxOffset
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		if int(hi) >= len(verts) {
			lg.Errorf("imgui index %d out of range for %d vertices", hi, len(verts))
			continue
		}

		mesh := &paint.Mesh{
			Indices:   make([]uint32, len(cmdIndices)),
			Vertices:  verts[lo : hi+1],
			TextureID: DecodeTextureID(cmd.TexID),
		}
		for i, idx := range cmdIndices {
			mesh.Indices[i] = uint32(idx) + cmd.VtxOffset - lo
		}
		prims = append(prims, paint.ClippedPrimitive{ClipRect: clip, Primitive: mesh})
	}
	return prims
}

// ConvertDrawData converts the draw data from the most recent
// imgui.Render call into primitives, in paint order.
func ConvertDrawData(drawData *imgui.DrawData, lg *log.Logger) []paint.ClippedPrimitive {
	if drawData == nil {
		return nil
	}

	dp := drawData.DisplayPos()
	origin := [2]float32{dp.X, dp.Y}
	layout := currentVertexLayout()
	if imgui.IndexBufferLayout() != 2 {
		panic("imgui must be built with 16-bit indices")
	}

	var prims []paint.ClippedPrimitive
	for _, cl := range drawData.CommandLists() {
		vbPtr, vbBytes := cl.GetVertexBuffer()
		ibPtr, ibBytes := cl.GetIndexBuffer()
		if vbBytes == 0 || ibBytes == 0 {
			continue
		}
		verts := DecodeVertices(unsafe.Slice((*byte)(vbPtr), vbBytes), layout, origin)
		indices := unsafe.Slice((*uint16)(ibPtr), ibBytes/2)

		// VtxOffset is always zero since the backend doesn't set
		// BackendFlagsRendererHasVtxOffset.
		var cmds []DrawCommand
		for _, c := range cl.Commands() {
			cr := c.ClipRect()
			cmds = append(cmds, DrawCommand{
				ClipRect:    [4]float32{cr.X, cr.Y, cr.Z, cr.W},
				TexID:       c.TexID(),
				IdxOffset:   uint32(c.IdxOffset()),
				ElemCount:   uint32(c.ElemCount()),
				HasCallback: c.HasUserCallback(),
			})
		}
		prims = append(prims, ConvertCommands(verts, indices, cmds, origin, lg)...)
	}
	return prims
}

// FontAtlasImage returns the image for imgui's font atlas. imgui
// normally gives coverage only (one byte per texel), which becomes a
// FontImage; an RGBA atlas has straight alpha and is premultiplied.
func FontAtlasImage(width, height, bytesPerPixel int, pixels []byte) paint.ImageData {
	if bytesPerPixel == 1 {
		img := &paint.FontImage{Width: width, Height: height, Pixels: make([]float32, width*height)}
		for i, a := range pixels[:width*height] {
			img.Pixels[i] = float32(a) / 255
		}
		return img
	}

	img := &paint.ColorImage{Width: width, Height: height, Pixels: make([]paint.Color32, width*height)}
	for i := range img.Pixels {
		p := pixels[4*i : 4*i+4]
		img.Pixels[i] = paint.RGBAUnmultiplied(p[0], p[1], p[2], p[3])
	}
	return img
}
