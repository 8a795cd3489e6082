// paint/image.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package paint

import (
	"cmp"
	"fmt"

	"github.com/glpaint/glpaint/math"
)

///////////////////////////////////////////////////////////////////////////
// TextureID

// TextureNamespace distinguishes textures created by the GUI toolkit
// (font atlases and the like) from textures that the application creates
// for displaying its own images.
type TextureNamespace uint8

const (
	TextureManaged TextureNamespace = iota
	TextureUser
)

// TextureID is an opaque identifier for a texture. Both namespaces are
// looked up through the same mapping by the renderer.
type TextureID struct {
	Namespace TextureNamespace
	ID        uint64
}

func ManagedTexture(id uint64) TextureID {
	return TextureID{Namespace: TextureManaged, ID: id}
}

func UserTexture(id uint64) TextureID {
	return TextureID{Namespace: TextureUser, ID: id}
}

func (t TextureID) String() string {
	if t.Namespace == TextureUser {
		return fmt.Sprintf("User(%d)", t.ID)
	}
	return fmt.Sprintf("Managed(%d)", t.ID)
}

// CompareTextureIDs orders managed textures before user textures and then
// by numeric id.
func CompareTextureIDs(a, b TextureID) int {
	if c := cmp.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// TextureFilter specifies how a texture is sampled when magnified or
// minified.
type TextureFilter int

const (
	TextureFilterLinear TextureFilter = iota
	TextureFilterNearest
)

func (f TextureFilter) String() string {
	switch f {
	case TextureFilterLinear:
		return "Linear"
	case TextureFilterNearest:
		return "Nearest"
	default:
		return fmt.Sprintf("TextureFilter(%d)", int(f))
	}
}

///////////////////////////////////////////////////////////////////////////
// Images

// ImageData is either a *ColorImage or a *FontImage.
type ImageData interface {
	// Size returns the image's width and height in texels.
	Size() [2]int
	// RGBA8 returns tightly-packed premultiplied RGBA8 texel data.
	RGBA8() []byte

	isImageData()
}

// ColorImage is an image of premultiplied RGBA texels, stored row by row
// starting at the top.
type ColorImage struct {
	Width, Height int
	Pixels        []Color32
}

// NewColorImage returns a width x height image filled with the given
// color.
func NewColorImage(width, height int, c Color32) *ColorImage {
	img := &ColorImage{Width: width, Height: height, Pixels: make([]Color32, width*height)}
	for i := range img.Pixels {
		img.Pixels[i] = c
	}
	return img
}

func (c *ColorImage) Size() [2]int { return [2]int{c.Width, c.Height} }

func (c *ColorImage) RGBA8() []byte {
	checkTexelCount(c.Width, c.Height, len(c.Pixels))
	return Color32Bytes(c.Pixels)
}

func (*ColorImage) isImageData() {}

// FontImage is a single-channel coverage image in [0,1], as produced for
// font atlases.
type FontImage struct {
	Width, Height int
	Pixels        []float32
}

func (f *FontImage) Size() [2]int { return [2]int{f.Width, f.Height} }

// FontGamma is the gamma used when font coverage is expanded to RGBA.
const FontGamma = 1.0

func (f *FontImage) RGBA8() []byte {
	checkTexelCount(f.Width, f.Height, len(f.Pixels))
	return Color32Bytes(f.SRGBAPixels(FontGamma))
}

// SRGBAPixels expands coverage to premultiplied white texels: each
// channel is round(255 * coverage^gamma).
func (f *FontImage) SRGBAPixels(gamma float32) []Color32 {
	px := make([]Color32, len(f.Pixels))
	for i, coverage := range f.Pixels {
		alpha := math.Clamp(coverage, 0, 1)
		if gamma != 1 {
			alpha = math.Pow(alpha, gamma)
		}
		a := uint8(math.Round(alpha * 255))
		px[i] = Color32{a, a, a, a}
	}
	return px
}

func (*FontImage) isImageData() {}

// Color32Bytes flattens colors into a tightly-packed RGBA8 byte slice.
func Color32Bytes(px []Color32) []byte {
	b := make([]byte, 0, 4*len(px))
	for _, c := range px {
		b = append(b, c[0], c[1], c[2], c[3])
	}
	return b
}

func checkTexelCount(w, h, n int) {
	if w*h != n {
		panic(fmt.Sprintf("Mismatch between texture size %dx%d and texel count %d", w, h, n))
	}
}

///////////////////////////////////////////////////////////////////////////
// Deltas

// ImageDelta is either a full replacement of a texture (Pos == nil) or an
// update of the sub-region of an existing texture whose upper-left corner
// is at *Pos.
type ImageDelta struct {
	Image  ImageData
	Pos    *[2]int
	Filter TextureFilter
}

// FullImage returns a delta that creates or replaces a texture.
func FullImage(img ImageData, filter TextureFilter) ImageDelta {
	return ImageDelta{Image: img, Filter: filter}
}

// PartialImage returns a delta that updates the region of an existing
// texture starting at pos.
func PartialImage(pos [2]int, img ImageData) ImageDelta {
	return ImageDelta{Image: img, Pos: &pos}
}

func (d ImageDelta) IsWhole() bool {
	return d.Pos == nil
}

// TextureUpdate is a single entry of TexturesDelta.Set.
type TextureUpdate struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta holds the texture creations, updates, and frees that
// accompany one frame's primitives. Updates are applied in order, before
// the frame is painted; frees are applied after it has been painted.
type TexturesDelta struct {
	Set  []TextureUpdate
	Free []TextureID
}

func (d *TexturesDelta) SetTexture(id TextureID, delta ImageDelta) {
	d.Set = append(d.Set, TextureUpdate{ID: id, Delta: delta})
}

func (d *TexturesDelta) FreeTexture(id TextureID) {
	d.Free = append(d.Free, id)
}
