// renderer/texture.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"

	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/paint"
	"github.com/glpaint/glpaint/util"
)

// gpuTexture is a texture's CPU-side description along with the GPU
// object that holds it, once it has been uploaded.
type gpuTexture struct {
	size   [2]int
	filter paint.TextureFilter
	// pixels holds premultiplied RGBA8 texels awaiting upload; it is nil
	// once they have been uploaded.
	pixels    []byte
	handle    uint32
	hasHandle bool
	dirty     bool
}

// TextureInfo describes a texture in a TextureStore.
type TextureInfo struct {
	Size      [2]int
	Filter    paint.TextureFilter
	Dirty     bool
	HasHandle bool
	Handle    uint32
}

// TextureStore maps TextureIDs to GPU textures. Pixel data that is set is
// held until UploadPending is called, so that a texture that is set
// multiple times before it is drawn is only transferred once.
type TextureStore struct {
	dev        Device
	lg         *log.Logger
	textures   map[paint.TextureID]*gpuTexture
	nextUserID uint64

	// Running counts, reported by TakeStats.
	stats RendererStats

	// OnUpload, if non-nil, is called after each full texture upload.
	OnUpload func(id paint.TextureID, info TextureInfo)
}

func NewTextureStore(dev Device, lg *log.Logger) *TextureStore {
	return &TextureStore{
		dev:      dev,
		lg:       lg,
		textures: make(map[paint.TextureID]*gpuTexture),
	}
}

func checkPixelBytes(size [2]int, pixels []byte) {
	if len(pixels) != 4*size[0]*size[1] {
		panic(fmt.Sprintf("Mismatch between texture size %dx%d and %d bytes of RGBA8 pixels",
			size[0], size[1], len(pixels)))
	}
}

// SetFull creates the texture with the given id or replaces its contents.
// A texture that is replaced keeps its id but gets a new GPU object at the
// next upload; the old one is released immediately.
func (ts *TextureStore) SetFull(id paint.TextureID, size [2]int, filter paint.TextureFilter, pixels []byte) {
	checkPixelBytes(size, pixels)

	if old, ok := ts.textures[id]; ok {
		ts.release(old)
		ts.lg.Debugf("%s: replaced with %dx%d %s texture", id, size[0], size[1], filter)
	} else {
		ts.lg.Debugf("%s: created %dx%d %s texture", id, size[0], size[1], filter)
	}

	ts.textures[id] = &gpuTexture{
		size:   size,
		filter: filter,
		pixels: pixels,
		dirty:  true,
	}
}

// SetPartial updates the width x height region of the texture whose
// upper-left corner is at (x, y). If the texture has already been
// uploaded, the region is transferred to the GPU immediately; otherwise
// the pending pixels are patched. It returns false and logs a warning if
// there is no such texture. The region must lie inside the texture.
func (ts *TextureStore) SetPartial(id paint.TextureID, x, y, width, height int, pixels []byte) bool {
	tex, ok := ts.textures[id]
	if !ok {
		ts.lg.Warnf("%s: ignoring partial update of unknown texture", id)
		return false
	}

	if x < 0 || y < 0 || width < 0 || height < 0 || x+width > tex.size[0] || y+height > tex.size[1] {
		panic(fmt.Sprintf("%s: partial update %dx%d at (%d,%d) is outside of the %dx%d texture",
			id, width, height, x, y, tex.size[0], tex.size[1]))
	}
	checkPixelBytes([2]int{width, height}, pixels)

	if tex.hasHandle && !tex.dirty {
		ts.dev.BindTexture(tex.handle)
		ts.dev.TexSubImage2D(x, y, width, height, pixels)
		ts.stats.PartialUploads++
		ts.stats.TextureBytes += len(pixels)
		return true
	}

	// Not yet on the GPU (or about to be replaced there): apply the
	// update to the pixels that will be uploaded.
	stride := 4 * tex.size[0]
	for row := 0; row < height; row++ {
		dst := (y+row)*stride + 4*x
		copy(tex.pixels[dst:dst+4*width], pixels[4*width*row:4*width*(row+1)])
	}
	tex.dirty = true
	return true
}

// ReplacePixels replaces all of the texels of an existing texture,
// keeping its size and filter. It panics if the texture doesn't exist.
func (ts *TextureStore) ReplacePixels(id paint.TextureID, pixels []byte) {
	tex, ok := ts.textures[id]
	if !ok {
		panic(fmt.Sprintf("%s: pixel replacement for unknown texture", id))
	}
	checkPixelBytes(tex.size, pixels)
	tex.pixels = pixels
	tex.dirty = true
}

// UploadPending transfers the pixels of all textures that have changed
// since they were last uploaded, allocating GPU objects for textures that
// don't have one yet. It returns the number of textures uploaded.
func (ts *TextureStore) UploadPending() int {
	n := 0
	for _, id := range util.SortedMapKeysFunc(ts.textures, paint.CompareTextureIDs) {
		tex := ts.textures[id]
		if tex.hasHandle && !tex.dirty {
			continue
		}

		if !tex.hasHandle {
			tex.handle = ts.dev.GenTexture()
			tex.hasHandle = true
			ts.dev.BindTexture(tex.handle)
			ts.dev.TextureParameters(tex.filter)
		} else {
			ts.dev.BindTexture(tex.handle)
		}
		ts.dev.TexImage2D(tex.size[0], tex.size[1], tex.pixels)

		ts.stats.TextureUploads++
		ts.stats.TextureBytes += len(tex.pixels)
		tex.pixels = nil
		tex.dirty = false
		n++

		if ts.OnUpload != nil {
			ts.OnUpload(id, tex.info())
		}
	}

	if n > 0 {
		ts.lg.Infof("Uploaded %d textures -> %.2f MiB of textures total", n, ts.MiB())
	}
	return n
}

// MiB returns the total size of all of the textures in the store.
func (ts *TextureStore) MiB() float32 {
	reduce := func(id paint.TextureID, tex *gpuTexture, total int) int {
		return total + 4*tex.size[0]*tex.size[1]
	}
	total := util.ReduceMap[paint.TextureID, *gpuTexture, int](ts.textures, reduce, 0)
	return float32(total) / (1024 * 1024)
}

// Free removes the texture and releases its GPU object. Freeing an
// unknown id does nothing.
func (ts *TextureStore) Free(id paint.TextureID) {
	tex, ok := ts.textures[id]
	if !ok {
		return
	}
	ts.release(tex)
	delete(ts.textures, id)
	ts.stats.TexturesFreed++
	ts.lg.Debugf("%s: freed", id)
}

func (ts *TextureStore) release(tex *gpuTexture) {
	if tex.hasHandle {
		ts.dev.DeleteTexture(tex.handle)
		tex.hasHandle = false
	}
}

func (tex *gpuTexture) info() TextureInfo {
	return TextureInfo{
		Size:      tex.size,
		Filter:    tex.filter,
		Dirty:     tex.dirty,
		HasHandle: tex.hasHandle,
		Handle:    tex.handle,
	}
}

// Lookup returns information about the given texture, if it exists.
func (ts *TextureStore) Lookup(id paint.TextureID) (TextureInfo, bool) {
	if tex, ok := ts.textures[id]; ok {
		return tex.info(), true
	}
	return TextureInfo{}, false
}

func (ts *TextureStore) Len() int {
	return len(ts.textures)
}

// AllocUserID returns a new id in the user texture namespace.
func (ts *TextureStore) AllocUserID() paint.TextureID {
	id := paint.UserTexture(ts.nextUserID)
	ts.nextUserID++
	return id
}

// RegisterNative takes ownership of an existing GPU texture object and
// returns a user texture id that refers to it. Its size is unknown, so it
// can't be partially updated.
func (ts *TextureStore) RegisterNative(handle uint32, filter paint.TextureFilter) paint.TextureID {
	id := ts.AllocUserID()
	ts.textures[id] = &gpuTexture{
		filter:    filter,
		handle:    handle,
		hasHandle: true,
	}
	ts.lg.Debugf("%s: registered native texture %d", id, handle)
	return id
}

// handle returns the GPU object for a texture that is about to be drawn.
func (ts *TextureStore) handle(id paint.TextureID) uint32 {
	tex, ok := ts.textures[id]
	if !ok {
		panic(fmt.Sprintf("%s: mesh references a texture that has not been set", id))
	}
	if !tex.hasHandle {
		panic(fmt.Sprintf("%s: texture drawn before it was uploaded", id))
	}
	return tex.handle
}

// TakeStats returns the texture statistics accumulated since the last
// call and resets them.
func (ts *TextureStore) TakeStats() RendererStats {
	s := ts.stats
	ts.stats = RendererStats{}
	return s
}

// Dispose releases all of the store's GPU objects.
func (ts *TextureStore) Dispose() {
	for _, tex := range ts.textures {
		ts.release(tex)
	}
	clear(ts.textures)
}
