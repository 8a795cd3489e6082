// renderer/texture_test.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"bytes"
	"testing"

	"github.com/glpaint/glpaint/paint"
)

func solidPixels(w, h int, c paint.Color32) []byte {
	return paint.Color32Bytes(paint.NewColorImage(w, h, c).Pixels)
}

func expectPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", what)
		}
	}()
	f()
}

func TestTextureUploadClearsDirty(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 5}, {64, 16}} {
		dev := newFakeDevice(1, 1)
		ts := NewTextureStore(dev, nil)
		id := paint.ManagedTexture(0)

		ts.SetFull(id, size, paint.TextureFilterLinear, solidPixels(size[0], size[1], paint.Red))
		if info, _ := ts.Lookup(id); !info.Dirty || info.HasHandle {
			t.Errorf("%v: expected dirty texture without a handle before upload, got %+v", size, info)
		}

		if n := ts.UploadPending(); n != 1 {
			t.Errorf("%v: uploaded %d textures, expected 1", size, n)
		}
		info, ok := ts.Lookup(id)
		if !ok || info.Dirty || !info.HasHandle {
			t.Errorf("%v: expected clean texture with a handle after upload, got %+v", size, info)
		}
		if ft := dev.textures[info.Handle]; ft == nil || ft.width != size[0] || ft.height != size[1] {
			t.Errorf("%v: device texture %+v doesn't match", size, ft)
		}
	}
}

func TestTextureUploadIdempotent(t *testing.T) {
	dev := newFakeDevice(1, 1)
	ts := NewTextureStore(dev, nil)
	uploads := 0
	ts.OnUpload = func(paint.TextureID, TextureInfo) { uploads++ }

	id := paint.ManagedTexture(3)
	ts.SetFull(id, [2]int{2, 2}, paint.TextureFilterNearest, solidPixels(2, 2, paint.Green))
	// Setting twice before the first use only uploads once.
	ts.SetFull(id, [2]int{2, 2}, paint.TextureFilterNearest, solidPixels(2, 2, paint.Blue))
	ts.UploadPending()
	first, _ := ts.Lookup(id)

	if n := ts.UploadPending(); n != 0 {
		t.Errorf("second upload transferred %d textures", n)
	}
	second, _ := ts.Lookup(id)
	if uploads != 1 || dev.texImageCalls != 1 {
		t.Errorf("expected a single upload, got %d hook calls and %d TexImage2D calls", uploads, dev.texImageCalls)
	}
	if first != second {
		t.Errorf("texture changed by an idle upload: %+v -> %+v", first, second)
	}
	if !bytes.Equal(dev.textures[second.Handle].pixels, solidPixels(2, 2, paint.Blue)) {
		t.Errorf("expected the most recently set pixels on the GPU")
	}
}

func TestTextureRoundTrip(t *testing.T) {
	ts := NewTextureStore(newFakeDevice(1, 1), nil)
	for i, filter := range []paint.TextureFilter{paint.TextureFilterLinear, paint.TextureFilterNearest} {
		id := paint.UserTexture(uint64(i))
		size := [2]int{7 + i, 3}
		ts.SetFull(id, size, filter, solidPixels(size[0], size[1], paint.White))
		ts.UploadPending()

		info, ok := ts.Lookup(id)
		if !ok {
			t.Fatalf("%s: not found", id)
		}
		if info.Size != size || info.Filter != filter {
			t.Errorf("%s: got size %v filter %s, expected %v %s", id, info.Size, info.Filter, size, filter)
		}
	}
}

func TestTextureFilterReachesDevice(t *testing.T) {
	dev := newFakeDevice(1, 1)
	ts := NewTextureStore(dev, nil)
	ts.SetFull(paint.ManagedTexture(0), [2]int{1, 1}, paint.TextureFilterNearest, solidPixels(1, 1, paint.White))
	ts.UploadPending()
	info, _ := ts.Lookup(paint.ManagedTexture(0))
	if ft := dev.textures[info.Handle]; !ft.hasFilter || ft.filter != paint.TextureFilterNearest {
		t.Errorf("expected nearest filtering to be set on the device texture, got %+v", ft)
	}
}

func TestTextureFree(t *testing.T) {
	dev := newFakeDevice(1, 1)
	ts := NewTextureStore(dev, nil)
	id := paint.ManagedTexture(1)
	ts.SetFull(id, [2]int{1, 1}, paint.TextureFilterLinear, solidPixels(1, 1, paint.White))
	ts.UploadPending()
	info, _ := ts.Lookup(id)

	ts.Free(id)
	if _, ok := ts.Lookup(id); ok {
		t.Errorf("freed texture still present")
	}
	if len(dev.deleted) != 1 || dev.deleted[0] != info.Handle {
		t.Errorf("expected handle %d to be deleted, got %v", info.Handle, dev.deleted)
	}

	// Double free and freeing something that never existed are no-ops.
	ts.Free(id)
	ts.Free(paint.UserTexture(1234))
	if len(dev.deleted) != 1 {
		t.Errorf("extra deletions: %v", dev.deleted)
	}

	// Freeing a texture that was never uploaded has nothing to delete.
	ts.SetFull(id, [2]int{1, 1}, paint.TextureFilterLinear, solidPixels(1, 1, paint.White))
	ts.Free(id)
	if len(dev.deleted) != 1 || ts.Len() != 0 {
		t.Errorf("unexpected state after freeing pending texture: deleted %v, %d textures", dev.deleted, ts.Len())
	}
}

func TestTextureReplaceReleasesHandle(t *testing.T) {
	dev := newFakeDevice(1, 1)
	ts := NewTextureStore(dev, nil)
	id := paint.ManagedTexture(0)
	ts.SetFull(id, [2]int{1, 1}, paint.TextureFilterLinear, solidPixels(1, 1, paint.White))
	ts.UploadPending()
	old, _ := ts.Lookup(id)

	ts.SetFull(id, [2]int{4, 2}, paint.TextureFilterLinear, solidPixels(4, 2, paint.Red))
	if len(dev.deleted) != 1 || dev.deleted[0] != old.Handle {
		t.Errorf("expected old handle %d to be released, got %v", old.Handle, dev.deleted)
	}
	ts.UploadPending()
	if info, _ := ts.Lookup(id); info.Size != [2]int{4, 2} || info.Handle == old.Handle {
		t.Errorf("unexpected texture after replacement: %+v", info)
	}
}

func TestTexturePartialUpdate(t *testing.T) {
	t.Run("pending", func(t *testing.T) {
		dev := newFakeDevice(1, 1)
		ts := NewTextureStore(dev, nil)
		id := paint.ManagedTexture(0)
		ts.SetFull(id, [2]int{2, 2}, paint.TextureFilterLinear, solidPixels(2, 2, paint.Black))
		if !ts.SetPartial(id, 1, 1, 1, 1, solidPixels(1, 1, paint.White)) {
			t.Fatalf("partial update of pending texture failed")
		}
		ts.UploadPending()

		info, _ := ts.Lookup(id)
		expected := paint.Color32Bytes([]paint.Color32{paint.Black, paint.Black, paint.Black, paint.White})
		if got := dev.textures[info.Handle].pixels; !bytes.Equal(got, expected) {
			t.Errorf("got pixels %v, expected %v", got, expected)
		}
		if dev.texSubImageCalls != 0 {
			t.Errorf("pending texture shouldn't be sub-image uploaded")
		}
	})

	t.Run("uploaded", func(t *testing.T) {
		dev := newFakeDevice(1, 1)
		ts := NewTextureStore(dev, nil)
		id := paint.ManagedTexture(0)
		ts.SetFull(id, [2]int{3, 1}, paint.TextureFilterLinear, solidPixels(3, 1, paint.Black))
		ts.UploadPending()

		ts.SetPartial(id, 2, 0, 1, 1, solidPixels(1, 1, paint.Red))
		if dev.texSubImageCalls != 1 {
			t.Errorf("expected an immediate sub-image upload, got %d", dev.texSubImageCalls)
		}
		info, _ := ts.Lookup(id)
		if info.Dirty {
			t.Errorf("texture shouldn't be dirty after an immediate partial upload")
		}
		if n := ts.UploadPending(); n != 0 {
			t.Errorf("partial update caused %d full uploads", n)
		}
		expected := paint.Color32Bytes([]paint.Color32{paint.Black, paint.Black, paint.Red})
		if got := dev.textures[info.Handle].pixels; !bytes.Equal(got, expected) {
			t.Errorf("got pixels %v, expected %v", got, expected)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		ts := NewTextureStore(newFakeDevice(1, 1), nil)
		if ts.SetPartial(paint.ManagedTexture(9), 0, 0, 1, 1, solidPixels(1, 1, paint.Red)) {
			t.Errorf("partial update of unknown texture reported success")
		}
		if ts.Len() != 0 {
			t.Errorf("partial update created a texture")
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		ts := NewTextureStore(newFakeDevice(1, 1), nil)
		id := paint.ManagedTexture(0)
		ts.SetFull(id, [2]int{4, 4}, paint.TextureFilterLinear, solidPixels(4, 4, paint.Black))

		expectPanic(t, "x overflow", func() { ts.SetPartial(id, 3, 0, 2, 1, solidPixels(2, 1, paint.Red)) })
		expectPanic(t, "y overflow", func() { ts.SetPartial(id, 0, 2, 1, 3, solidPixels(1, 3, paint.Red)) })
		expectPanic(t, "negative", func() { ts.SetPartial(id, -1, 0, 1, 1, solidPixels(1, 1, paint.Red)) })
		// Exactly at the edge is fine.
		ts.SetPartial(id, 2, 2, 2, 2, solidPixels(2, 2, paint.Red))
	})
}

func TestTexturePixelMismatch(t *testing.T) {
	ts := NewTextureStore(newFakeDevice(1, 1), nil)
	expectPanic(t, "SetFull", func() {
		ts.SetFull(paint.ManagedTexture(0), [2]int{2, 2}, paint.TextureFilterLinear, make([]byte, 12))
	})
	expectPanic(t, "ReplacePixels unknown", func() {
		ts.ReplacePixels(paint.UserTexture(5), make([]byte, 4))
	})
}

func TestRegisterNative(t *testing.T) {
	dev := newFakeDevice(1, 1)
	ts := NewTextureStore(dev, nil)
	id := ts.RegisterNative(99, paint.TextureFilterLinear)
	if id.Namespace != paint.TextureUser {
		t.Errorf("native texture got id %s", id)
	}
	if ts.UploadPending() != 0 {
		t.Errorf("native texture shouldn't be uploaded")
	}
	if h := ts.handle(id); h != 99 {
		t.Errorf("got handle %d, expected 99", h)
	}
	ts.Free(id)
	if len(dev.deleted) != 1 || dev.deleted[0] != 99 {
		t.Errorf("expected native handle to be deleted, got %v", dev.deleted)
	}
}
