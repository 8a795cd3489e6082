// imguiframe/frame.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package imguiframe drives Dear ImGui as the producer of each frame's
// paint output: it feeds ImGui the toolkit input, and converts ImGui's
// draw data and font atlas into primitives and texture deltas.
package imguiframe

import (
	"unsafe"

	"github.com/glpaint/glpaint/input"
	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/paint"
	"github.com/glpaint/glpaint/platform"

	"github.com/AllenDang/cimgui-go/imgui"
)

// FontTextureID is the managed texture that holds imgui's font atlas.
var FontTextureID = paint.ManagedTexture(0)

type Frame struct {
	io *imgui.IO
	lg *log.Logger

	lastTime float64
	buttons  mouseButtons

	// Texture changes waiting to go out with the next frame.
	pending paint.TexturesDelta
	// Text that imgui copied during the current frame.
	copied string

	clipboard platform.Clipboard
}

// New creates the imgui context, builds its font atlas, and installs a
// clipboard handler. The clipboard may be nil.
func New(clip platform.Clipboard, lg *log.Logger) *Frame {
	imgui.CreateContext()
	f := &Frame{
		io:        imgui.CurrentIO(),
		lg:        lg,
		clipboard: clip,
	}
	f.io.SetIniFilename("")

	imgui.CurrentStyle().SetFrameRounding(2.)

	f.io.Fonts().AddFontDefault()
	f.uploadFontAtlas()

	imgui.CurrentPlatformIO().SetClipboardHandler(clipboardHandler{f: f})
	return f
}

func (f *Frame) uploadFontAtlas() {
	texData := f.io.Fonts().TexData()
	w, h, bpp := int(texData.Width()), int(texData.Height()), int(texData.BytesPerPixel())
	f.lg.Infof("Fonts texture: %dx%d, %d bpp, %.1f MB", w, h, bpp, float32(w*h*bpp)/(1024*1024))

	pixelsPtr := unsafe.Add(nil, texData.Pixels())
	pixels := unsafe.Slice((*byte)(pixelsPtr), w*h*bpp)
	img := FontAtlasImage(w, h, bpp, pixels)

	f.pending.SetTexture(FontTextureID, paint.FullImage(img, paint.TextureFilterLinear))
	texData.SetTexID(EncodeTextureID(FontTextureID))
	texData.SetStatus(imgui.TextureStatusOK)
}

// Begin starts a new imgui frame with the given input. Widgets may be
// submitted between Begin and End.
func (f *Frame) Begin(raw input.RawInput) {
	if raw.Time != nil {
		if f.lastTime > 0 && *raw.Time > f.lastTime {
			f.io.SetDeltaTime(float32(*raw.Time - f.lastTime))
		}
		f.lastTime = *raw.Time
	}
	feedInput(f.io, raw, &f.buttons)

	f.copied = ""
	imgui.NewFrame()
}

// End finishes the frame and returns its output. Texture changes that
// were requested since the last frame are included.
func (f *Frame) End() paint.FullOutput {
	imgui.Render()

	out := paint.FullOutput{
		Platform: paint.PlatformOutput{
			CursorIcon: CursorIcon(imgui.CurrentMouseCursor()),
			CopiedText: f.copied,
		},
		Textures:   f.pending,
		Primitives: ConvertDrawData(imgui.CurrentDrawData(), f.lg),
	}
	f.pending = paint.TexturesDelta{}
	return out
}

// WantsKeyboard reports whether imgui is using the keyboard, e.g. because
// a text field has focus.
func (f *Frame) WantsKeyboard() bool {
	return f.io.WantCaptureKeyboard()
}

func (f *Frame) Dispose() {
	imgui.DestroyContext()
}

// clipboardHandler implements imgui.ClipboardHandler. Copied text is
// returned in the frame's platform output rather than being set here.
type clipboardHandler struct {
	f *Frame
}

func (h clipboardHandler) GetClipboard() string {
	if h.f.clipboard == nil {
		return ""
	}
	text, err := h.f.clipboard.GetText()
	if err != nil {
		h.f.lg.Warnf("Unable to read clipboard: %v", err)
	}
	return text
}

func (h clipboardHandler) SetClipboard(text string) {
	h.f.copied = text
}
