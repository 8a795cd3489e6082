// imguiframe/io.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package imguiframe

import (
	"runtime"

	"github.com/glpaint/glpaint/input"
	"github.com/glpaint/glpaint/paint"
	"github.com/glpaint/glpaint/util"

	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiKey returns the imgui key for a toolkit key.
func ImguiKey(k input.Key) imgui.Key {
	switch {
	case k >= input.KeyA && k <= input.KeyZ:
		return imgui.KeyA + imgui.Key(k-input.KeyA)
	case k >= input.Key0 && k <= input.Key9:
		return imgui.Key0 + imgui.Key(k-input.Key0)
	case k >= input.KeyF1 && k <= input.KeyF12:
		return imgui.KeyF1 + imgui.Key(k-input.KeyF1)
	}

	switch k {
	case input.KeyArrowDown:
		return imgui.KeyDownArrow
	case input.KeyArrowLeft:
		return imgui.KeyLeftArrow
	case input.KeyArrowRight:
		return imgui.KeyRightArrow
	case input.KeyArrowUp:
		return imgui.KeyUpArrow
	case input.KeyEscape:
		return imgui.KeyEscape
	case input.KeyTab:
		return imgui.KeyTab
	case input.KeyBackspace:
		return imgui.KeyBackspace
	case input.KeyEnter:
		return imgui.KeyEnter
	case input.KeySpace:
		return imgui.KeySpace
	case input.KeyInsert:
		return imgui.KeyInsert
	case input.KeyDelete:
		return imgui.KeyDelete
	case input.KeyHome:
		return imgui.KeyHome
	case input.KeyEnd:
		return imgui.KeyEnd
	case input.KeyPageUp:
		return imgui.KeyPageUp
	case input.KeyPageDown:
		return imgui.KeyPageDown
	default:
		return imgui.KeyNone
	}
}

// CursorIcon returns the cursor icon corresponding to an imgui cursor.
func CursorIcon(c imgui.MouseCursor) paint.CursorIcon {
	switch c {
	case imgui.MouseCursorNone:
		return paint.CursorNone
	case imgui.MouseCursorTextInput:
		return paint.CursorText
	case imgui.MouseCursorResizeAll:
		return paint.CursorResizeAll
	case imgui.MouseCursorResizeNS:
		return paint.CursorResizeVertical
	case imgui.MouseCursorResizeEW:
		return paint.CursorResizeHorizontal
	case imgui.MouseCursorResizeNESW:
		return paint.CursorResizeNeSw
	case imgui.MouseCursorResizeNWSE:
		return paint.CursorResizeNwSe
	case imgui.MouseCursorHand:
		return paint.CursorPointingHand
	case imgui.MouseCursorNotAllowed:
		return paint.CursorNotAllowed
	default:
		return paint.CursorDefault
	}
}

// addModifiers sends the modifier state before a key event so that imgui's
// shortcut handling sees the same modifiers the event carried.
func addModifiers(io *imgui.IO, m input.Modifiers) {
	io.AddKeyEvent(imgui.ModShift, m.Shift)
	io.AddKeyEvent(imgui.ModAlt, m.Alt)
	io.AddKeyEvent(imgui.ModCtrl, m.Ctrl)
	io.AddKeyEvent(imgui.ModSuper, m.MacCmd)
}

// shortcut replays a clipboard shortcut that was turned into a Copy or
// Cut event so that imgui's own text editing handles it. With its macOS
// behaviors enabled, imgui swaps Super and Ctrl.
func shortcut(io *imgui.IO, key imgui.Key) {
	mod := util.Select(runtime.GOOS == "darwin", imgui.ModSuper, imgui.ModCtrl)
	io.AddKeyEvent(mod, true)
	io.AddKeyEvent(key, true)
	io.AddKeyEvent(key, false)
	io.AddKeyEvent(mod, false)
}

// mouseButtons tracks the primary, secondary and middle mouse buttons
// across frames. A button pressed during a frame is reported down for that
// frame even if it was also released; the release is seen the next frame.
type mouseButtons struct {
	held        [3]bool
	justPressed [3]bool
}

// update records a button event. Buttons beyond the first three are
// ignored.
func (m *mouseButtons) update(b input.PointerButton, pressed bool) {
	if b < 0 || int(b) >= len(m.held) {
		return
	}
	m.held[b] = pressed
	if pressed {
		m.justPressed[b] = true
	}
}

// frame returns the button state to report for the current frame.
func (m *mouseButtons) frame() [3]bool {
	var down [3]bool
	for i := range down {
		down[i] = m.justPressed[i] || m.held[i]
		m.justPressed[i] = false
	}
	return down
}

// feedInput passes one frame's input to imgui.
func feedInput(io *imgui.IO, raw input.RawInput, buttons *mouseButtons) {
	if raw.ScreenRect != nil {
		sz := raw.ScreenRect.Size()
		io.SetDisplaySize(imgui.Vec2{X: sz[0], Y: sz[1]})
	}

	for _, ev := range raw.Events {
		switch e := ev.(type) {
		case input.PointerMovedEvent:
			io.SetMousePos(imgui.Vec2{X: e.Pos[0], Y: e.Pos[1]})
		case input.PointerButtonEvent:
			io.SetMousePos(imgui.Vec2{X: e.Pos[0], Y: e.Pos[1]})
			buttons.update(e.Button, e.Pressed)
		case input.KeyEvent:
			if k := ImguiKey(e.Key); k != imgui.KeyNone {
				addModifiers(io, e.Modifiers)
				io.AddKeyEvent(k, e.Pressed)
			}
		case input.TextEvent:
			io.AddInputCharactersUTF8(e.Text)
		case input.CopyEvent:
			shortcut(io, imgui.KeyC)
		case input.CutEvent:
			shortcut(io, imgui.KeyX)
		}
	}

	for i, down := range buttons.frame() {
		io.SetMouseButtonDown(i, down)
	}

	if raw.ScrollDelta != [2]float32{} {
		io.AddMouseWheelDelta(raw.ScrollDelta[0], raw.ScrollDelta[1])
	}
}
