// platform/keymap.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"github.com/glpaint/glpaint/input"
	"github.com/glpaint/glpaint/paint"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// TranslateKey returns the toolkit key corresponding to a GLFW key code;
// false is returned for keys that the toolkit doesn't know about.
func TranslateKey(key glfw.Key) (input.Key, bool) {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return input.KeyA + input.Key(key-glfw.KeyA), true
	case key >= glfw.Key0 && key <= glfw.Key9:
		return input.Key0 + input.Key(key-glfw.Key0), true
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return input.KeyF1 + input.Key(key-glfw.KeyF1), true
	}

	switch key {
	case glfw.KeyLeft:
		return input.KeyArrowLeft, true
	case glfw.KeyUp:
		return input.KeyArrowUp, true
	case glfw.KeyRight:
		return input.KeyArrowRight, true
	case glfw.KeyDown:
		return input.KeyArrowDown, true
	case glfw.KeyEscape:
		return input.KeyEscape, true
	case glfw.KeyTab:
		return input.KeyTab, true
	case glfw.KeyBackspace:
		return input.KeyBackspace, true
	case glfw.KeySpace:
		return input.KeySpace, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return input.KeyEnter, true
	case glfw.KeyInsert:
		return input.KeyInsert, true
	case glfw.KeyHome:
		return input.KeyHome, true
	case glfw.KeyDelete:
		return input.KeyDelete, true
	case glfw.KeyEnd:
		return input.KeyEnd, true
	case glfw.KeyPageDown:
		return input.KeyPageDown, true
	case glfw.KeyPageUp:
		return input.KeyPageUp, true
	default:
		return input.KeyNone, false
	}
}

// TranslateMouseButton returns the pointer button for a GLFW mouse
// button; only the first three buttons are known.
func TranslateMouseButton(b glfw.MouseButton) (input.PointerButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return input.PointerPrimary, true
	case glfw.MouseButtonRight:
		return input.PointerSecondary, true
	case glfw.MouseButtonMiddle:
		return input.PointerMiddle, true
	default:
		return 0, false
	}
}

// TranslateCursor returns the GLFW standard cursor that best matches the
// given cursor icon. GLFW 3.3 only has six, so many icons share one.
func TranslateCursor(icon paint.CursorIcon) glfw.StandardCursor {
	switch icon {
	case paint.CursorPointingHand, paint.CursorGrab, paint.CursorGrabbing:
		return glfw.HandCursor
	case paint.CursorResizeHorizontal, paint.CursorResizeNeSw:
		return glfw.HResizeCursor
	case paint.CursorResizeVertical, paint.CursorResizeNwSe:
		return glfw.VResizeCursor
	case paint.CursorText:
		return glfw.IBeamCursor
	case paint.CursorCrosshair:
		return glfw.CrosshairCursor
	default:
		return glfw.ArrowCursor
	}
}
