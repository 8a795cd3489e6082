// platform/state.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"runtime"

	"github.com/glpaint/glpaint/input"
	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputState accumulates the toolkit input for the next frame from
// window events. The pointer position and modifiers are tracked across
// events so that button and key events can be annotated with them.
type InputState struct {
	PointerPos [2]float32
	Modifiers  input.Modifiers
	Input      input.RawInput
	// Clipboard is used to resolve paste shortcuts; it may be nil.
	Clipboard Clipboard

	lg *log.Logger
	// macOS uses the Command (Super) key for shortcuts.
	mac bool
}

// NewInputState returns an InputState for a display with the given
// pixels-per-point ratio. The clipboard may be nil.
func NewInputState(pixelsPerPoint float32, clip Clipboard, lg *log.Logger) *InputState {
	return &InputState{
		Input:     input.RawInput{PixelsPerPoint: &pixelsPerPoint},
		Clipboard: clip,
		lg:        lg,
		mac:       runtime.GOOS == "darwin",
	}
}

func (s *InputState) pixelsPerPoint() float32 {
	return s.Input.PixelsPerPointOr(1)
}

// HandleEvent converts a window event into zero or more toolkit input
// events.
func (s *InputState) HandleEvent(ev WindowEvent) {
	switch e := ev.(type) {
	case FramebufferSizeEvent:
		ppp := s.pixelsPerPoint()
		r := math.Extent2DFromMinSize([2]float32{}, [2]float32{float32(e.Width) / ppp, float32(e.Height) / ppp})
		s.Input.ScreenRect = &r

	case MouseButtonEvent:
		button, ok := TranslateMouseButton(e.Button)
		if !ok || e.Action == glfw.Repeat {
			return
		}
		s.push(input.PointerButtonEvent{
			Pos:       s.PointerPos,
			Button:    button,
			Pressed:   e.Action == glfw.Press,
			Modifiers: s.Modifiers,
		})

	case CursorPosEvent:
		ppp := s.pixelsPerPoint()
		s.PointerPos = [2]float32{float32(e.X) / ppp, float32(e.Y) / ppp}
		s.push(input.PointerMovedEvent{Pos: s.PointerPos})

	case KeyEvent:
		key, ok := TranslateKey(e.Key)
		if !ok {
			return
		}
		s.Modifiers = s.translateModifiers(e.Mods)

		if e.Action == glfw.Release {
			s.push(input.KeyEvent{Key: key, Pressed: false, Modifiers: s.Modifiers})
			return
		}

		switch {
		case s.Modifiers.Command && key == input.KeyX:
			s.push(input.CutEvent{})
		case s.Modifiers.Command && key == input.KeyC:
			s.push(input.CopyEvent{})
		case s.Modifiers.Command && key == input.KeyV:
			if s.Clipboard != nil {
				text, err := s.Clipboard.GetText()
				if err != nil {
					s.lg.Warnf("Unable to read clipboard: %v", err)
				}
				s.push(input.TextEvent{Text: text})
			}
		default:
			s.push(input.KeyEvent{Key: key, Pressed: true, Modifiers: s.Modifiers})
		}

	case CharEvent:
		s.push(input.TextEvent{Text: string(e.Char)})

	case ScrollEvent:
		s.Input.ScrollDelta = math.Add2f(s.Input.ScrollDelta, [2]float32{float32(e.X), float32(e.Y)})

	case CloseEvent:
		// Handled by the caller.
	}
}

func (s *InputState) push(e input.Event) {
	s.Input.Events = append(s.Input.Events, e)
}

func (s *InputState) translateModifiers(mods glfw.ModifierKey) input.Modifiers {
	m := input.Modifiers{
		Alt:   mods&glfw.ModAlt != 0,
		Ctrl:  mods&glfw.ModControl != 0,
		Shift: mods&glfw.ModShift != 0,
	}
	if s.mac {
		m.MacCmd = mods&glfw.ModSuper != 0
		m.Command = m.MacCmd
	} else {
		m.Command = m.Ctrl
	}
	return m
}

// CopyToClipboard puts text on the system clipboard, as requested by the
// toolkit's platform output. Failures are logged.
func (s *InputState) CopyToClipboard(text string) {
	if s.Clipboard == nil || text == "" {
		return
	}
	if err := s.Clipboard.SetText(text); err != nil {
		s.lg.Warnf("Unable to set clipboard content: %v", err)
	}
}
