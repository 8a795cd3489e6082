// input/input.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package input defines the GUI toolkit's input model: the per-frame
// RawInput and the events it carries.
package input

import (
	"github.com/glpaint/glpaint/math"
)

// RawInput is everything the GUI toolkit is told about the outside world
// for one frame.
type RawInput struct {
	// ScreenRect is the area, in points, that the GUI may use. Nil means
	// that it is unchanged, or unknown.
	ScreenRect *math.Extent2D
	// PixelsPerPoint is nil if unknown.
	PixelsPerPoint *float32
	// Time in seconds since some fixed point; nil if unknown.
	Time *float64
	// ScrollDelta is the amount scrolled since the last frame, in points.
	ScrollDelta [2]float32
	Modifiers   Modifiers
	Events      []Event
}

// Take returns the current input and resets the events and scroll delta
// so the next frame starts fresh. The screen rect and pixels-per-point
// are carried over.
func (r *RawInput) Take() RawInput {
	taken := *r
	r.Events = nil
	r.ScrollDelta = [2]float32{}
	r.Time = nil
	return taken
}

// PixelsPerPointOr returns the pixels-per-point value if it is known and
// the given default otherwise.
func (r *RawInput) PixelsPerPointOr(def float32) float32 {
	if r.PixelsPerPoint == nil {
		return def
	}
	return *r.PixelsPerPoint
}

// Modifiers holds the state of the modifier keys. Command is the
// platform's primary shortcut modifier: Ctrl on Windows and Linux, Cmd on
// macOS.
type Modifiers struct {
	Alt     bool
	Ctrl    bool
	Shift   bool
	MacCmd  bool
	Command bool
}

func (m Modifiers) IsNone() bool {
	return m == Modifiers{}
}

// PointerButton identifies a mouse button.
type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
)

func (b PointerButton) String() string {
	switch b {
	case PointerPrimary:
		return "Primary"
	case PointerSecondary:
		return "Secondary"
	case PointerMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}

// Event is one of the event types below.
type Event interface {
	isEvent()
}

type PointerMovedEvent struct {
	Pos [2]float32
}

type PointerButtonEvent struct {
	Pos       [2]float32
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

type KeyEvent struct {
	Key       Key
	Pressed   bool
	Modifiers Modifiers
}

// TextEvent is text input, either typed or pasted.
type TextEvent struct {
	Text string
}

type CopyEvent struct{}

type CutEvent struct{}

func (PointerMovedEvent) isEvent()  {}
func (PointerButtonEvent) isEvent() {}
func (KeyEvent) isEvent()           {}
func (TextEvent) isEvent()          {}
func (CopyEvent) isEvent()          {}
func (CutEvent) isEvent()           {}
