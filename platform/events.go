// platform/events.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import "github.com/go-gl/glfw/v3.3/glfw"

// WindowEvent is one of the event types below; they correspond to the
// GLFW window callbacks.
type WindowEvent interface {
	isWindowEvent()
}

// FramebufferSizeEvent reports a new framebuffer size, in pixels.
type FramebufferSizeEvent struct {
	Width, Height int
}

type MouseButtonEvent struct {
	Button glfw.MouseButton
	Action glfw.Action
	Mods   glfw.ModifierKey
}

// CursorPosEvent gives the cursor position in window coordinates, with
// the origin at the upper left.
type CursorPosEvent struct {
	X, Y float64
}

type KeyEvent struct {
	Key      glfw.Key
	Scancode int
	Action   glfw.Action
	Mods     glfw.ModifierKey
}

type CharEvent struct {
	Char rune
}

type ScrollEvent struct {
	X, Y float64
}

// CloseEvent is delivered when the user has asked to close the window.
type CloseEvent struct{}

func (FramebufferSizeEvent) isWindowEvent() {}
func (MouseButtonEvent) isWindowEvent()     {}
func (CursorPosEvent) isWindowEvent()       {}
func (KeyEvent) isWindowEvent()             {}
func (CharEvent) isWindowEvent()            {}
func (ScrollEvent) isWindowEvent()          {}
func (CloseEvent) isWindowEvent()           {}
