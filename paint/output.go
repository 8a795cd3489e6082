// paint/output.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package paint

// CursorIcon is the mouse cursor the GUI toolkit would like displayed.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorNone
	CursorPointingHand
	CursorResizeHorizontal
	CursorResizeVertical
	CursorResizeNeSw
	CursorResizeNwSe
	CursorResizeAll
	CursorText
	CursorCrosshair
	CursorNotAllowed
	CursorNoDrop
	CursorWait
	CursorGrab
	CursorGrabbing
)

// PlatformOutput is the per-frame output of the GUI toolkit that is
// addressed to the platform layer rather than to the renderer.
type PlatformOutput struct {
	CursorIcon CursorIcon
	// CopiedText is non-empty if text was copied or cut during the
	// frame and should be placed on the system clipboard.
	CopiedText string
}

// FullOutput is everything the GUI toolkit produces for one frame.
type FullOutput struct {
	Platform   PlatformOutput
	Textures   TexturesDelta
	Primitives []ClippedPrimitive
}
