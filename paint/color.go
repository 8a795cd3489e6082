// paint/color.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package paint

import "github.com/glpaint/glpaint/math"

// Color32 is an 8-bit per channel RGBA color with premultiplied alpha.
type Color32 [4]uint8

var (
	Transparent = Color32{0, 0, 0, 0}
	Black       = Color32{0, 0, 0, 255}
	White       = Color32{255, 255, 255, 255}
	Red         = Color32{255, 0, 0, 255}
	Green       = Color32{0, 255, 0, 255}
	Blue        = Color32{0, 0, 255, 255}
	Yellow      = Color32{255, 255, 0, 255}
)

// RGBAPremultiplied returns the color with the given already-premultiplied
// components.
func RGBAPremultiplied(r, g, b, a uint8) Color32 {
	return Color32{r, g, b, a}
}

// RGBAUnmultiplied returns the premultiplied color corresponding to the
// given straight-alpha components.
func RGBAUnmultiplied(r, g, b, a uint8) Color32 {
	if a == 255 {
		return Color32{r, g, b, a}
	}
	pm := func(c uint8) uint8 {
		return uint8(math.Round(float32(c) * float32(a) / 255))
	}
	return Color32{pm(r), pm(g), pm(b), a}
}

func (c Color32) R() uint8 { return c[0] }
func (c Color32) G() uint8 { return c[1] }
func (c Color32) B() uint8 { return c[2] }
func (c Color32) A() uint8 { return c[3] }
