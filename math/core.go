// math/core.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Round rounds half away from zero, the same as math.Round.
func Round(v float32) float32 {
	return float32(gomath.Round(float64(v)))
}

func Sin(a float32) float32 {
	return float32(gomath.Sin(float64(a)))
}

func Pow(a, b float32) float32 {
	return float32(gomath.Pow(float64(a), float64(b)))
}

func Radians(d float32) float32 {
	return d / 180 * gomath.Pi
}

func Lerp(x, a, b float32) float32 {
	return (1-x)*a + x*b
}
