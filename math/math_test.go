// math/math_test.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "testing"

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		x, lo, hi, expected float32
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{3, 3, 3, 3},
	} {
		if c := Clamp(tc.x, tc.lo, tc.hi); c != tc.expected {
			t.Errorf("Clamp(%f, %f, %f) = %f, expected %f", tc.x, tc.lo, tc.hi, c, tc.expected)
		}
	}
}

func TestRound(t *testing.T) {
	for _, tc := range []struct {
		v, expected float32
	}{
		{0.5, 1},
		{1.49, 1},
		{-0.5, -1},
		{2.5, 3},
	} {
		if r := Round(tc.v); r != tc.expected {
			t.Errorf("Round(%f) = %f, expected %f", tc.v, r, tc.expected)
		}
	}
}

func TestExtent2D(t *testing.T) {
	e := Extent2DFromMinSize([2]float32{10, 20}, [2]float32{30, 40})
	if e.P1 != [2]float32{40, 60} {
		t.Errorf("unexpected max corner %v", e.P1)
	}
	if e.Width() != 30 || e.Height() != 40 {
		t.Errorf("unexpected size %v", e.Size())
	}
	if !e.Inside([2]float32{10, 60}) || e.Inside([2]float32{9, 30}) {
		t.Errorf("Inside gave incorrect result")
	}
	s := e.Scale(2)
	if s.P0 != [2]float32{20, 40} || s.P1 != [2]float32{80, 120} {
		t.Errorf("unexpected scaled extent %v", s)
	}
	if p := e.ClosestPointInBox([2]float32{0, 100}); p != [2]float32{10, 60} {
		t.Errorf("ClosestPointInBox gave %v", p)
	}
	u := Union(EmptyExtent2D(), [2]float32{1, 2})
	u = Union(u, [2]float32{-1, 5})
	if u.P0 != [2]float32{-1, 2} || u.P1 != [2]float32{1, 5} {
		t.Errorf("unexpected union %v", u)
	}
}
