// util/generic_test.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"cmp"
	"slices"
	"testing"
)

func TestSelect(t *testing.T) {
	if Select(true, 1, 2) != 1 || Select(false, 1, 2) != 2 {
		t.Errorf("Select returned the wrong value")
	}
}

func TestSortedMapKeys(t *testing.T) {
	m := map[int]string{5: "five", 1: "one", 3: "three"}
	if k := SortedMapKeys(m); !slices.Equal(k, []int{1, 3, 5}) {
		t.Errorf("got %v, expected [1 3 5]", k)
	}

	type id struct{ a, b int }
	m2 := map[id]bool{{2, 1}: true, {1, 9}: true, {1, 2}: true}
	k := SortedMapKeysFunc(m2, func(x, y id) int {
		if c := cmp.Compare(x.a, y.a); c != 0 {
			return c
		}
		return cmp.Compare(x.b, y.b)
	})
	if !slices.Equal(k, []id{{1, 2}, {1, 9}, {2, 1}}) {
		t.Errorf("got %v", k)
	}
}

func TestReduceMap(t *testing.T) {
	m := map[string]int{"a": 10, "b": 20, "c": 12}
	total := ReduceMap(m, func(_ string, v int, sum int) int { return sum + v }, 0)
	if total != 42 {
		t.Errorf("got %d, expected 42", total)
	}
}

func TestMapSlice(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := MapSlice(a, func(i int) float32 { return 2 * float32(i) })
	if len(a) != len(b) {
		t.Errorf("lengths mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if float32(2*a[i]) != b[i] {
			t.Errorf("value %d mismatch %f vs %f", i, float32(2*a[i]), b[i])
		}
	}
}

func TestFilterSlice(t *testing.T) {
	odd := FilterSlice([]int{1, 2, 3, 4, 5}, func(i int) bool { return i%2 == 1 })
	if !slices.Equal(odd, []int{1, 3, 5}) {
		t.Errorf("got %v, expected [1 3 5]", odd)
	}
	if got := FilterSlice([]int{2, 4}, func(i int) bool { return i%2 == 1 }); len(got) != 0 {
		t.Errorf("got %v, expected nothing", got)
	}
}
