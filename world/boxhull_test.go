// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"testing"

	"qbsp/bsp"
	"qbsp/math/vec"
)

func TestBoxHullContents(t *testing.T) {
	b := NewBoxHull()
	h := b.For(vec.Vec3{-8, -8, -8}, vec.Vec3{8, 8, 8})
	if c := h.PointContents(0, vec.Vec3{0, 0, 0}); c != bsp.CONTENTS_SOLID {
		t.Errorf("inside the box = %d, want solid", c)
	}
	if c := h.PointContents(0, vec.Vec3{12, 0, 0}); c != bsp.CONTENTS_EMPTY {
		t.Errorf("outside the box = %d, want empty", c)
	}
	// reshaping moves the walls
	h = b.For(vec.Vec3{-16, -16, -16}, vec.Vec3{16, 16, 16})
	if c := h.PointContents(0, vec.Vec3{12, 0, 0}); c != bsp.CONTENTS_SOLID {
		t.Errorf("inside the grown box = %d, want solid", c)
	}
}

func TestHullForSize(t *testing.T) {
	m := &bsp.Model{}
	m.Hulls[1].ClipMins = vec.Vec3{-16, -16, -24}
	m.Hulls[1].ClipMaxs = vec.Vec3{16, 16, 32}
	m.Hulls[2].ClipMins = vec.Vec3{-32, -32, -24}
	m.Hulls[2].ClipMaxs = vec.Vec3{32, 32, 64}

	h, _ := HullFor(m, vec.Vec3{-1, -1, -1}, vec.Vec3{1, 1, 1})
	if h != &m.Hulls[0] {
		t.Errorf("point sized box did not pick hull 0")
	}
	h, offset := HullFor(m, vec.Vec3{-16, -16, -24}, vec.Vec3{16, 16, 32})
	if h != &m.Hulls[1] {
		t.Errorf("player sized box did not pick hull 1")
	}
	if offset != (vec.Vec3{}) {
		t.Errorf("exact hull box has offset %v, want zero", offset)
	}
	h, _ = HullFor(m, vec.Vec3{-32, -32, -24}, vec.Vec3{32, 32, 64})
	if h != &m.Hulls[2] {
		t.Errorf("large box did not pick hull 2")
	}
}
