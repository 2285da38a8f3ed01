// SPDX-License-Identifier: GPL-2.0-or-later
package bsp

import (
	"testing"

	"github.com/chewxy/math32"

	"qbsp/math/vec"
)

func axialPlane(axis int, dist float32) *Plane {
	var n vec.Vec3
	n[axis] = 1
	return &Plane{Normal: n, Dist: dist, Type: byte(axis), SignBits: signBits(n)}
}

func TestBoxOnPlaneSideAxial(t *testing.T) {
	for axis := 0; axis < 3; axis++ {
		p := axialPlane(axis, 0)
		var mins, maxs vec.Vec3
		mins[axis], maxs[axis] = 1, 3
		if got := p.BoxOnPlaneSide(mins, maxs); got != 1 {
			t.Errorf("axis %d box in front = %d, want 1", axis, got)
		}
		mins[axis], maxs[axis] = -3, -1
		if got := p.BoxOnPlaneSide(mins, maxs); got != 2 {
			t.Errorf("axis %d box behind = %d, want 2", axis, got)
		}
		mins[axis], maxs[axis] = -1, 1
		if got := p.BoxOnPlaneSide(mins, maxs); got != 3 {
			t.Errorf("axis %d straddling box = %d, want 3", axis, got)
		}
	}
}

// The general path must agree with the axial fast path on every one of
// its 8 sign-bits branches.
func TestBoxOnPlaneSideGeneral(t *testing.T) {
	s := 1 / math32.Sqrt(3)
	for bits := 0; bits < 8; bits++ {
		n := vec.Vec3{s, s, s}
		for i := 0; i < 3; i++ {
			if bits&(1<<i) != 0 {
				n[i] = -s
			}
		}
		p := &Plane{Normal: n, Dist: 0, Type: 3, SignBits: signBits(n)}
		// center the box well onto the front side of the plane
		center := n.Scale(10)
		front := p.BoxOnPlaneSide(
			vec.Sub(center, vec.Vec3{1, 1, 1}),
			vec.Add(center, vec.Vec3{1, 1, 1}))
		if front != 1 {
			t.Errorf("bits %d: box in front = %d, want 1", bits, front)
		}
		center = n.Scale(-10)
		back := p.BoxOnPlaneSide(
			vec.Sub(center, vec.Vec3{1, 1, 1}),
			vec.Add(center, vec.Vec3{1, 1, 1}))
		if back != 2 {
			t.Errorf("bits %d: box behind = %d, want 2", bits, back)
		}
		straddle := p.BoxOnPlaneSide(vec.Vec3{-1, -1, -1}, vec.Vec3{1, 1, 1})
		if straddle != 3 {
			t.Errorf("bits %d: straddling box = %d, want 3", bits, straddle)
		}
	}
}

// An axis-aligned normal through the general path has to match the
// fast path result.
func TestGeneralMatchesAxial(t *testing.T) {
	boxes := []struct {
		mins, maxs vec.Vec3
	}{
		{vec.Vec3{1, -1, -1}, vec.Vec3{3, 1, 1}},
		{vec.Vec3{-3, -1, -1}, vec.Vec3{-1, 1, 1}},
		{vec.Vec3{-1, -1, -1}, vec.Vec3{1, 1, 1}},
	}
	for axis := 0; axis < 3; axis++ {
		var n vec.Vec3
		n[axis] = 1
		fast := &Plane{Normal: n, Dist: 0, Type: byte(axis), SignBits: signBits(n)}
		slow := &Plane{Normal: n, Dist: 0, Type: 3, SignBits: signBits(n)}
		for _, b := range boxes {
			// the boxes are laid out along x, rotate them onto the axis
			var mins, maxs vec.Vec3
			for i := 0; i < 3; i++ {
				mins[(axis+i)%3] = b.mins[i]
				maxs[(axis+i)%3] = b.maxs[i]
			}
			got := slow.BoxOnPlaneSide(mins, maxs)
			want := fast.BoxOnPlaneSide(mins, maxs)
			if got != want {
				t.Errorf("axis %d box %v,%v: general = %d, axial = %d",
					axis, mins, maxs, got, want)
			}
		}
	}
}
