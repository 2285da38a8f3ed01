// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"qbsp/bsp"
	"qbsp/math/vec"
)

// BoxHull is a six-plane hull remodeled for every query so that a
// bounding box can be traced like any other clip hull.
type BoxHull struct {
	hull      bsp.Hull
	clipNodes [6]bsp.ClipNode
	planes    [6]bsp.Plane
}

func NewBoxHull() *BoxHull {
	b := &BoxHull{}
	b.hull.ClipNodes = make([]*bsp.ClipNode, 6)
	b.hull.Planes = make([]*bsp.Plane, 6)
	b.hull.FirstClipNode = 0
	b.hull.LastClipNode = 5
	for i := 0; i < 6; i++ {
		b.hull.ClipNodes[i] = &b.clipNodes[i]
		b.hull.Planes[i] = &b.planes[i]
		b.clipNodes[i].Plane = &b.planes[i]
		side := i & 1
		b.clipNodes[i].Children[side] = bsp.CONTENTS_EMPTY
		if i == 5 {
			b.clipNodes[i].Children[side^1] = bsp.CONTENTS_SOLID
		} else {
			b.clipNodes[i].Children[side^1] = i + 1
		}
		b.planes[i].Type = byte(i >> 1)
		b.planes[i].Normal[i>>1] = 1
	}
	return b
}

// For shapes the hull to the given box and returns it. The returned
// hull stays valid until the next call.
func (b *BoxHull) For(mins, maxs vec.Vec3) *bsp.Hull {
	b.planes[0].Dist = maxs[0]
	b.planes[1].Dist = mins[0]
	b.planes[2].Dist = maxs[1]
	b.planes[3].Dist = mins[1]
	b.planes[4].Dist = maxs[2]
	b.planes[5].Dist = mins[2]
	return &b.hull
}

// HullFor picks the model hull whose box class fits the mover's size
// and returns it together with the offset moving query coordinates
// into hull coordinates.
func HullFor(m *bsp.Model, mins, maxs vec.Vec3) (*bsp.Hull, vec.Vec3) {
	s := maxs[0] - mins[0]
	h := func() *bsp.Hull {
		if s < 3 {
			return &m.Hulls[0]
		} else if s <= 32 {
			return &m.Hulls[1]
		}
		return &m.Hulls[2]
	}()
	offset := vec.Sub(h.ClipMins, mins)
	return h, offset
}

// PointContents classifies a point against the model's point hull.
func PointContents(m *bsp.Model, p vec.Vec3) int {
	h := &m.Hulls[0]
	return h.PointContents(h.FirstClipNode, p)
}
