// SPDX-License-Identifier: GPL-2.0-or-later

// Package world links moving entities into the static world geometry.
package world

import (
	"qbsp/bsp"
	"qbsp/conlog"
	"qbsp/math/vec"
)

// MaxFragments bounds the fragment pool. Running out is not an error,
// entities just stop being linked into further leafs for this relink.
const MaxFragments = 640

// fragment ties one entity to one leaf it overlaps. The records live
// in a slab owned by the World and chain through indexes, once per
// entity and once per leaf.
type fragment struct {
	entity       *Entity
	leaf         *bsp.MLeaf
	nextOfEntity int
	nextInLeaf   int
}

// Entity is a moving object with a box. Mins and Maxs are relative to
// Origin.
type Entity struct {
	Origin vec.Vec3
	Mins   vec.Vec3
	Maxs   vec.Vec3

	fragments int      // head of the per-entity fragment chain
	topNode   bsp.Node // shallowest node whose plane split the box
}

func NewEntity(origin, mins, maxs vec.Vec3) *Entity {
	return &Entity{
		Origin:    origin,
		Mins:      mins,
		Maxs:      maxs,
		fragments: -1,
	}
}

// TopNode returns the shallowest node at which the box straddled a
// plane during the last Link, or the single leaf it fell into. A later
// small move could restart its descent there instead of at the root.
func (e *Entity) TopNode() bsp.Node {
	return e.topNode
}

// World owns the fragment slab for one loaded level. It must be
// confined to the single loop that owns world state.
type World struct {
	model *bsp.Model
	frags []fragment
	free  []int
}

func New(m *bsp.Model, maxFragments int) *World {
	if maxFragments <= 0 {
		maxFragments = MaxFragments
	}
	w := &World{
		model: m,
		frags: make([]fragment, maxFragments),
		free:  make([]int, 0, maxFragments),
	}
	for i := maxFragments - 1; i >= 0; i-- {
		w.free = append(w.free, i)
	}
	// the model may have been linked into by an earlier world
	for _, l := range m.Leafs {
		l.Fragments = -1
	}
	return w
}

func (w *World) alloc() int {
	if len(w.free) == 0 {
		return -1
	}
	i := w.free[len(w.free)-1]
	w.free = w.free[:len(w.free)-1]
	return i
}

func (w *World) release(i int) {
	w.frags[i] = fragment{}
	w.free = append(w.free, i)
}

// FreeFragments returns how many fragment records are unused.
func (w *World) FreeFragments() int {
	return len(w.free)
}

func (w *World) split(e *Entity, node bsp.Node, mins, maxs vec.Vec3) {
	if node.Contents() == bsp.CONTENTS_SOLID {
		return
	}
	if node.Contents() < 0 {
		if e.topNode == nil {
			e.topNode = node
		}
		leaf := node.(*bsp.MLeaf)
		fi := w.alloc()
		if fi < 0 {
			conlog.Printf("Too many fragments\n")
			return
		}
		f := &w.frags[fi]
		f.entity = e
		f.leaf = leaf
		f.nextOfEntity = e.fragments
		e.fragments = fi
		f.nextInLeaf = leaf.Fragments
		leaf.Fragments = fi
		return
	}

	n := node.(*bsp.MNode)
	sides := n.Plane.BoxOnPlaneSide(mins, maxs)
	if sides == 3 && e.topNode == nil {
		e.topNode = node
	}
	// recurse down the contacted sides
	if sides&1 != 0 {
		w.split(e, n.Children[0], mins, maxs)
	}
	if sides&2 != 0 {
		w.split(e, n.Children[1], mins, maxs)
	}
}

// Link attaches the entity to every non-solid leaf its box overlaps.
// The entity must not be linked already.
func (w *World) Link(e *Entity) {
	e.fragments = -1
	e.topNode = nil
	if w.model == nil || w.model.Node == nil {
		return
	}
	mins := vec.Add(e.Origin, e.Mins)
	maxs := vec.Add(e.Origin, e.Maxs)
	w.split(e, w.model.Node, mins, maxs)
}

func (w *World) unlinkFromLeaf(fi int, leaf *bsp.MLeaf) {
	if leaf.Fragments == fi {
		leaf.Fragments = w.frags[fi].nextInLeaf
		return
	}
	for i := leaf.Fragments; i != -1; i = w.frags[i].nextInLeaf {
		if w.frags[i].nextInLeaf == fi {
			w.frags[i].nextInLeaf = w.frags[fi].nextInLeaf
			return
		}
	}
}

// Unlink detaches the entity from every leaf and returns its fragments
// to the pool.
func (w *World) Unlink(e *Entity) {
	fi := e.fragments
	for fi != -1 {
		f := &w.frags[fi]
		next := f.nextOfEntity
		w.unlinkFromLeaf(fi, f.leaf)
		w.release(fi)
		fi = next
	}
	e.fragments = -1
	e.topNode = nil
}

// Relink is a full Unlink plus Link. The recorded top node would allow
// an incremental restart for small moves but the full pass matches the
// original engine.
func (w *World) Relink(e *Entity) {
	w.Unlink(e)
	w.Link(e)
}

// LeafEntities lists every entity with a fragment in the leaf.
func (w *World) LeafEntities(leaf *bsp.MLeaf) []*Entity {
	var es []*Entity
	for i := leaf.Fragments; i != -1; i = w.frags[i].nextInLeaf {
		es = append(es, w.frags[i].entity)
	}
	return es
}
