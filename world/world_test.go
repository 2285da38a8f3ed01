// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"bytes"
	"encoding/binary"
	"testing"

	"qbsp/bsp"
	"qbsp/filesystem"
	"qbsp/math/vec"
	"qbsp/model"
)

// minimalMapBytes builds a loadable map: one plane at x=0, a solid
// back leaf, an empty front leaf, one node and one clipnode.
func minimalMapBytes(t *testing.T) []byte {
	t.Helper()
	lump := func(vs ...interface{}) []byte {
		buf := &bytes.Buffer{}
		for _, v := range vs {
			if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
				t.Fatalf("building lump: %v", err)
			}
		}
		return buf.Bytes()
	}

	lumps := make([][]byte, 15)
	const (
		lumpEntities  = 0
		lumpPlanes    = 1
		lumpNodes     = 5
		lumpClipNodes = 9
		lumpLeafs     = 10
		lumpModels    = 14
	)
	lumps[lumpEntities] = []byte("{\n\"classname\" \"worldspawn\"\n}\n\x00")
	lumps[lumpPlanes] = lump(
		[3]float32{1, 0, 0}, float32(0), int32(0),
	)
	lumps[lumpNodes] = lump(
		int32(0), // plane
		uint16(0xfffe), uint16(0xffff), // front: leaf 1, back: leaf 0
		[6]int16{-64, -64, -64, 64, 64, 64},
		uint16(0), uint16(0),
	)
	lumps[lumpClipNodes] = lump(
		int32(0), uint16(0xffff), uint16(0xfffe),
	)
	lumps[lumpLeafs] = lump(
		// leaf 0, solid
		int32(bsp.CONTENTS_SOLID), int32(-1),
		[6]int16{-64, -64, -64, 0, 64, 64},
		uint16(0), uint16(0), [4]byte{},
		// leaf 1, empty
		int32(bsp.CONTENTS_EMPTY), int32(-1),
		[6]int16{0, -64, -64, 64, 64, 64},
		uint16(0), uint16(0), [4]byte{},
	)
	lumps[lumpModels] = lump(
		[6]float32{-64, -64, -64, 64, 64, 64},
		[3]float32{},
		[4]int32{},
		int32(1), int32(0), int32(0),
	)

	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, int32(bsp.Version))
	ofs := int32(4 + 15*8)
	for _, l := range lumps {
		binary.Write(buf, binary.LittleEndian, [2]int32{ofs, int32(len(l))})
		ofs += int32(len(l))
	}
	for _, l := range lumps {
		buf.Write(l)
	}
	return buf.Bytes()
}

// The whole path: registry load from a byte source, then fragment
// linking against the loaded tree.
func TestLinkAgainstLoadedMap(t *testing.T) {
	src := filesystem.Map{"maps/test.bsp": minimalMapBytes(t)}
	r := model.NewRegistry(src)
	ms, err := r.ForName("maps/test.bsp", false)
	if err != nil || len(ms) != 1 {
		t.Fatalf("load: %v %v", ms, err)
	}
	m, ok := ms[0].(*bsp.Model)
	if !ok {
		t.Fatalf("loaded model is no brush model: %T", ms[0])
	}

	w := New(m, 0)
	// well inside the empty front leaf
	e := NewEntity(vec.Vec3{32, 0, 0}, vec.Vec3{-8, -8, -8}, vec.Vec3{8, 8, 8})
	w.Link(e)

	if got := w.FreeFragments(); got != MaxFragments-1 {
		t.Errorf("free fragments = %d, want exactly one fragment used", got)
	}
	empty := m.Leafs[1]
	if es := w.LeafEntities(empty); len(es) != 1 || es[0] != e {
		t.Errorf("empty leaf entities = %v", es)
	}
	if solid := m.Leafs[0]; solid.Fragments != -1 {
		t.Errorf("solid leaf got a fragment")
	}

	w.Unlink(e)
	if got := w.FreeFragments(); got != MaxFragments {
		t.Errorf("free fragments after unlink = %d", got)
	}
}
