// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/chewxy/math32"

	"qbsp/math/vec"
	"qbsp/model"
)

// Version is the only supported brush format version tag.
const Version = 29

func init() {
	model.RegisterBrush(load)
}

// lumpData slices the lump out of the file, rejecting directories that
// point outside of it.
func lumpData(name, lump string, d directory, data []byte) ([]byte, error) {
	if d.Offset < 0 || d.Size < 0 ||
		int64(d.Offset)+int64(d.Size) > int64(len(data)) {
		return nil, &BoundsError{Name: name, Lump: lump}
	}
	return data[d.Offset : d.Offset+d.Size], nil
}

// lumpRecords additionally requires the lump to hold a whole number of
// fixed-size records.
func lumpRecords(name, lump string, d directory, data []byte, recordSize int) ([]byte, int, error) {
	l, err := lumpData(name, lump, d, data)
	if err != nil {
		return nil, 0, err
	}
	if len(l)%recordSize != 0 {
		return nil, 0, &BoundsError{Name: name, Lump: lump}
	}
	return l, len(l) / recordSize, nil
}

func readPlanes(name string, d directory, data []byte) ([]*Plane, error) {
	const recordSize = 20
	l, count, err := lumpRecords(name, "planes", d, data, recordSize)
	if err != nil {
		return nil, err
	}
	if count > MaxMapPlanes {
		return nil, &LimitError{Name: name, What: "planes", Count: count, Max: MaxMapPlanes}
	}
	in := make([]plane, count)
	if err := binary.Read(bytes.NewReader(l), binary.LittleEndian, in); err != nil {
		return nil, err
	}
	out := make([]*Plane, count)
	for i, p := range in {
		normal := vec.VFromA(p.Normal)
		out[i] = &Plane{
			Normal:   normal,
			Dist:     p.Distance,
			Type:     byte(p.Type),
			SignBits: signBits(normal),
		}
	}
	return out, nil
}

func readVertexes(name string, d directory, data []byte) ([]*MVertex, error) {
	const recordSize = 12
	l, count, err := lumpRecords(name, "vertexes", d, data, recordSize)
	if err != nil {
		return nil, err
	}
	in := make([]vertex, count)
	if err := binary.Read(bytes.NewReader(l), binary.LittleEndian, in); err != nil {
		return nil, err
	}
	out := make([]*MVertex, count)
	for i, v := range in {
		out[i] = &MVertex{Position: vec.Vec3{v.X, v.Y, v.Z}}
	}
	return out, nil
}

func readEdges(name string, d directory, data []byte) ([]*MEdge, error) {
	const recordSize = 4
	l, count, err := lumpRecords(name, "edges", d, data, recordSize)
	if err != nil {
		return nil, err
	}
	in := make([]edge, count)
	if err := binary.Read(bytes.NewReader(l), binary.LittleEndian, in); err != nil {
		return nil, err
	}
	out := make([]*MEdge, count)
	for i, e := range in {
		out[i] = &MEdge{V: [2]int{int(e.Vertex0), int(e.Vertex1)}}
	}
	return out, nil
}

func readSurfaceEdges(name string, d directory, data []byte) ([]int32, error) {
	const recordSize = 4
	l, count, err := lumpRecords(name, "surfedges", d, data, recordSize)
	if err != nil {
		return nil, err
	}
	out := make([]int32, count)
	if err := binary.Read(bytes.NewReader(l), binary.LittleEndian, out); err != nil {
		return nil, err
	}
	return out, nil
}

func readVisibility(name string, d directory, data []byte) ([]byte, error) {
	l, err := lumpData(name, "visibility", d, data)
	if err != nil {
		return nil, err
	}
	// keep our own copy, the input buffer belongs to the caller
	out := make([]byte, len(l))
	copy(out, l)
	return out, nil
}

func readEntities(name string, d directory, data []byte) ([]byte, error) {
	l, err := lumpData(name, "entities", d, data)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(l))
	copy(out, l)
	return out, nil
}

func readLeafs(name string, d directory, data []byte, visdata []byte) ([]*MLeaf, error) {
	const recordSize = 28
	l, count, err := lumpRecords(name, "leafs", d, data, recordSize)
	if err != nil {
		return nil, err
	}
	if count > MaxMapLeafs {
		return nil, &LimitError{Name: name, What: "leafs", Count: count, Max: MaxMapLeafs}
	}
	in := make([]leaf, count)
	if err := binary.Read(bytes.NewReader(l), binary.LittleEndian, in); err != nil {
		return nil, err
	}
	out := make([]*MLeaf, count)
	for i, lf := range in {
		ml := &MLeaf{
			NodeBase: NewNodeBase(int(lf.Type), 0, [6]float32{
				float32(lf.Box[0]), float32(lf.Box[1]), float32(lf.Box[2]),
				float32(lf.Box[3]), float32(lf.Box[4]), float32(lf.Box[5]),
			}),
			AmbientSoundLevel: lf.Ambients,
			Fragments:         -1,
		}
		if lf.VisOfs >= 0 {
			if int(lf.VisOfs) >= len(visdata) {
				return nil, &BoundsError{Name: name, Lump: "visibility"}
			}
			ml.CompressedVis = visdata[lf.VisOfs:]
		}
		out[i] = ml
	}
	return out, nil
}

func readNodes(name string, d directory, data []byte, planes []*Plane, leafs []*MLeaf) ([]*MNode, error) {
	const recordSize = 24
	l, count, err := lumpRecords(name, "nodes", d, data, recordSize)
	if err != nil {
		return nil, err
	}
	in := make([]node, count)
	if err := binary.Read(bytes.NewReader(l), binary.LittleEndian, in); err != nil {
		return nil, err
	}
	out := make([]*MNode, count)
	for i, n := range in {
		if int(n.PlaneID) < 0 || int(n.PlaneID) >= len(planes) {
			return nil, &BoundsError{Name: name, Lump: "nodes"}
		}
		out[i] = &MNode{
			NodeBase: NewNodeBase(0, 0, [6]float32{
				float32(n.Box[0]), float32(n.Box[1]), float32(n.Box[2]),
				float32(n.Box[3]), float32(n.Box[4]), float32(n.Box[5]),
			}),
			Plane:        planes[n.PlaneID],
			FirstSurface: uint32(n.FirstSurface),
			NumSurfaces:  uint32(n.SurfaceCount),
		}
	}
	// children can point forward, resolve them after all nodes exist
	for i, n := range in {
		for j := 0; j < 2; j++ {
			p := int(int16(n.Children[j]))
			if p >= 0 {
				if p >= count {
					return nil, &BoundsError{Name: name, Lump: "nodes"}
				}
				out[i].Children[j] = out[p]
			} else {
				li := -1 - p
				if li >= len(leafs) {
					return nil, &BoundsError{Name: name, Lump: "nodes"}
				}
				out[i].Children[j] = leafs[li]
			}
		}
	}
	return out, nil
}

func readClipNodes(name string, d directory, data []byte, planes []*Plane) ([]*ClipNode, error) {
	const recordSize = 8
	l, count, err := lumpRecords(name, "clipnodes", d, data, recordSize)
	if err != nil {
		return nil, err
	}
	in := make([]clipNode, count)
	if err := binary.Read(bytes.NewReader(l), binary.LittleEndian, in); err != nil {
		return nil, err
	}
	out := make([]*ClipNode, count)
	for i, cn := range in {
		if int(cn.PlaneNumber) < 0 || int(cn.PlaneNumber) >= len(planes) {
			return nil, &BoundsError{Name: name, Lump: "clipnodes"}
		}
		c := &ClipNode{Plane: planes[cn.PlaneNumber]}
		for j := 0; j < 2; j++ {
			// child values of large maps overflow into what would be
			// contents, support the extended encoding
			child := int(cn.Children[j])
			if child >= count {
				child -= 65536
			}
			if child >= count || child < CONTENTS_CURRENT_DOWN {
				return nil, &BoundsError{Name: name, Lump: "clipnodes"}
			}
			c.Children[j] = child
		}
		out[i] = c
	}
	return out, nil
}

func readSubmodels(name string, d directory, data []byte) ([]*Submodel, error) {
	const recordSize = 64
	l, count, err := lumpRecords(name, "submodels", d, data, recordSize)
	if err != nil {
		return nil, err
	}
	in := make([]submodel, count)
	if err := binary.Read(bytes.NewReader(l), binary.LittleEndian, in); err != nil {
		return nil, err
	}
	out := make([]*Submodel, count)
	for i, s := range in {
		out[i] = &Submodel{
			Mins:   vec.Vec3{s.BoundingBox[0], s.BoundingBox[1], s.BoundingBox[2]},
			Maxs:   vec.Vec3{s.BoundingBox[3], s.BoundingBox[4], s.BoundingBox[5]},
			Origin: vec.VFromA(s.Origin),
			HeadNode: [4]int{
				int(s.HeadNode[0]), int(s.HeadNode[1]),
				int(s.HeadNode[2]), int(s.HeadNode[3]),
			},
			VisLeafCount: int(s.VisLeafCount),
			FirstFace:    int(s.FirstFace),
			FaceCount:    int(s.FaceCount),
		}
	}
	return out, nil
}

// setParent back-links the tree. Parents are not part of the file, they
// exist to let visibility marking walk towards the root.
func setParent(n Node, p *MNode) {
	if n == nil {
		return
	}
	n.SetParent(p)
	if n.Contents() < 0 {
		return
	}
	node := n.(*MNode)
	setParent(node.Children[0], node)
	setParent(node.Children[1], node)
}

// makeHull0 duplicates the node tree as a clip hull for point-sized
// objects. The clipnodes mirror the nodes one to one, so node indexes
// and hull 0 clipnode indexes are interchangeable.
func makeHull0(m *Model) {
	index := make(map[*MNode]int, len(m.Nodes))
	for i, n := range m.Nodes {
		index[n] = i
	}
	cn := make([]*ClipNode, len(m.Nodes))
	for i, n := range m.Nodes {
		c := &ClipNode{Plane: n.Plane}
		for j, child := range n.Children {
			switch t := child.(type) {
			case *MNode:
				c.Children[j] = index[t]
			case *MLeaf:
				c.Children[j] = t.Contents()
			default:
				// outside of the map
				c.Children[j] = CONTENTS_SOLID
			}
		}
		cn[i] = c
	}
	h := &m.Hulls[0]
	h.ClipNodes = cn
	h.Planes = m.Planes
	h.FirstClipNode = 0
	h.LastClipNode = len(cn) - 1
}

// setupHulls wires the loaded clipnode array into hulls 1 and 2. Both
// share the array, the head node and the box extents make the
// difference. The extents are the player and shambler sizes the maps
// were compiled for. Hull 3 is unused.
func setupHulls(m *Model) {
	h1 := &m.Hulls[1]
	h1.ClipNodes = m.ClipNodes
	h1.Planes = m.Planes
	h1.FirstClipNode = 0
	h1.LastClipNode = len(m.ClipNodes) - 1
	h1.ClipMins = vec.Vec3{-16, -16, -24}
	h1.ClipMaxs = vec.Vec3{16, 16, 32}

	h2 := &m.Hulls[2]
	h2.ClipNodes = m.ClipNodes
	h2.Planes = m.Planes
	h2.FirstClipNode = 0
	h2.LastClipNode = len(m.ClipNodes) - 1
	h2.ClipMins = vec.Vec3{-32, -32, -24}
	h2.ClipMaxs = vec.Vec3{32, 32, 64}
}

func radiusFromBounds(mins, maxs vec.Vec3) float32 {
	var corner vec.Vec3
	for i := 0; i < 3; i++ {
		corner[i] = math32.Max(math32.Abs(mins[i]), math32.Abs(maxs[i]))
	}
	return corner.Length()
}

// expandSubmodels turns the submodel table into full models. The first
// one is the world, the others are the brush entities inside it, named
// "*1", "*2", ... and sharing all tables with the world.
func expandSubmodels(m *Model) []model.Model {
	if len(m.Submodels) == 0 {
		return []model.Model{m}
	}
	ret := make([]model.Model, 0, len(m.Submodels))
	cur := m
	for i, bm := range m.Submodels {
		cur.Hulls[0].FirstClipNode = bm.HeadNode[0]
		for j := 1; j < MaxMapHulls; j++ {
			cur.Hulls[j].FirstClipNode = bm.HeadNode[j]
			cur.Hulls[j].LastClipNode = len(m.ClipNodes) - 1
		}
		if bm.HeadNode[0] >= 0 && bm.HeadNode[0] < len(m.Nodes) {
			cur.Node = m.Nodes[bm.HeadNode[0]]
		}
		cur.mins = bm.Mins
		cur.maxs = bm.Maxs
		cur.Radius = radiusFromBounds(cur.mins, cur.maxs)
		ret = append(ret, cur)

		if i < len(m.Submodels)-1 {
			next := *cur
			next.name = fmt.Sprintf("*%d", i+1)
			cur = &next
		}
	}
	return ret
}

func load(name string, data []byte) ([]model.Model, error) {
	if len(data) < 4 {
		return nil, &FormatError{Name: name}
	}
	version := int32(binary.LittleEndian.Uint32(data))
	if version != Version {
		return nil, &FormatError{Name: name, Version: version}
	}
	var h header
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return nil, &BoundsError{Name: name, Lump: "header"}
	}
	// the undecoded lumps still have to lie inside the file
	for _, l := range []struct {
		name string
		d    directory
	}{
		{"textures", h.Textures},
		{"texinfo", h.Texinfo},
		{"faces", h.Faces},
		{"lighting", h.Lighting},
		{"marksurfaces", h.MarkSurfaces},
	} {
		if _, err := lumpData(name, l.name, l.d, data); err != nil {
			return nil, err
		}
	}

	m := &Model{name: name}
	var err error
	if m.Planes, err = readPlanes(name, h.Planes, data); err != nil {
		return nil, err
	}
	if m.Vertexes, err = readVertexes(name, h.Vertexes, data); err != nil {
		return nil, err
	}
	if m.Edges, err = readEdges(name, h.Edges, data); err != nil {
		return nil, err
	}
	if m.SurfaceEdges, err = readSurfaceEdges(name, h.SurfaceEdges, data); err != nil {
		return nil, err
	}
	if m.VisData, err = readVisibility(name, h.Visibility, data); err != nil {
		return nil, err
	}
	if m.EntityText, err = readEntities(name, h.Entities, data); err != nil {
		return nil, err
	}
	m.Entities = ParseEntities(m.EntityText)
	if m.Leafs, err = readLeafs(name, h.Leafs, data, m.VisData); err != nil {
		return nil, err
	}
	if m.Nodes, err = readNodes(name, h.Nodes, data, m.Planes, m.Leafs); err != nil {
		return nil, err
	}
	if len(m.Nodes) > 0 {
		m.Node = m.Nodes[0]
		setParent(m.Node, nil)
	}
	if m.ClipNodes, err = readClipNodes(name, h.ClipNodes, data, m.Planes); err != nil {
		return nil, err
	}
	makeHull0(m)
	setupHulls(m)
	if m.Submodels, err = readSubmodels(name, h.Models, data); err != nil {
		return nil, err
	}

	return expandSubmodels(m), nil
}
