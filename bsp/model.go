// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"qbsp/math/vec"
	"qbsp/model"
)

// Would be great to type these but positive values are node numbers or so....
const (
	_ = -iota
	CONTENTS_EMPTY
	CONTENTS_SOLID
	CONTENTS_WATER
	CONTENTS_SLIME
	CONTENTS_LAVA
	CONTENTS_SKY
	CONTENTS_ORIGIN
	CONTENTS_CLIP
	CONTENTS_CURRENT_0
	CONTENTS_CURRENT_90
	CONTENTS_CURRENT_180
	CONTENTS_CURRENT_270
	CONTENTS_CURRENT_UP
	CONTENTS_CURRENT_DOWN
)

const (
	MaxMapHulls  = 4
	MaxMapLeafs  = 70000
	MaxMapPlanes = 65536
)

type Plane struct {
	Normal   vec.Vec3
	Dist     float32
	Type     byte
	SignBits byte
}

// signBits has bit i set iff normal component i is negative. It selects
// the corner pair used by BoxOnPlaneSide.
func signBits(normal vec.Vec3) byte {
	var bits byte
	for i := 0; i < 3; i++ {
		if normal[i] < 0 {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

// ClipNode children are either a clipnode index (>= 0) or a CONTENTS_
// value. Clip trees never point at leaf objects.
type ClipNode struct {
	Plane    *Plane
	Children [2]int
}

type Hull struct {
	ClipNodes     []*ClipNode
	Planes        []*Plane
	FirstClipNode int
	LastClipNode  int
	ClipMins      vec.Vec3
	ClipMaxs      vec.Vec3
}

type NodeBase struct {
	contents int // 0 to differentiate from leafs
	visFrame int

	parent  *MNode
	minMaxs [6]float32
}

func NewNodeBase(contents, visframe int, minmax [6]float32) NodeBase {
	return NodeBase{
		contents: contents,
		visFrame: visframe,
		minMaxs:  minmax,
	}
}

type Node interface {
	Contents() int
	Parent() *MNode
	SetParent(*MNode)
}

func (n *NodeBase) Contents() int {
	return n.contents
}

func (n *NodeBase) Parent() *MNode {
	return n.parent
}

func (n *NodeBase) SetParent(p *MNode) {
	n.parent = p
}

func (n *NodeBase) VisFrame() int {
	return n.visFrame
}

func (n *NodeBase) SetVisFrame(f int) {
	n.visFrame = f
}

func (n *NodeBase) Mins() vec.Vec3 {
	return vec.Vec3{n.minMaxs[0], n.minMaxs[1], n.minMaxs[2]}
}

func (n *NodeBase) Maxs() vec.Vec3 {
	return vec.Vec3{n.minMaxs[3], n.minMaxs[4], n.minMaxs[5]}
}

type MNode struct {
	NodeBase
	Children [2]Node
	Plane    *Plane

	// surfaces are not decoded, only their range is kept
	FirstSurface uint32
	NumSurfaces  uint32
}

type MLeaf struct {
	NodeBase
	// CompressedVis is a slice into the model's VisData, nil when the
	// leaf had no visibility record. nil decompresses to all visible.
	CompressedVis     []byte
	AmbientSoundLevel [4]byte

	// Fragments is the head of the chain of entity fragments touching
	// this leaf, an index into the owning world's fragment pool.
	// -1 when the chain is empty.
	Fragments int
}

type Submodel struct {
	Mins         vec.Vec3
	Maxs         vec.Vec3
	Origin       vec.Vec3
	HeadNode     [4]int
	VisLeafCount int
	FirstFace    int
	FaceCount    int
}

type MVertex struct {
	Position vec.Vec3
}

// the first edge of the list is never used
type MEdge struct {
	V [2]int
}

type Model struct {
	name string

	mins   vec.Vec3
	maxs   vec.Vec3
	Radius float32

	Submodels    []*Submodel
	Planes       []*Plane
	Leafs        []*MLeaf
	Vertexes     []*MVertex
	Edges        []*MEdge
	Nodes        []*MNode
	SurfaceEdges []int32
	ClipNodes    []*ClipNode

	Hulls   [MaxMapHulls]Hull
	VisData []byte

	EntityText []byte
	Entities   []*Entity

	// Node is the root of the model's node tree. For inline submodels it
	// points into the world's node array.
	Node Node
}

func (q *Model) Mins() vec.Vec3 {
	return q.mins
}
func (q *Model) Maxs() vec.Vec3 {
	return q.maxs
}
func (q *Model) Name() string {
	return q.name
}
func (q *Model) Type() model.Type {
	return model.Brush
}
func (q *Model) Flags() int {
	return 0
}
