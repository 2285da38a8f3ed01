// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

// called lump_t in the original format description
type directory struct {
	Offset int32
	Size   int32
}

type header struct {
	Version      int32
	Entities     directory
	Planes       directory
	Textures     directory
	Vertexes     directory
	Visibility   directory
	Nodes        directory
	Texinfo      directory
	Faces        directory
	Lighting     directory
	ClipNodes    directory
	Leafs        directory
	MarkSurfaces directory
	Edges        directory
	SurfaceEdges directory // SURFEDGES
	Models       directory
}

type plane struct {
	Normal   [3]float32
	Distance float32
	Type     int32 // 0: axial plane in X, 1: axial plane in Y, 2 axial in Z, 3,4,5 similar but non axial
}

type vertex struct {
	X float32
	Y float32
	Z float32
}

// the first edge of the list is never used
type edge struct {
	Vertex0 uint16 // id of start vertex, must be in [0,numvertices[
	Vertex1 uint16 // id of end vertex, must be in [0,numvertices[
}

type node struct {
	PlaneID      int32
	Children     [2]uint16
	Box          [6]int16
	FirstSurface uint16
	SurfaceCount uint16
}

type leaf struct {
	Type             int32 // Contents
	VisOfs           int32 // offset into the visibility blob, -1 for none
	Box              [6]int16
	FirstMarkSurface uint16
	MarkSurfaceCount uint16
	Ambients         [4]byte
}

type clipNode struct {
	PlaneNumber int32     // the plane which splits the node
	Children    [2]uint16 // if positive id of the child node, -2 if front part inside the model, -1 if outside the model
}

// Model, either a big zone, the level or parts inside that zone
type submodel struct {
	BoundingBox  [6]float32
	Origin       [3]float32
	HeadNode     [4]int32
	VisLeafCount int32 // not including the solid leaf 0
	FirstFace    int32
	FaceCount    int32
}
