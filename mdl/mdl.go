// SPDX-License-Identifier: GPL-2.0-or-later

// Package mdl recognises alias models. They collide as boxes, never as
// geometry, so only the header is decoded and the model is tagged.
package mdl

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"qbsp/math/vec"
	"qbsp/model"
)

const (
	aliasVersion = 6
	Magic        = 'O'<<24 | 'P'<<16 | 'D'<<8 | 'I'
)

type header struct { // mdl_t
	ID             int32
	Version        int32
	Scale          [3]float32
	ScaleOrigin    [3]float32
	BoundingRadius float32
	EyePosition    [3]float32
	SkinCount      int32
	SkinWidth      int32
	SkinHeight     int32
	VerticeCount   int32
	TriangleCount  int32
	FrameCount     int32
	SyncType       int32
	Flags          int32
	Size           float32
}

func init() {
	model.Register(Magic, load)
}

// Model is a minimally tagged alias model.
type Model struct {
	name       string
	FrameCount int
	SyncType   int
	flags      int
}

func (m *Model) Name() string     { return m.name }
func (m *Model) Type() model.Type { return model.Alias }
func (m *Model) Flags() int       { return m.flags }

// the old engines used a fixed box for every alias model
func (m *Model) Mins() vec.Vec3 { return vec.Vec3{-16, -16, -16} }
func (m *Model) Maxs() vec.Vec3 { return vec.Vec3{16, 16, 16} }

func load(name string, data []byte) ([]model.Model, error) {
	h := header{}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if h.Version != aliasVersion {
		return nil, fmt.Errorf("%s has wrong version number (%d should be %d)",
			name, h.Version, aliasVersion)
	}
	if h.FrameCount < 1 {
		return nil, fmt.Errorf("Mod_LoadAliasModel: Invalid # of frames: %v", h.FrameCount)
	}
	m := &Model{
		name:       name,
		FrameCount: int(h.FrameCount),
		SyncType:   int(h.SyncType),
		flags:      int(h.Flags),
	}
	return []model.Model{m}, nil
}
