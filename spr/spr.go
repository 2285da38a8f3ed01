// SPDX-License-Identifier: GPL-2.0-or-later

// Package spr recognises sprite files. Sprites take no part in
// collision, so only the header is decoded and the model is tagged.
package spr

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"qbsp/math/vec"
	"qbsp/model"
)

const (
	ST_SYNC = iota
	ST_RAND
)

const (
	spriteVersion = 1
	Magic         = 'P'<<24 | 'S'<<16 | 'D'<<8 | 'I'
)

type header struct { // dsprite_t
	ID             [4]byte // "IDSP"
	Version        int32   // SPRITE_VERSION
	Type           int32   // SPR_SINGLE or SPR_GROUP
	BoundingRadius float32
	MaxWidth       int32
	MaxHeight      int32
	FrameCount     int32
	BeamLength     float32
	SyncType       int32 // ST_SYNC or ST_RAND
}

func init() {
	model.Register(Magic, load)
}

// Model is a minimally tagged sprite. Frames stay undecoded.
type Model struct {
	name       string
	mins, maxs vec.Vec3
	FrameCount int
	SyncType   int
}

func (m *Model) Name() string     { return m.name }
func (m *Model) Type() model.Type { return model.Sprite }
func (m *Model) Mins() vec.Vec3   { return m.mins }
func (m *Model) Maxs() vec.Vec3   { return m.maxs }
func (m *Model) Flags() int       { return 0 }

func load(name string, data []byte) ([]model.Model, error) {
	h := header{}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if h.Version != spriteVersion {
		return nil, fmt.Errorf("%s has wrong version number (%d should be %d)",
			name, h.Version, spriteVersion)
	}
	if h.FrameCount < 1 {
		return nil, fmt.Errorf("Mod_LoadSpriteModel: Invalid # of frames: %v", h.FrameCount)
	}
	m := &Model{
		name: name,
		mins: vec.Vec3{
			float32(-h.MaxWidth / 2),
			float32(-h.MaxWidth / 2),
			float32(-h.MaxHeight / 2),
		},
		maxs: vec.Vec3{
			float32(h.MaxWidth / 2),
			float32(h.MaxWidth / 2),
			float32(h.MaxHeight / 2),
		},
		FrameCount: int(h.FrameCount),
		SyncType:   int(h.SyncType),
	}
	return []model.Model{m}, nil
}
