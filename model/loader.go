// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"encoding/binary"
)

var (
	loaders     map[uint32]LoadFunc
	brushLoader LoadFunc
)

func init() {
	loaders = make(map[uint32]LoadFunc)
}

// LoadFunc parses one resource into one or more models. Brush files
// yield the world model followed by its inline submodels.
type LoadFunc func(name string, data []byte) ([]Model, error)

// Register binds a loader to the 4-byte magic its file format starts
// with. Called from the loader package's init.
func Register(magic uint32, f LoadFunc) {
	loaders[magic] = f
}

// RegisterBrush binds the fallback loader. Brush files carry no magic,
// only a version tag, so everything without a registered magic is
// handed to it.
func RegisterBrush(f LoadFunc) {
	brushLoader = f
}

func loaderFor(data []byte) LoadFunc {
	if len(data) >= 4 {
		magic := binary.LittleEndian.Uint32(data)
		if f, ok := loaders[magic]; ok {
			return f
		}
	}
	return brushLoader
}
