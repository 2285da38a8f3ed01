// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"qbsp/math/vec"
)

const (
	// MAX_MODELS bounds the registry. Exceeding it is a programming
	// error of the embedding game, not a recoverable condition.
	MAX_MODELS = 2048
)

type Type int

const (
	Brush Type = iota
	Sprite
	Alias
)

type Model interface {
	Name() string
	Type() Type
	Mins() vec.Vec3
	Maxs() vec.Vec3
	Flags() int
}
