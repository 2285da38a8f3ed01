// SPDX-License-Identifier: GPL-2.0-or-later
package bsp

import (
	"bytes"
)

// Entity is one key/value block from the entity text lump.
type Entity struct {
	properties map[string]string
	src        []byte
}

// nextQuoted returns the first "quoted" token of l and the rest of l.
func nextQuoted(l []byte) (string, []byte, bool) {
	q := bytes.IndexByte(l, '"')
	if q == -1 {
		return "", nil, false
	}
	r := l[q+1:]
	q = bytes.IndexByte(r, '"')
	if q == -1 {
		return "", nil, false
	}
	return string(r[:q]), r[q+1:], true
}

func NewEntity(p []byte) *Entity {
	e := &Entity{properties: make(map[string]string), src: p}
	// each line is expected to hold one
	// "key" "value"
	// pair
	for _, l := range bytes.Split(p, []byte("\n")) {
		key, rest, ok := nextQuoted(l)
		if !ok {
			continue
		}
		value, _, ok := nextQuoted(rest)
		if !ok {
			continue
		}
		e.properties[key] = value
	}
	return e
}

func (e *Entity) Property(name string) (string, bool) {
	v, ok := e.properties[name]
	return v, ok
}

func (e *Entity) Name() (string, bool) {
	v, ok := e.properties["classname"]
	return v, ok
}

func (e *Entity) PropertyNames() []string {
	n := []string{}
	for k := range e.properties {
		n = append(n, k)
	}
	return n
}

// ParseEntities splits the entity text into its top level {} blocks.
// Braces inside quoted strings do not count, nested blocks stay part of
// their outer block.
func ParseEntities(data []byte) []*Entity {
	es := []*Entity{}
	var depth, quote int
	start := -1
	for i, b := range data {
		switch b {
		case '{':
			if quote != 0 {
				break
			}
			if start == -1 {
				start = i
			} else {
				depth++
			}
		case '}':
			if quote != 0 {
				break
			}
			if start == -1 {
				// Bad input
				return nil
			}
			if depth == 0 {
				es = append(es, NewEntity(data[start:i+1]))
				start = -1
			} else {
				depth--
			}
		case '"':
			quote ^= 1
		}
	}
	return es
}
