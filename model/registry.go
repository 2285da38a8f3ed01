// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"errors"
	"io/fs"
	"log"
	"runtime/debug"

	pkgerrors "github.com/pkg/errors"

	"qbsp/conlog"
	"qbsp/filesystem"
)

// Slot is one registry entry. It exists as soon as a name is first
// asked for and keeps its parsed models across ClearAll so a reload
// can reuse the storage decision of the previous load.
type Slot struct {
	name   string
	loaded bool
	models []Model
}

func (s *Slot) Name() string {
	return s.name
}

func (s *Slot) Loaded() bool {
	return s.loaded
}

// Model returns the primary model of the slot, nil before a
// successful load.
func (s *Slot) Model() Model {
	if !s.loaded || len(s.models) == 0 {
		return nil
	}
	return s.models[0]
}

// Registry is a capacity-bounded, name-indexed model cache. It is not
// safe for concurrent use; loads happen during the serialized spawn
// phase.
type Registry struct {
	src   filesystem.Source
	slots []*Slot
}

func NewRegistry(src filesystem.Source) *Registry {
	return &Registry{
		src:   src,
		slots: make([]*Slot, 0, MAX_MODELS),
	}
}

// FindOrCreate returns the slot registered under name, claiming a new
// one if needed. Registry exhaustion and empty names are programming
// errors of the embedding game and fatal.
func (r *Registry) FindOrCreate(name string) *Slot {
	if len(name) == 0 {
		debug.PrintStack()
		log.Fatalf("Mod_FindName: empty name")
	}
	for _, s := range r.slots {
		if s.name == name {
			return s
		}
	}
	if len(r.slots) == cap(r.slots) {
		debug.PrintStack()
		log.Fatalf("Mod_FindName: too many models, max = %d", MAX_MODELS)
	}
	s := &Slot{name: name}
	r.slots = append(r.slots, s)
	return s
}

// Load parses the slot's resource on its first call and returns the
// cached models on every later one. A resource the byte source cannot
// supply returns nil models, or aborts when crash is set. Parse errors
// are returned and leave the slot unloaded.
func (r *Registry) Load(s *Slot, crash bool) ([]Model, error) {
	if s.loaded {
		return s.models, nil
	}

	data, err := r.src.ReadFile(s.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if crash {
				debug.PrintStack()
				log.Fatalf("Mod_LoadModel: %s not found", s.name)
			}
			conlog.Printf("Mod_LoadModel: %s not found\n", s.name)
			return nil, nil
		}
		return nil, pkgerrors.Wrapf(err, "Mod_LoadModel: %s", s.name)
	}

	f := loaderFor(data)
	if f == nil {
		return nil, pkgerrors.Errorf("Mod_LoadModel: no loader for %s", s.name)
	}
	models, err := f(s.name, data)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "Mod_LoadModel: %s", s.name)
	}

	s.models = models
	s.loaded = true
	// inline submodels become loaded slots of their own so that
	// "*N" names resolve without touching the byte source
	for i := 1; i < len(models); i++ {
		m := models[i]
		sub := r.FindOrCreate(m.Name())
		sub.models = []Model{m}
		sub.loaded = true
	}
	return s.models, nil
}

// ForName is FindOrCreate followed by Load.
func (r *Registry) ForName(name string, crash bool) ([]Model, error) {
	return r.Load(r.FindOrCreate(name), crash)
}

// ClearAll drops the loaded flags but keeps the slots and their
// storage, matching a level change that may reuse most models.
func (r *Registry) ClearAll() {
	for _, s := range r.slots {
		s.loaded = false
	}
}
