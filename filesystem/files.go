// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem supplies raw file contents by name. Archive
// formats and search paths live behind the Source interface so the
// loaders never care where bytes come from.
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Source is the byte-source collaborator of the model registry. A
// missing resource is reported with an error matching fs.ErrNotExist.
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// Dir serves files relative to one OS directory.
type Dir string

func (d Dir) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(string(d), filepath.FromSlash(name)))
}

// Map is an in-memory source, mainly for tests and generated content.
type Map map[string][]byte

func (m Map) ReadFile(name string) ([]byte, error) {
	b, ok := m[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return b, nil
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

// Ext returns the file name extension including the dot.
func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

// StripExt returns the path without its extension.
func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
