// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"errors"
	"io/fs"
	"testing"
)

func TestExt(t *testing.T) {
	if got := Ext("maps/e1m1.bsp"); got != ".bsp" {
		t.Errorf("Ext = %q, want .bsp", got)
	}
	if got := Ext("maps/noext"); got != "" {
		t.Errorf("Ext = %q, want empty", got)
	}
	if got := Ext("dir.d/noext"); got != "" {
		t.Errorf("Ext = %q, a dot in a directory is no extension", got)
	}
}

func TestStripExt(t *testing.T) {
	if got := StripExt("maps/e1m1.bsp"); got != "maps/e1m1" {
		t.Errorf("StripExt = %q", got)
	}
	if got := StripExt("maps/noext"); got != "maps/noext" {
		t.Errorf("StripExt = %q", got)
	}
}

func TestMapSource(t *testing.T) {
	src := Map{"a.bin": []byte{1, 2, 3}}
	b, err := src.ReadFile("a.bin")
	if err != nil || len(b) != 3 {
		t.Errorf("ReadFile = %v, %v", b, err)
	}
	_, err = src.ReadFile("missing.bin")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}
}
