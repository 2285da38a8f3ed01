// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestBasics(t *testing.T) {
	v := Vec3{1, 2, 3}
	if v[0] != 1 || v[1] != 2 || v[2] != 3 {
		t.Errorf("Vector construction is not obvious")
	}
}

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	v := Vec3{2, 2, 1}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{2, 1, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{1, 2, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Add(NULL, v)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, v)
	if got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
}

func TestDot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	got := Dot(a, b)
	want := float32(12)
	if got != want {
		t.Errorf("Dot(%v,%v) = %v want %v", a, b, got, want)
	}
	if Dot(a, b) != DoublePrecDot(a, b) {
		t.Errorf("DoublePrecDot disagrees with Dot on small values")
	}
}

func TestLerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, 8}
	got := Lerp(a, b, 0.5)
	want := Vec3{1, 2, 4}
	if got != want {
		t.Errorf("Lerp(%v,%v,0.5) = %v want %v", a, b, got, want)
	}
}

func TestMinMax(t *testing.T) {
	a := Vec3{1, 5, 3}
	b := Vec3{4, 2, 3}
	min, max := MinMax(a, b)
	if min != (Vec3{1, 2, 3}) || max != (Vec3{4, 5, 3}) {
		t.Errorf("MinMax(%v,%v) = %v,%v", a, b, min, max)
	}
}
