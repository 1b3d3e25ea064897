package gesture

import (
	"math"
	"testing"
)

// TestClamp_InsideRadiusUnchanged verifies vectors within the radius pass
// through untouched.
func TestClamp_InsideRadiusUnchanged(t *testing.T) {
	cases := []Vec{
		{X: 0, Y: 0},
		{X: 3, Y: 4},
		{X: -10, Y: 0},
		{X: 7.5, Y: -7.5},
	}
	for _, v := range cases {
		got := Clamp(v, 25)
		if got != v {
			t.Fatalf("expected %v unchanged, got %v", v, got)
		}
	}
}

// TestClamp_KnownScaling verifies the reference scenario: (30,40) clamped to
// radius 25 scales by 0.5.
func TestClamp_KnownScaling(t *testing.T) {
	got := Clamp(Vec{X: 30, Y: 40}, 25)
	if got.X != 15 || got.Y != 20 {
		t.Fatalf("expected (15,20), got (%v,%v)", got.X, got.Y)
	}
	if math.Abs(got.Magnitude()-25) > 1e-9 {
		t.Fatalf("expected magnitude 25, got %v", got.Magnitude())
	}
}

// TestClamp_Bounded verifies the clamped magnitude never exceeds the radius.
func TestClamp_Bounded(t *testing.T) {
	cases := []Vec{
		{X: 100, Y: 0},
		{X: -3, Y: 400},
		{X: 0.1, Y: 0.1},
		{X: -9999, Y: -9999},
	}
	for _, v := range cases {
		got := Clamp(v, 25)
		if got.Magnitude() > 25+1e-9 {
			t.Fatalf("expected magnitude <= 25 for %v, got %v", v, got.Magnitude())
		}
	}
}

// TestClamp_PreservesDirection verifies clamping scales the vector without
// rotating it.
func TestClamp_PreservesDirection(t *testing.T) {
	v := Vec{X: -30, Y: 40}
	got := Clamp(v, 10)
	scaleX := got.X / v.X
	scaleY := got.Y / v.Y
	if math.Abs(scaleX-scaleY) > 1e-9 {
		t.Fatalf("expected uniform scale, got %v and %v", scaleX, scaleY)
	}
	if scaleX <= 0 {
		t.Fatalf("expected positive scale, got %v", scaleX)
	}
}

// TestClamp_ZeroRadius verifies a zero radius always yields the zero vector.
func TestClamp_ZeroRadius(t *testing.T) {
	got := Clamp(Vec{X: 30, Y: 40}, 0)
	if got != (Vec{}) {
		t.Fatalf("expected zero vector, got %v", got)
	}
	got = Clamp(Vec{}, 0)
	if got != (Vec{}) {
		t.Fatalf("expected zero vector, got %v", got)
	}
}

// TestGeometry_MaxOffset verifies the clamp radius derivation.
func TestGeometry_MaxOffset(t *testing.T) {
	g := Geometry{AreaSize: 200, HandleSize: 80}
	if off := g.MaxOffset(); off != 60 {
		t.Fatalf("expected offset 60, got %v", off)
	}

	g = Geometry{AreaSize: 50, HandleSize: 80}
	if off := g.MaxOffset(); off != 0 {
		t.Fatalf("expected offset 0 for oversized handle, got %v", off)
	}
}

// TestGeometryForWidth verifies derivation from the screen width.
func TestGeometryForWidth(t *testing.T) {
	g := GeometryForWidth(1000)
	if g.AreaSize != 600 {
		t.Fatalf("expected area 600, got %v", g.AreaSize)
	}
	if g.HandleSize != 240 {
		t.Fatalf("expected handle 240, got %v", g.HandleSize)
	}
	if g.MaxOffset() != 180 {
		t.Fatalf("expected offset 180, got %v", g.MaxOffset())
	}
}
