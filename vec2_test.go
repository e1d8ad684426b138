package voronoi

import (
	"math"
	"testing"
)

func TestVec2Products(t *testing.T) {
	if got := Vec(1, 2).Dot(Vec(3, 4)); got != 11 {
		t.Errorf("got dot product %v, want 11", got)
	}
	if got := Vec(1, 2).Cross(Vec(3, 4)); got != -2 {
		t.Errorf("got cross product %v, want -2", got)
	}
}

func TestVec2Turn90(t *testing.T) {
	diff(t, Vec(0, 1), Vec(1, 0).Turn90())
	diff(t, Vec(-1, 0), Vec(0, 1).Turn90())
	// A quarter turn preserves cross products.
	u, v := Vec(3, -1), Vec(2, 5)
	if a, b := u.Cross(v), u.Turn90().Cross(v.Turn90()); a != b {
		t.Errorf("got cross products %v and %v, expected them to be equal", a, b)
	}
}

func TestVec2Normalize(t *testing.T) {
	diff(t, Vec(0, -1), Vec(0, -3).Normalize())
	if got := Vec(3, 4).Normalize().Hypot(); math.Abs(got-1) > 1e-15 {
		t.Errorf("got magnitude %v, want 1", got)
	}
}
