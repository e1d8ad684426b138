package voronoi

import (
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	f := func(p0, p1 Point, want Rect) {
		if got := NewRectFromPoints(p0, p1); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	f(Pt(0, 0), Pt(10, 20), Rect{0, 0, 10, 20})
	f(Pt(10, 20), Pt(0, 0), Rect{0, 0, 10, 20})
	f(Pt(10, 0), Pt(0, 20), Rect{0, 0, 10, 20})
}

func TestRectUnion(t *testing.T) {
	diff(t, Rect{0, 0, 10, 10}, Rect{0, 0, 1, 1}.Union(Rect{5, 5, 10, 10}))
	diff(t, Rect{-2, 0, 1, 3}, Rect{0, 0, 1, 1}.UnionPoint(Pt(-2, 3)))
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if !r.Contains(Pt(5, 5)) {
		t.Error("expected rect to contain its center")
	}
	if r.Contains(Pt(10, 5)) {
		t.Error("expected rect not to contain a point on its right edge")
	}
	if got, want := r.Inflate(1, 2), (Rect{-1, -2, 11, 12}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
