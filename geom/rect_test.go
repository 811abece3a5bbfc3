package geom

import (
	"testing"
)

func TestRectAccessors(t *testing.T) {
	r := Rect{2, 3, 10, 7}
	assertNear(t, 8, r.Width(), 1e-12)
	assertNear(t, 4, r.Height(), 1e-12)
	assertNear(t, 32, r.Area(), 1e-12)
	diff(t, Pt(6, 5), r.Center())
	assertNear(t, 0.5, r.AspectRatio(), 1e-12)

	flipped := Rect{10, 7, 2, 3}
	diff(t, r, flipped.Abs())
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	f := func(pt Point, want bool) {
		t.Helper()
		if got := r.Contains(pt); got != want {
			t.Errorf("Contains(%v): got %t, want %t", pt, got, want)
		}
	}
	f(Pt(5, 5), true)
	f(Pt(0, 0), true)
	f(Pt(10, 10), true)
	f(Pt(10, 5), true)
	f(Pt(10.001, 5), false)
	f(Pt(-1, 5), false)
}

func TestRectUnionIntersect(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 15, 20}
	diff(t, Rect{0, 0, 15, 20}, a.Union(b))
	diff(t, Rect{5, 5, 10, 10}, a.Intersect(b))

	disjoint := Rect{20, 20, 30, 30}
	if !a.Intersect(disjoint).IsEmpty() {
		t.Error("intersection of disjoint rects should be empty")
	}

	diff(t, Rect{0, 0, 12, 10}, a.UnionPoint(Pt(12, 4)))
}

func TestRectInset(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	diff(t, Rect{2, 2, 8, 8}, r.Inset(2))
	diff(t, Rect{-1, -1, 11, 11}, r.Inset(-1))
}

func TestRectVerticesOrientation(t *testing.T) {
	pg := (Rect{0, 0, 10, 5}).Polygon()
	if area := pg.SignedArea(); area <= 0 {
		t.Errorf("rect polygon has area %v, want positive", area)
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 5), Pt(0, 5)}, pg.Vertices())
}
