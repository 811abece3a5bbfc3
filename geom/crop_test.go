package geom

import (
	"errors"
	"testing"
)

func TestIntersectionTriangleFrame(t *testing.T) {
	var tol Tolerance
	tri := mustPolygon(t, Pt(0, 0), Pt(20, 0), Pt(10, 20))
	frame := Rect{5, 5, 15, 15}

	got, err := Intersection(tri, frame.Polygon(), tol)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]Point{{
		Pt(5, 5), Pt(15, 5), Pt(15, 10), Pt(12.5, 15), Pt(7.5, 15), Pt(5, 10),
	}}
	diff(t, want, vertsOf(got))
}

func TestIntersectionContained(t *testing.T) {
	// a polygon entirely inside the frame comes back as-is
	var tol Tolerance
	pg := mustPolygon(t, Pt(6, 6), Pt(9, 6), Pt(9, 9), Pt(6, 9))
	frame := Rect{5, 5, 15, 15}

	got, err := Intersection(pg, frame.Polygon(), tol)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].EqualWithin(pg, tol) {
		t.Errorf("got %v, want the original polygon", got)
	}

	// clipping again changes nothing
	again, err := Intersection(got[0], frame.Polygon(), tol)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 1 || !again[0].EqualWithin(got[0], tol) {
		t.Errorf("second clip changed the result: %v", again)
	}
}

func TestIntersectionDisjoint(t *testing.T) {
	var tol Tolerance
	a := mustPolygon(t, Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	b := mustPolygon(t, Pt(5, 5), Pt(6, 5), Pt(6, 6), Pt(5, 6))
	got, err := Intersection(a, b, tol)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestUnionSelf(t *testing.T) {
	var tol Tolerance
	pg := mustPolygon(t, Pt(0, 0), Pt(20, 0), Pt(10, 20))
	got, err := Union(pg, pg, tol)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].EqualWithin(pg, tol) {
		t.Errorf("got %v, want the polygon itself", got)
	}
}

func TestUnionOverlap(t *testing.T) {
	var tol Tolerance
	a := mustPolygon(t, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	b := mustPolygon(t, Pt(5, 0), Pt(15, 0), Pt(15, 10), Pt(5, 10))
	got, err := Union(a, b, tol)
	if err != nil {
		t.Fatal(err)
	}
	want := mustPolygon(t, Pt(0, 0), Pt(15, 0), Pt(15, 10), Pt(0, 10))
	if len(got) != 1 || !got[0].EqualWithin(want, tol) {
		t.Errorf("got %v, want %v", got, want)
	}
	assertNear(t, 150, got[0].SignedArea(), 1e-6)
}

func TestDifferenceSplit(t *testing.T) {
	// subtracting a strip that spans the subject splits it in two
	var tol Tolerance
	a := mustPolygon(t, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	strip := mustPolygon(t, Pt(4, -1), Pt(6, -1), Pt(6, 11), Pt(4, 11))

	got, err := Difference(a, strip, tol)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]Point{
		{Pt(0, 0), Pt(4, 0), Pt(4, 10), Pt(0, 10)},
		{Pt(6, 0), Pt(10, 0), Pt(10, 10), Pt(6, 10)},
	}
	diff(t, want, vertsOf(got))
}

func TestDifferenceCovered(t *testing.T) {
	var tol Tolerance
	a := mustPolygon(t, Pt(2, 2), Pt(8, 2), Pt(8, 8), Pt(2, 8))
	b := mustPolygon(t, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	got, err := Difference(a, b, tol)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestBooleanInvalidInput(t *testing.T) {
	var tol Tolerance
	pg := mustPolygon(t, Pt(0, 0), Pt(10, 0), Pt(10, 10))
	if _, err := Union(pg, Polygon{}, tol); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got %v, want ErrInvalidGeometry", err)
	}
}

func TestCropObjectInside(t *testing.T) {
	var tol Tolerance
	frame := Rect{0, 0, 100, 100}
	obj := NewObject(mustPolygon(t, Pt(10, 10), Pt(20, 10), Pt(15, 20)), "red").
		WithTags(Tag{Key: "kind", Value: "test"})

	got, err := Crop(obj, frame, tol)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Object{obj}, got, polygonCmp())
}

func TestCropObjectOutside(t *testing.T) {
	var tol Tolerance
	frame := Rect{0, 0, 10, 10}
	f := func(s Shape) {
		t.Helper()
		got, err := Crop(NewObject(s, "black"), frame, tol)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("Crop(%v): got %v, want empty", s, got)
		}
	}
	f(Pt(50, 50))
	f(Sg(Pt(20, 20), Pt(30, 30)))
	tri := mustPolygon(t, Pt(20, 20), Pt(30, 20), Pt(25, 30))
	f(tri)
}

func TestCropPolylineReentry(t *testing.T) {
	// a polyline that leaves the frame and comes back splits in two
	var tol Tolerance
	frame := Rect{0, 0, 10, 10}
	pl, err := NewPolyline([]Point{Pt(2, 5), Pt(2, 15), Pt(8, 15), Pt(8, 5)})
	if err != nil {
		t.Fatal(err)
	}

	got, err := Crop(NewObject(pl, "blue"), frame, tol)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d pieces, want 2", len(got))
	}
	left := got[0].Shape.(Polyline)
	right := got[1].Shape.(Polyline)
	diff(t, []Point{Pt(2, 5), Pt(2, 10)}, left.Vertices())
	diff(t, []Point{Pt(8, 10), Pt(8, 5)}, right.Vertices())
	for _, o := range got {
		if o.Color != "blue" {
			t.Errorf("piece lost its color: %q", o.Color)
		}
	}
}

func TestCropPolygonStraddling(t *testing.T) {
	var tol Tolerance
	frame := Rect{5, 5, 15, 15}
	tri := mustPolygon(t, Pt(0, 0), Pt(20, 0), Pt(10, 20))

	got, err := Crop(NewObject(tri, "green"), frame, tol)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d pieces, want 1", len(got))
	}
	pg := got[0].Shape.(Polygon)
	want := [][]Point{{
		Pt(5, 5), Pt(15, 5), Pt(15, 10), Pt(12.5, 15), Pt(7.5, 15), Pt(5, 10),
	}}
	diff(t, want, vertsOf([]Polygon{pg}))
	if got[0].Color != "green" {
		t.Errorf("piece lost its color: %q", got[0].Color)
	}
}
