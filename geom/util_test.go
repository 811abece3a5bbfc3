package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want, got, epsilon float64) {
	t.Helper()
	if math.Abs(want-got) > epsilon {
		t.Errorf("got %v, want %v (within %v)", got, want, epsilon)
	}
}

// polygonCmp lets go-cmp look inside the shape types that keep their
// vertices unexported.
func polygonCmp() cmp.Option {
	return cmp.AllowUnexported(Polygon{}, Polyline{})
}

// vertsOf flattens polygons to their vertex rings for comparison, since
// Polygon keeps its vertices unexported.
func vertsOf(pgs []Polygon) [][]Point {
	out := make([][]Point, len(pgs))
	for i, pg := range pgs {
		out[i] = pg.Vertices()
	}
	return out
}

func mustPolygon(t *testing.T, pts ...Point) Polygon {
	t.Helper()
	pg, err := NewPolygon(pts)
	if err != nil {
		t.Fatal(err)
	}
	return pg
}
