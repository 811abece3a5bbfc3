package geom

import (
	"fmt"
	"slices"
)

// Polyline is an open chain of two or more vertices, the natural shape of a
// single pen stroke. GeoJSON LineStrings ingest as polylines.
type Polyline struct {
	pts []Point
}

// NewPolyline builds a polyline from a vertex chain, dropping consecutive
// duplicate vertices. Chains with fewer than two distinct vertices are
// [ErrInvalidGeometry].
func NewPolyline(pts []Point) (Polyline, error) {
	cleaned := make([]Point, 0, len(pts))
	tol := Tolerance{}
	for _, pt := range pts {
		if len(cleaned) > 0 && tol.EqPoint(cleaned[len(cleaned)-1], pt) {
			continue
		}
		cleaned = append(cleaned, pt)
	}
	if len(cleaned) < 2 {
		return Polyline{}, invalidGeometryf("polyline needs 2 distinct vertices, got %d", len(cleaned))
	}
	return Polyline{pts: cleaned}, nil
}

func (pl Polyline) String() string {
	return fmt.Sprintf("Polyline%v", pl.pts)
}

// Len returns the number of vertices.
func (pl Polyline) Len() int {
	return len(pl.pts)
}

// Vertices returns a copy of the vertex chain.
func (pl Polyline) Vertices() []Point {
	return slices.Clone(pl.pts)
}

// Segments returns the chain's edges in pen-travel order.
func (pl Polyline) Segments() []Segment {
	segs := make([]Segment, len(pl.pts)-1)
	for i := range segs {
		segs[i] = Segment{P0: pl.pts[i], P1: pl.pts[i+1]}
	}
	return segs
}

// Length returns the total arc length of the chain.
func (pl Polyline) Length() float64 {
	var total float64
	for _, sg := range pl.Segments() {
		total += sg.Length()
	}
	return total
}

// Bounds returns the polyline's bounding box.
func (pl Polyline) Bounds() Rect {
	bbox := Rect{X0: pl.pts[0].X, Y0: pl.pts[0].Y, X1: pl.pts[0].X, Y1: pl.pts[0].Y}
	for _, pt := range pl.pts[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Transform applies an affine transform to every vertex.
func (pl Polyline) Transform(aff Affine) Polyline {
	pts := make([]Point, len(pl.pts))
	for i, pt := range pl.pts {
		pts[i] = pt.Transform(aff)
	}
	return Polyline{pts: pts}
}

func (pl Polyline) Translate(v Vec2) Polyline {
	pts := make([]Point, len(pl.pts))
	for i, pt := range pl.pts {
		pts[i] = pt.Translate(v)
	}
	return Polyline{pts: pts}
}

// Reversed returns the polyline with its travel direction flipped.
func (pl Polyline) Reversed() Polyline {
	pts := slices.Clone(pl.pts)
	slices.Reverse(pts)
	return Polyline{pts: pts}
}
