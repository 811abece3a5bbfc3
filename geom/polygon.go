package geom

import (
	"fmt"
	"slices"
)

// Polygon is a closed, non-self-intersecting ring of vertices. The closing
// edge from the last vertex back to the first is implicit. Construction goes
// through [NewPolygon], which normalizes the ring to positive orientation
// (counter-clockwise in a y-up frame, positive shoelace area); the nonzero
// winding rule decides containment.
type Polygon struct {
	pts []Point
}

// NewPolygon builds a polygon from a vertex ring. A repeated closing vertex
// and consecutive duplicate vertices are dropped. Rings with fewer than three
// distinct vertices or with self-intersections are [ErrInvalidGeometry].
func NewPolygon(pts []Point) (Polygon, error) {
	cleaned := make([]Point, 0, len(pts))
	tol := Tolerance{}
	for _, pt := range pts {
		if len(cleaned) > 0 && tol.EqPoint(cleaned[len(cleaned)-1], pt) {
			continue
		}
		cleaned = append(cleaned, pt)
	}
	if len(cleaned) > 1 && tol.EqPoint(cleaned[0], cleaned[len(cleaned)-1]) {
		cleaned = cleaned[:len(cleaned)-1]
	}
	if len(cleaned) < 3 {
		return Polygon{}, invalidGeometryf("polygon needs 3 distinct vertices, got %d", len(cleaned))
	}
	pg := Polygon{pts: cleaned}
	if pg.SignedArea() < 0 {
		slices.Reverse(pg.pts)
	}
	// Collinear rings have no crossing edges, so the self-intersection scan
	// can't see them; they show up as vanishing area.
	diag := pg.Bounds().Diagonal()
	if tol.Scaled(diag * diag).IsZero(pg.SignedArea()) {
		return Polygon{}, invalidGeometryf("polygon has zero area")
	}
	if i, j, ok := pg.selfIntersection(); ok {
		return Polygon{}, invalidGeometryf("polygon self-intersects between edges %d and %d", i, j)
	}
	return pg, nil
}

func (pg Polygon) String() string {
	return fmt.Sprintf("Polygon%v", pg.pts)
}

// Len returns the number of vertices.
func (pg Polygon) Len() int {
	return len(pg.pts)
}

// At returns the i-th vertex, with the index taken modulo the vertex count.
func (pg Polygon) At(i int) Point {
	n := len(pg.pts)
	return pg.pts[((i%n)+n)%n]
}

// Vertices returns a copy of the vertex ring.
func (pg Polygon) Vertices() []Point {
	return slices.Clone(pg.pts)
}

// Segments returns the polygon's edges in order, including the closing edge.
func (pg Polygon) Segments() []Segment {
	segs := make([]Segment, len(pg.pts))
	for i, pt := range pg.pts {
		segs[i] = Segment{P0: pt, P1: pg.At(i + 1)}
	}
	return segs
}

// SignedArea returns the polygon's signed area by the shoelace formula.
// Positive for counter-clockwise rings in a y-up frame.
func (pg Polygon) SignedArea() float64 {
	var area float64
	for i, pt := range pg.pts {
		next := pg.At(i + 1)
		area += 0.5 * (pt.X*next.Y - next.X*pt.Y)
	}
	return area
}

// isLeft returns positive if pt is left of the line p0→p1, negative if right,
// 0 if on it.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// Winding returns the winding number of pt with respect to the polygon,
// using a horizontal ray cast to the right.
func (pg Polygon) Winding(pt Point) int {
	var winding int
	for i, p0 := range pg.pts {
		p1 := pg.At(i + 1)
		if p0.Y <= pt.Y && p1.Y > pt.Y {
			// upward crossing
			if isLeft(p0, p1, pt) > 0 {
				winding++
			}
		} else if p0.Y > pt.Y && p1.Y <= pt.Y {
			// downward crossing
			if isLeft(p0, p1, pt) < 0 {
				winding--
			}
		}
	}
	return winding
}

// Contains reports whether pt lies strictly inside the polygon under the
// nonzero winding rule. Points on the boundary are not contained; use
// [Polygon.Location] to distinguish them.
func (pg Polygon) Contains(pt Point) bool {
	return pg.Location(pt, Tolerance{}) == LocInside
}

// PointLocation classifies a point against a polygon.
type PointLocation int

const (
	LocOutside PointLocation = iota
	LocInside
	LocOnBoundary
)

func (loc PointLocation) String() string {
	switch loc {
	case LocOutside:
		return "outside"
	case LocInside:
		return "inside"
	case LocOnBoundary:
		return "on boundary"
	default:
		return fmt.Sprintf("PointLocation(%d)", int(loc))
	}
}

// Location classifies pt as outside, inside, or on the boundary of the
// polygon, within the tolerance.
func (pg Polygon) Location(pt Point, tol Tolerance) PointLocation {
	for _, sg := range pg.Segments() {
		if sg.OnSegment(pt, tol) {
			return LocOnBoundary
		}
	}
	if pg.Winding(pt) != 0 {
		return LocInside
	}
	return LocOutside
}

// Bounds returns the polygon's bounding box.
func (pg Polygon) Bounds() Rect {
	bbox := Rect{X0: pg.pts[0].X, Y0: pg.pts[0].Y, X1: pg.pts[0].X, Y1: pg.pts[0].Y}
	for _, pt := range pg.pts[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Transform applies an affine transform to every vertex and returns the
// resulting polygon, re-normalized to positive orientation (a transform with
// negative determinant flips the winding).
func (pg Polygon) Transform(aff Affine) Polygon {
	pts := make([]Point, len(pg.pts))
	for i, pt := range pg.pts {
		pts[i] = pt.Transform(aff)
	}
	out := Polygon{pts: pts}
	if out.SignedArea() < 0 {
		slices.Reverse(out.pts)
	}
	return out
}

func (pg Polygon) Translate(v Vec2) Polygon {
	pts := make([]Point, len(pg.pts))
	for i, pt := range pg.pts {
		pts[i] = pt.Translate(v)
	}
	return Polygon{pts: pts}
}

// Canonical returns the polygon rotated so that its lexicographically
// smallest vertex comes first. Two equal rings always canonicalize to the
// same vertex sequence, regardless of which vertex they started at.
func (pg Polygon) Canonical() Polygon {
	start := 0
	for i, pt := range pg.pts {
		if pt.Less(pg.pts[start]) {
			start = i
		}
	}
	pts := make([]Point, 0, len(pg.pts))
	pts = append(pts, pg.pts[start:]...)
	pts = append(pts, pg.pts[:start]...)
	return Polygon{pts: pts}
}

// EqualWithin reports whether two polygons describe the same ring, up to
// cyclic rotation of the start vertex, within the tolerance.
func (pg Polygon) EqualWithin(o Polygon, tol Tolerance) bool {
	if len(pg.pts) != len(o.pts) {
		return false
	}
	a, b := pg.Canonical(), o.Canonical()
	for i := range a.pts {
		if !tol.EqPoint(a.pts[i], b.pts[i]) {
			return false
		}
	}
	return true
}

// selfIntersection looks for a crossing between non-adjacent edges.
func (pg Polygon) selfIntersection() (int, int, bool) {
	segs := pg.Segments()
	n := len(segs)
	tol := Tolerance{}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent around the closing edge
			}
			isxn, ok := segs[i].Intersect(segs[j], tol)
			if !ok {
				continue
			}
			// Touching at shared endpoints is fine; crossings are not.
			interior := func(t float64) bool { return t > tol.epsilon() && t < 1-tol.epsilon() }
			if interior(isxn.T) || interior(isxn.U) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Multipolygon is a set of disjoint polygons treated as one object, such as
// an archipelago from a GeoJSON MultiPolygon feature.
type Multipolygon []Polygon

// Bounds returns the union bounding box of all member polygons. It panics on
// an empty multipolygon; constructing one is a programmer error.
func (mp Multipolygon) Bounds() Rect {
	bbox := mp[0].Bounds()
	for _, pg := range mp[1:] {
		bbox = bbox.Union(pg.Bounds())
	}
	return bbox
}

// Transform applies an affine transform to every member polygon.
func (mp Multipolygon) Transform(aff Affine) Multipolygon {
	out := make(Multipolygon, len(mp))
	for i, pg := range mp {
		out[i] = pg.Transform(aff)
	}
	return out
}
