package geom3

import (
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r3"

	"github.com/inkplot/inkplot/geom"
)

// Point3 is a point or direction in 3-space.
type Point3 = r3.Vector

// Pt3 is a shorthand for constructing a point.
func Pt3(x, y, z float64) Point3 {
	return r3.Vector{X: x, Y: y, Z: z}
}

// Face is a planar polygon in 3-space, described by its boundary ring. The
// ring's winding, viewed against the face normal, is counter-clockwise.
type Face struct {
	pts []Point3
}

// NewFace returns a face over the given boundary ring. A closing duplicate
// of the first vertex is dropped. Rings with fewer than three distinct
// vertices or non-finite coordinates return an error wrapping
// [geom.ErrInvalidGeometry].
func NewFace(pts []Point3) (Face, error) {
	pts = slices.Clone(pts)
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	pts = slices.Compact(pts)
	if len(pts) < 3 {
		return Face{}, fmt.Errorf("face with %d distinct vertices: %w", len(pts), geom.ErrInvalidGeometry)
	}
	for _, pt := range pts {
		if math.IsNaN(pt.X+pt.Y+pt.Z) || math.IsInf(pt.X+pt.Y+pt.Z, 0) {
			return Face{}, fmt.Errorf("face with non-finite vertex %v: %w", pt, geom.ErrInvalidGeometry)
		}
	}
	return Face{pts: pts}, nil
}

func mustFace(pts ...Point3) Face {
	f, err := NewFace(pts)
	if err != nil {
		panic(err)
	}
	return f
}

// Vertices returns a copy of the boundary ring.
func (f Face) Vertices() []Point3 {
	return slices.Clone(f.pts)
}

func (f Face) Len() int {
	return len(f.pts)
}

// Centroid returns the mean of the boundary vertices.
func (f Face) Centroid() Point3 {
	var sum Point3
	for _, pt := range f.pts {
		sum = sum.Add(pt)
	}
	return sum.Mul(1 / float64(len(f.pts)))
}

// Normal returns the face normal computed with Newell's method, normalized.
// The normal points toward a viewer who sees the ring counter-clockwise.
func (f Face) Normal() r3.Vector {
	var n r3.Vector
	for i, cur := range f.pts {
		next := f.pts[(i+1)%len(f.pts)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n.Normalize()
}

// Translate returns the face moved by v.
func (f Face) Translate(v r3.Vector) Face {
	return f.mapVertices(func(pt Point3) Point3 { return pt.Add(v) })
}

func (f Face) mapVertices(m func(Point3) Point3) Face {
	pts := make([]Point3, len(f.pts))
	for i, pt := range f.pts {
		pts[i] = m(pt)
	}
	return Face{pts: pts}
}
