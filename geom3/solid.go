package geom3

import (
	"math"
	"slices"

	"github.com/golang/geo/r3"
)

// Solid is a colored collection of faces.
type Solid struct {
	Color string
	faces []Face
}

func NewSolid(color string, faces ...Face) Solid {
	return Solid{Color: color, faces: slices.Clone(faces)}
}

// Faces returns a copy of the face list.
func (s Solid) Faces() []Face {
	return slices.Clone(s.faces)
}

// Translate returns the solid moved by v.
func (s Solid) Translate(v r3.Vector) Solid {
	return s.mapVertices(func(pt Point3) Point3 { return pt.Add(v) })
}

// Scale returns the solid scaled uniformly about the origin.
func (s Solid) Scale(f float64) Solid {
	return s.mapVertices(func(pt Point3) Point3 { return pt.Mul(f) })
}

// RotateX returns the solid rotated by th radians about the x-axis.
func (s Solid) RotateX(th float64) Solid {
	sin, cos := math.Sincos(th)
	return s.mapVertices(func(pt Point3) Point3 {
		return Pt3(pt.X, cos*pt.Y-sin*pt.Z, sin*pt.Y+cos*pt.Z)
	})
}

// RotateY returns the solid rotated by th radians about the y-axis.
func (s Solid) RotateY(th float64) Solid {
	sin, cos := math.Sincos(th)
	return s.mapVertices(func(pt Point3) Point3 {
		return Pt3(cos*pt.X+sin*pt.Z, pt.Y, -sin*pt.X+cos*pt.Z)
	})
}

// RotateZ returns the solid rotated by th radians about the z-axis.
func (s Solid) RotateZ(th float64) Solid {
	sin, cos := math.Sincos(th)
	return s.mapVertices(func(pt Point3) Point3 {
		return Pt3(cos*pt.X-sin*pt.Y, sin*pt.X+cos*pt.Y, pt.Z)
	})
}

func (s Solid) mapVertices(m func(Point3) Point3) Solid {
	faces := make([]Face, len(s.faces))
	for i, f := range s.faces {
		faces[i] = f.mapVertices(m)
	}
	return Solid{Color: s.Color, faces: faces}
}

// Box returns an axis-aligned box with one corner at origin and the
// diagonally opposite corner at origin+size. Face normals point outward.
func Box(origin Point3, size r3.Vector, color string) Solid {
	a := origin
	b := origin.Add(size)
	return NewSolid(color,
		mustFace(Pt3(a.X, a.Y, a.Z), Pt3(a.X, b.Y, a.Z), Pt3(b.X, b.Y, a.Z), Pt3(b.X, a.Y, a.Z)), // bottom
		mustFace(Pt3(a.X, a.Y, b.Z), Pt3(b.X, a.Y, b.Z), Pt3(b.X, b.Y, b.Z), Pt3(a.X, b.Y, b.Z)), // top
		mustFace(Pt3(a.X, a.Y, a.Z), Pt3(b.X, a.Y, a.Z), Pt3(b.X, a.Y, b.Z), Pt3(a.X, a.Y, b.Z)), // front
		mustFace(Pt3(b.X, a.Y, a.Z), Pt3(b.X, b.Y, a.Z), Pt3(b.X, b.Y, b.Z), Pt3(b.X, a.Y, b.Z)), // right
		mustFace(Pt3(b.X, b.Y, a.Z), Pt3(a.X, b.Y, a.Z), Pt3(a.X, b.Y, b.Z), Pt3(b.X, b.Y, b.Z)), // back
		mustFace(Pt3(a.X, b.Y, a.Z), Pt3(a.X, a.Y, a.Z), Pt3(a.X, a.Y, b.Z), Pt3(a.X, b.Y, b.Z)), // left
	)
}

// Cube returns an axis-aligned cube with one corner at origin.
func Cube(origin Point3, side float64, color string) Solid {
	return Box(origin, Pt3(side, side, side), color)
}

// Pyramid returns a rectangular-base pyramid. The base sits in the plane
// z = origin.Z with one corner at origin; the apex is centered height above
// the base.
func Pyramid(origin Point3, width, depth, height float64, color string) Solid {
	a := origin
	b := origin.Add(Pt3(width, depth, 0))
	apex := origin.Add(Pt3(width/2, depth/2, height))
	return NewSolid(color,
		mustFace(Pt3(a.X, a.Y, a.Z), Pt3(a.X, b.Y, a.Z), Pt3(b.X, b.Y, a.Z), Pt3(b.X, a.Y, a.Z)), // base
		mustFace(Pt3(a.X, a.Y, a.Z), Pt3(b.X, a.Y, a.Z), apex),
		mustFace(Pt3(b.X, a.Y, a.Z), Pt3(b.X, b.Y, a.Z), apex),
		mustFace(Pt3(b.X, b.Y, a.Z), Pt3(a.X, b.Y, a.Z), apex),
		mustFace(Pt3(a.X, b.Y, a.Z), Pt3(a.X, a.Y, a.Z), apex),
	)
}

// WithColor returns the solid restyled with the given color.
func (s Solid) WithColor(color string) Solid {
	s.Color = color
	return s
}
