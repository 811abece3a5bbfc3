package geom

import "fmt"

// Shape is the closed sum over the drawable geometry kinds: [Point],
// [Segment], [Polyline], [Polygon] and [Multipolygon]. Pipeline stages
// switch exhaustively over the concrete types; there is no behavior on the
// interface itself, so adding a stage means writing one total switch, not
// touching every kind.
type Shape interface {
	isShape()
}

func (Point) isShape()        {}
func (Segment) isShape()      {}
func (Polyline) isShape()     {}
func (Polygon) isShape()      {}
func (Multipolygon) isShape() {}

// TransformShape applies an affine transform to any shape, returning a new
// value of the same kind. It panics on an unknown kind; the sum is closed.
func TransformShape(s Shape, aff Affine) Shape {
	switch s := s.(type) {
	case Point:
		return s.Transform(aff)
	case Segment:
		return s.Transform(aff)
	case Polyline:
		return s.Transform(aff)
	case Polygon:
		return s.Transform(aff)
	case Multipolygon:
		return s.Transform(aff)
	default:
		panic(fmt.Sprintf("geom: unknown shape %T", s))
	}
}

// BoundsOf returns the smallest axis-aligned rectangle containing the shape.
// A zero-vertex shape can't occur through the package constructors, so there
// is no failure mode here; passing an unknown kind panics.
func BoundsOf(s Shape) Rect {
	switch s := s.(type) {
	case Point:
		return Rect{X0: s.X, Y0: s.Y, X1: s.X, Y1: s.Y}
	case Segment:
		return s.Bounds()
	case Polyline:
		return s.Bounds()
	case Polygon:
		return s.Bounds()
	case Multipolygon:
		return s.Bounds()
	default:
		panic(fmt.Sprintf("geom: unknown shape %T", s))
	}
}
