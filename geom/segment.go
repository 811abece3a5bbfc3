package geom

import "fmt"

// Segment is a directed line segment. Direction matters for path emission
// (the pen travels P0 → P1) but not for the set predicates in this file.
type Segment struct {
	P0 Point
	P1 Point
}

// Sg returns the segment from p0 to p1.
func Sg(p0, p1 Point) Segment {
	return Segment{P0: p0, P1: p1}
}

func (sg Segment) String() string {
	return fmt.Sprintf("%s→%s", sg.P0, sg.P1)
}

// Length returns the length of the segment.
func (sg Segment) Length() float64 {
	return sg.P1.Sub(sg.P0).Hypot()
}

// Eval evaluates the segment at t ∈ [0, 1], interpolating from P0 to P1.
func (sg Segment) Eval(t float64) Point {
	return sg.P0.Lerp(sg.P1, t)
}

// Midpoint returns the segment's midpoint.
func (sg Segment) Midpoint() Point {
	return sg.P0.Midpoint(sg.P1)
}

// Reversed returns the segment with its direction flipped.
func (sg Segment) Reversed() Segment {
	return Segment{P0: sg.P1, P1: sg.P0}
}

func (sg Segment) Translate(v Vec2) Segment {
	return Segment{
		P0: sg.P0.Translate(v),
		P1: sg.P1.Translate(v),
	}
}

func (sg Segment) Transform(aff Affine) Segment {
	return Segment{
		P0: sg.P0.Transform(aff),
		P1: sg.P1.Transform(aff),
	}
}

// Bounds returns the segment's bounding box.
func (sg Segment) Bounds() Rect {
	return NewRectFromPoints(sg.P0, sg.P1)
}

// OnSegment reports whether pt lies on the segment, within the tolerance.
func (sg Segment) OnSegment(pt Point, tol Tolerance) bool {
	d := sg.P1.Sub(sg.P0)
	v := pt.Sub(sg.P0)
	eps := tol.Scaled(sg.Length()).epsilon()
	// Perpendicular distance from the carrier line, then range along it.
	if d.Hypot() == 0 {
		return pt.Distance(sg.P0) <= eps
	}
	if dist := d.Cross(v) / d.Hypot(); dist > eps || dist < -eps {
		return false
	}
	t := v.Dot(d) / d.Hypot2()
	return t >= -tol.epsilon() && t <= 1+tol.epsilon()
}

// SegmentIntersection describes a single-point intersection of two segments.
// T and U are the parameters of the intersection point along the first and
// second segment respectively, both in [0, 1].
type SegmentIntersection struct {
	Point Point
	T     float64
	U     float64
}

// Intersect computes the intersection of two segments, if there is exactly
// one. Collinear overlaps and parallel segments report no intersection; the
// crop engine resolves shared edges through containment tests instead.
func (sg Segment) Intersect(o Segment, tol Tolerance) (SegmentIntersection, bool) {
	d1 := sg.P1.Sub(sg.P0)
	d2 := o.P1.Sub(o.P0)
	denom := d1.Cross(d2)
	scale := max(d1.Hypot(), d2.Hypot())
	if tol.Scaled(scale * scale).IsZero(denom) {
		return SegmentIntersection{}, false
	}
	w := o.P0.Sub(sg.P0)
	t := w.Cross(d2) / denom
	u := w.Cross(d1) / denom
	eps := tol.epsilon()
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return SegmentIntersection{}, false
	}
	t = min(max(t, 0), 1)
	u = min(max(u, 0), 1)
	return SegmentIntersection{
		Point: sg.Eval(t),
		T:     t,
		U:     u,
	}, true
}

// Clip clips the segment to a rectangle using the Liang–Barsky parametric
// test. The second return value is false if the segment lies entirely outside
// the rectangle.
func (sg Segment) Clip(r Rect) (Segment, bool) {
	r = r.Abs()
	t0, t1 := 0.0, 1.0
	dx := sg.P1.X - sg.P0.X
	dy := sg.P1.Y - sg.P0.Y

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	if !clip(-dx, sg.P0.X-r.X0) ||
		!clip(dx, r.X1-sg.P0.X) ||
		!clip(-dy, sg.P0.Y-r.Y0) ||
		!clip(dy, r.Y1-sg.P0.Y) {
		return Segment{}, false
	}
	return Segment{
		P0: sg.Eval(t0),
		P1: sg.Eval(t1),
	}, true
}
