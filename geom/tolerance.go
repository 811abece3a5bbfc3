package geom

import "math"

// DefaultEpsilon is the package-wide comparison tolerance. Geometric
// predicates treat coordinates closer than this (scaled by the magnitude of
// the geometry involved, see [Tolerance.Scaled]) as equal, absorbing the
// floating-point error that accumulates across transform and intersection
// chains. It is deliberately a constant rather than a per-call knob so that
// every stage of a pipeline run agrees on what "equal" means.
const DefaultEpsilon = 1e-9

// Tolerance carries the epsilon used by geometric predicates. The zero value
// means [DefaultEpsilon]. It is passed explicitly rather than kept in global
// state so tests can tighten or loosen comparisons locally.
type Tolerance struct {
	Epsilon float64
}

func (tol Tolerance) epsilon() float64 {
	if tol.Epsilon == 0 {
		return DefaultEpsilon
	}
	return tol.Epsilon
}

// Scaled returns a tolerance whose epsilon is scaled relative to the given
// magnitude, typically a bounding-box diagonal. Magnitudes below 1 don't
// shrink the epsilon.
func (tol Tolerance) Scaled(magnitude float64) Tolerance {
	return Tolerance{Epsilon: tol.epsilon() * max(1, math.Abs(magnitude))}
}

// EqCoord reports whether two coordinates are equal under the tolerance.
func (tol Tolerance) EqCoord(a, b float64) bool {
	return math.Abs(a-b) <= tol.epsilon()
}

// EqPoint reports whether two points are equal under the tolerance.
func (tol Tolerance) EqPoint(a, b Point) bool {
	return tol.EqCoord(a.X, b.X) && tol.EqCoord(a.Y, b.Y)
}

// IsZero reports whether v is zero under the tolerance.
func (tol Tolerance) IsZero(v float64) bool {
	return math.Abs(v) <= tol.epsilon()
}
