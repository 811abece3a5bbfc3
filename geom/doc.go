// Package geom provides the 2D primitives and polygon boolean operations that
// the rest of the pipeline is built on.
//
// # Primitives
//
// The core types are [Point], [Vec2], [Affine], [Rect], [Segment], [Polyline],
// [Polygon] and [Multipolygon]. All of them are plain value types: operations
// return new values and never mutate their receivers, so primitives can be
// shared freely between pipeline stages.
//
// [Shape] is the closed sum over the drawable kinds. Pipeline stages switch
// exhaustively over it rather than dispatching through methods; see
// [TransformShape] and [BoundsOf] for the pattern.
//
// # Winding and containment
//
// Polygons are stored with positive (counter-clockwise in a y-up frame)
// orientation; constructors normalize the vertex order. Containment tests use
// the nonzero winding rule. Every predicate that compares coordinates does so
// under a [Tolerance]; the package default is [DefaultEpsilon].
//
// # Boolean operations
//
// [Intersection], [Difference] and [Union] compute polygon boolean operations
// on a vertex-arena graph; see crop.go. Degenerate inputs (fewer than three
// distinct vertices, self-intersections) are reported as
// [ErrInvalidGeometry], never silently repaired.
package geom
