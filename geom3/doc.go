// Package geom3 projects three-dimensional solids to styled two-dimensional
// objects under a configurable camera.
//
// Points are [github.com/golang/geo/r3.Vector] values. A [Face] is a planar
// boundary ring, a [Solid] a colored set of faces. [Render] applies a look-at
// view transform with either a perspective or an orthographic projection and
// optionally removes hidden lines with a painter's-algorithm pass: faces are
// depth-sorted by mean camera-space depth and each face's projection is
// cropped to exclude every nearer face's silhouette.
//
// The visibility pass is an approximation. It has no exact spatial
// subdivision, so intersecting or near-coplanar faces can leave small
// artifacts; depth ties are broken by input order.
package geom3
