package geom3

import (
	"errors"
	"sort"

	"github.com/inkplot/inkplot/geom"
)

// RenderOptions controls the projection pass.
type RenderOptions struct {
	// HiddenLineRemoval crops every face against the silhouettes of nearer
	// faces, so only visible parts are emitted.
	HiddenLineRemoval bool
	// BackfaceCull drops faces whose normal points away from the eye.
	BackfaceCull bool
	// Tolerance is forwarded to the 2D crop engine.
	Tolerance geom.Tolerance
}

// projected is one face flattened to the view plane, awaiting the
// visibility pass.
type projected struct {
	poly  geom.Polygon
	color string
	depth float64 // mean camera-space depth
}

// Render projects the solids' faces to styled 2D objects. Faces outside the
// view volume are dropped; faces seen edge-on project to nothing. Output is
// ordered back-to-front (painter order), one group of objects per visible
// face, each carrying its solid's color.
func Render(cam Camera, solids []Solid, opts RenderOptions) ([]geom.Object, error) {
	v, err := cam.view()
	if err != nil {
		return nil, err
	}

	var faces []projected
	for _, solid := range solids {
		for _, face := range solid.faces {
			if opts.BackfaceCull && face.Normal().Dot(face.Centroid().Sub(cam.Eye)) > 0 {
				continue
			}
			depths := make([]float64, face.Len())
			for i, pt := range face.pts {
				depths[i] = v.depth(pt)
			}
			if v.cull(depths) {
				continue
			}
			pts := make([]geom.Point, face.Len())
			for i, pt := range face.pts {
				pts[i] = v.project(pt)
			}
			poly, err := geom.NewPolygon(pts)
			if err != nil {
				if errors.Is(err, geom.ErrInvalidGeometry) {
					continue // edge-on or sliver face
				}
				return nil, err
			}
			var mean float64
			for _, d := range depths {
				mean += d
			}
			faces = append(faces, projected{
				poly:  poly,
				color: solid.Color,
				depth: mean / float64(len(depths)),
			})
		}
	}

	// Near faces first; ties keep ingestion order.
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].depth < faces[j].depth
	})

	visible := make([][]geom.Polygon, len(faces))
	if !opts.HiddenLineRemoval {
		for i, f := range faces {
			visible[i] = []geom.Polygon{f.poly}
		}
	} else {
		var silhouettes []geom.Polygon
		for i, f := range faces {
			pieces := []geom.Polygon{f.poly}
			for _, occ := range silhouettes {
				var next []geom.Polygon
				for _, piece := range pieces {
					rest, err := geom.Difference(piece, occ, opts.Tolerance)
					if err != nil {
						return nil, err
					}
					for _, r := range rest {
						if !swallowedRing(r, occ, opts.Tolerance) {
							next = append(next, r)
						}
					}
				}
				pieces = next
				if len(pieces) == 0 {
					break
				}
			}
			visible[i] = pieces
			silhouettes = append(silhouettes, f.poly)
		}
	}

	// Emit farthest first so downstream draws in painter order.
	var out []geom.Object
	for i := len(faces) - 1; i >= 0; i-- {
		for _, piece := range visible[i] {
			out = append(out, geom.NewObject(piece, faces[i].color))
		}
	}
	return out, nil
}

// swallowedRing reports whether pg lies entirely on or inside occ. When an
// occluder sits strictly inside a farther face, Difference hands the
// occluder's boundary back as its own positive ring; emitting it would
// retrace the nearer face's outline in the farther face's color.
func swallowedRing(pg, occ geom.Polygon, tol geom.Tolerance) bool {
	tol = tol.Scaled(occ.Bounds().Diagonal())
	for _, pt := range pg.Vertices() {
		if occ.Location(pt, tol) == geom.LocOutside {
			return false
		}
	}
	return true
}
