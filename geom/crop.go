package geom

// Intersection returns the region covered by both polygons, as zero or more
// disjoint positively oriented polygons in canonical vertex order. Disjoint
// inputs yield an empty result.
func Intersection(a, b Polygon, tol Tolerance) ([]Polygon, error) {
	if err := checkCropInput(a, b); err != nil {
		return nil, err
	}
	return newCropGraph(a, b, tol).run(opIntersection), nil
}

// Difference returns the region of a not covered by b. Subtracting a polygon
// that covers a entirely yields an empty result; a subtrahend that splits a
// in two yields both pieces.
func Difference(a, b Polygon, tol Tolerance) ([]Polygon, error) {
	if err := checkCropInput(a, b); err != nil {
		return nil, err
	}
	return newCropGraph(a, b, tol).run(opDifference), nil
}

// Union returns the region covered by either polygon. Overlapping or
// edge-adjacent inputs merge into one polygon; disjoint inputs come back as
// two. Union of a polygon with itself returns the polygon.
func Union(a, b Polygon, tol Tolerance) ([]Polygon, error) {
	if err := checkCropInput(a, b); err != nil {
		return nil, err
	}
	return newCropGraph(a, b, tol).run(opUnion), nil
}

func checkCropInput(a, b Polygon) error {
	if a.Len() < 3 || b.Len() < 3 {
		return invalidGeometryf("boolean operation on polygon with %d vertices", min(a.Len(), b.Len()))
	}
	return nil
}

// Crop clips an object to a rectangular frame. The result holds zero objects
// when the shape lies entirely outside the frame, the original object when it
// lies entirely inside, and otherwise one or more objects covering the parts
// within the frame. Style and tags carry over to every piece.
func Crop(o Object, frame Rect, tol Tolerance) ([]Object, error) {
	if frame.ContainsRect(BoundsOf(o.Shape)) {
		return []Object{o}, nil
	}
	shapes, err := cropShape(o.Shape, frame, tol)
	if err != nil {
		return nil, err
	}
	out := make([]Object, 0, len(shapes))
	for _, s := range shapes {
		piece := o
		piece.Shape = s
		out = append(out, piece)
	}
	return out, nil
}

func cropShape(s Shape, frame Rect, tol Tolerance) ([]Shape, error) {
	switch s := s.(type) {
	case Point:
		if frame.Contains(s) {
			return []Shape{s}, nil
		}
		return nil, nil
	case Segment:
		clipped, ok := s.Clip(frame)
		if !ok || tol.EqPoint(clipped.P0, clipped.P1) {
			return nil, nil
		}
		return []Shape{clipped}, nil
	case Polyline:
		return cropPolyline(s, frame, tol)
	case Polygon:
		pieces, err := Intersection(s, frame.Polygon(), tol)
		if err != nil {
			return nil, err
		}
		shapes := make([]Shape, len(pieces))
		for i, pg := range pieces {
			shapes[i] = pg
		}
		return shapes, nil
	case Multipolygon:
		var shapes []Shape
		for _, pg := range s {
			pieces, err := Intersection(pg, frame.Polygon(), tol)
			if err != nil {
				return nil, err
			}
			for _, piece := range pieces {
				shapes = append(shapes, piece)
			}
		}
		return shapes, nil
	default:
		panic("geom: unknown shape kind")
	}
}

// cropPolyline clips each segment of the polyline and re-chains contiguous
// runs, so a polyline that leaves and re-enters the frame splits into
// several polylines.
func cropPolyline(pl Polyline, frame Rect, tol Tolerance) ([]Shape, error) {
	var out []Shape
	var chain []Point
	flush := func() {
		if len(chain) >= 2 {
			res, err := NewPolyline(chain)
			if err == nil {
				out = append(out, res)
			}
		}
		chain = nil
	}
	for _, sg := range pl.Segments() {
		clipped, ok := sg.Clip(frame)
		if !ok || tol.EqPoint(clipped.P0, clipped.P1) {
			flush()
			continue
		}
		if len(chain) == 0 || !tol.EqPoint(chain[len(chain)-1], clipped.P0) {
			flush()
			chain = append(chain, clipped.P0)
		}
		chain = append(chain, clipped.P1)
	}
	flush()
	return out, nil
}
