package geom

import (
	"math"
	"sort"
)

// ShadeConfig controls hatching. Gap is the perpendicular distance between
// neighboring hatch lines; Slope is their dy/dx, with ±Inf producing
// vertical lines.
type ShadeConfig struct {
	Gap   float64
	Slope float64
}

// Shade fills a polygon with parallel hatch segments. Each candidate line is
// swept across the polygon's bounding box and clipped to the polygon
// interior, so concave polygons produce several segments per line. Results
// come back in sweep order.
func Shade(pg Polygon, cfg ShadeConfig, tol Tolerance) ([]Segment, error) {
	if pg.Len() < 3 {
		return nil, invalidGeometryf("shading polygon with %d vertices", pg.Len())
	}
	if !(cfg.Gap > 0) {
		return nil, invalidGeometryf("shading gap %v is not positive", cfg.Gap)
	}

	bounds := pg.Bounds()
	tol = tol.Scaled(bounds.Diagonal())

	var out []Segment
	if math.IsInf(cfg.Slope, 0) {
		for x := bounds.MinX() + cfg.Gap; x < bounds.MaxX(); x += cfg.Gap {
			sweep := Sg(Pt(x, bounds.MinY()), Pt(x, bounds.MaxY()))
			out = append(out, clipSegmentToPolygon(sweep, pg, tol)...)
		}
		return out, nil
	}

	// Lines are y = slope*x + b. The perpendicular spacing between two such
	// lines is |Δb| / sqrt(1+slope²), so step b accordingly.
	step := cfg.Gap * math.Hypot(1, cfg.Slope)
	bMin, bMax := math.Inf(1), math.Inf(-1)
	for _, corner := range bounds.Vertices() {
		b := corner.Y - cfg.Slope*corner.X
		bMin = min(bMin, b)
		bMax = max(bMax, b)
	}
	for b := bMin + step; b < bMax; b += step {
		sweep := Sg(
			Pt(bounds.MinX(), cfg.Slope*bounds.MinX()+b),
			Pt(bounds.MaxX(), cfg.Slope*bounds.MaxX()+b),
		)
		out = append(out, clipSegmentToPolygon(sweep, pg, tol)...)
	}
	return out, nil
}

// clipSegmentToPolygon keeps the parts of sg that lie inside pg. It splits
// the segment at every boundary crossing and tests each piece's midpoint.
func clipSegmentToPolygon(sg Segment, pg Polygon, tol Tolerance) []Segment {
	ts := []float64{0, 1}
	for _, edge := range pg.Segments() {
		if isxn, ok := sg.Intersect(edge, tol); ok {
			ts = append(ts, isxn.T)
		}
	}
	sort.Float64s(ts)

	var out []Segment
	prev := ts[0]
	for _, t := range ts[1:] {
		if t-prev <= tol.epsilon() {
			continue
		}
		piece := Sg(sg.Eval(prev), sg.Eval(t))
		if pg.Location(piece.Midpoint(), tol) == LocInside {
			out = append(out, piece)
		}
		prev = t
	}
	return out
}
