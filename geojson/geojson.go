// Package geojson ingests GeoJSON feature collections as styled 2D objects.
//
// Decoding proper is delegated to github.com/paulmach/go.geojson; this
// package maps the decoded features onto geom primitives, applies a
// coordinate projection with north up, and derives each object's color from
// the feature's properties. Ingestion is all-or-nothing: a malformed file or
// an unsupported geometry kind fails the whole file, never part of it.
package geojson

import (
	"errors"
	"fmt"
	"os"
	"sort"

	gj "github.com/paulmach/go.geojson"

	"github.com/inkplot/inkplot/geom"
)

// ErrParse reports a file that is not a valid GeoJSON feature collection.
var ErrParse = errors.New("geojson parse error")

// ErrUnsupportedGeometry reports a geometry kind outside the supported set.
var ErrUnsupportedGeometry = errors.New("unsupported geometry")

// DecodeFile reads and decodes one GeoJSON file. Errors carry the path.
func DecodeFile(path string, opts Options) ([]geom.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	objs, err := Decode(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return objs, nil
}

// Decode converts a GeoJSON feature collection to styled objects. Supported
// geometry kinds are Point, MultiPoint, LineString, MultiLineString, Polygon
// and MultiPolygon; any other kind fails the whole input with
// [ErrUnsupportedGeometry]. Malformed JSON or a feature without geometry
// fails with an error wrapping [ErrParse].
func Decode(data []byte, opts Options) ([]geom.Object, error) {
	fc, err := gj.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var out []geom.Object
	for i, feat := range fc.Features {
		if feat.Geometry == nil {
			return nil, fmt.Errorf("%w: feature %d has no geometry", ErrParse, i)
		}
		shapes, err := decodeGeometry(feat.Geometry, opts)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		color := opts.colorFor(feat.Properties)
		tags := propertyTags(feat.Properties)
		for _, s := range shapes {
			out = append(out, geom.NewObject(s, color).WithTags(tags...))
		}
	}
	return out, nil
}

func decodeGeometry(g *gj.Geometry, opts Options) ([]geom.Shape, error) {
	switch g.Type {
	case gj.GeometryPoint:
		pt, err := opts.project(g.Point)
		if err != nil {
			return nil, err
		}
		return []geom.Shape{pt}, nil
	case gj.GeometryMultiPoint:
		shapes := make([]geom.Shape, 0, len(g.MultiPoint))
		for _, coords := range g.MultiPoint {
			pt, err := opts.project(coords)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, pt)
		}
		return shapes, nil
	case gj.GeometryLineString:
		pl, err := decodeLine(g.LineString, opts)
		if err != nil {
			return nil, err
		}
		return []geom.Shape{pl}, nil
	case gj.GeometryMultiLineString:
		shapes := make([]geom.Shape, 0, len(g.MultiLineString))
		for _, line := range g.MultiLineString {
			pl, err := decodeLine(line, opts)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, pl)
		}
		return shapes, nil
	case gj.GeometryPolygon:
		rings, err := decodeRings(g.Polygon, opts)
		if err != nil {
			return nil, err
		}
		if len(rings) == 1 {
			return []geom.Shape{rings[0]}, nil
		}
		return []geom.Shape{geom.Multipolygon(rings)}, nil
	case gj.GeometryMultiPolygon:
		if len(g.MultiPolygon) == 0 {
			return nil, fmt.Errorf("%w: multipolygon with no polygons", ErrParse)
		}
		var all []geom.Polygon
		for _, poly := range g.MultiPolygon {
			rings, err := decodeRings(poly, opts)
			if err != nil {
				return nil, err
			}
			all = append(all, rings...)
		}
		return []geom.Shape{geom.Multipolygon(all)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, g.Type)
	}
}

func decodeLine(coords [][]float64, opts Options) (geom.Polyline, error) {
	pts, err := opts.projectAll(coords)
	if err != nil {
		return geom.Polyline{}, err
	}
	return geom.NewPolyline(pts)
}

// decodeRings converts every ring of a GeoJSON polygon, exterior and holes
// alike. A pen plotter strokes outlines rather than filling areas, so hole
// rings are drawn the same way as exterior rings.
func decodeRings(rings [][][]float64, opts Options) ([]geom.Polygon, error) {
	if len(rings) == 0 {
		return nil, fmt.Errorf("%w: polygon with no rings", ErrParse)
	}
	out := make([]geom.Polygon, 0, len(rings))
	for _, ring := range rings {
		pts, err := opts.projectAll(ring)
		if err != nil {
			return nil, err
		}
		pg, err := geom.NewPolygon(pts)
		if err != nil {
			return nil, err
		}
		out = append(out, pg)
	}
	return out, nil
}

// propertyTags turns the feature's scalar string properties into tags, in
// sorted key order so downstream output stays deterministic.
func propertyTags(props map[string]interface{}) []geom.Tag {
	var tags []geom.Tag
	for k, v := range props {
		if s, ok := v.(string); ok {
			tags = append(tags, geom.Tag{Key: k, Value: s})
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Key < tags[j].Key })
	return tags
}
