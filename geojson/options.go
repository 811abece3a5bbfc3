package geojson

import (
	"fmt"
	"math"

	"github.com/inkplot/inkplot/geom"
)

// Projection selects how longitude/latitude pairs map to the plane.
type Projection int

const (
	// Planar treats coordinates as already planar: x = longitude,
	// y = -latitude, so north ends up at the top of a y-down page.
	Planar Projection = iota
	// Mercator applies the Web-Mercator latitude stretch before the y flip.
	// Latitudes are clamped to ±85° to keep the stretch finite.
	Mercator
)

// maxMercatorLat is the conventional Web-Mercator latitude cutoff.
const maxMercatorLat = 85.0

// Rule maps features whose property Key has value Value to a color. Rules
// are evaluated in order; the first match wins.
type Rule struct {
	Key   string
	Value string
	Color string
}

// Options configures ingestion.
type Options struct {
	// ColorProp names a property whose string value is used verbatim as the
	// object color, e.g. "color". Checked before Rules.
	ColorProp string
	// Rules maps property key/value pairs to colors.
	Rules []Rule
	// DefaultColor styles features no rule matches. Empty means "black".
	DefaultColor string
	// Projection maps lon/lat to the plane. The zero value is Planar.
	Projection Projection
}

func (o Options) colorFor(props map[string]interface{}) string {
	if o.ColorProp != "" {
		if s, ok := props[o.ColorProp].(string); ok && s != "" {
			return s
		}
	}
	for _, r := range o.Rules {
		if s, ok := props[r.Key].(string); ok && s == r.Value {
			return r.Color
		}
	}
	if o.DefaultColor != "" {
		return o.DefaultColor
	}
	return "black"
}

// project maps one GeoJSON coordinate pair to the plane.
func (o Options) project(coords []float64) (geom.Point, error) {
	if len(coords) < 2 {
		return geom.Point{}, fmt.Errorf("%w: coordinate with %d components", ErrParse, len(coords))
	}
	lon, lat := coords[0], coords[1]
	if math.IsNaN(lon) || math.IsNaN(lat) || math.IsInf(lon, 0) || math.IsInf(lat, 0) {
		return geom.Point{}, fmt.Errorf("%w: non-finite coordinate (%v, %v)", ErrParse, lon, lat)
	}
	switch o.Projection {
	case Mercator:
		lat = min(max(lat, -maxMercatorLat), maxMercatorLat)
		phi := lat * math.Pi / 180
		y := math.Log(math.Tan(math.Pi/4 + phi/2))
		return geom.Pt(lon*math.Pi/180, -y), nil
	default:
		return geom.Pt(lon, -lat), nil
	}
}

func (o Options) projectAll(coords [][]float64) ([]geom.Point, error) {
	pts := make([]geom.Point, len(coords))
	for i, c := range coords {
		pt, err := o.project(c)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}
