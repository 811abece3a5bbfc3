package canvas

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/inkplot/inkplot/geom"
	"github.com/inkplot/inkplot/geojson"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustPolygon(t *testing.T, pts ...geom.Point) geom.Polygon {
	t.Helper()
	pg, err := geom.NewPolygon(pts)
	if err != nil {
		t.Fatal(err)
	}
	return pg
}

func TestFrameRects(t *testing.T) {
	f := Frame{Width: 100, Height: 100, Margin: 0.1}
	diff(t, geom.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}, f.Rect())
	diff(t, geom.Rect{X0: 10, Y0: 10, X1: 90, Y1: 90}, f.Inner())
}

func TestFrameValidate(t *testing.T) {
	bad := []Frame{
		{Width: 0, Height: 100},
		{Width: 100, Height: -5},
		{Width: 100, Height: 100, Margin: 0.5},
		{Width: 100, Height: 100, Margin: -0.1},
	}
	for _, f := range bad {
		if _, err := (Scene{Frame: f}).Fit(); !errors.Is(err, geom.ErrInvalidGeometry) {
			t.Errorf("Fit with frame %+v: got %v, want ErrInvalidGeometry", f, err)
		}
	}
}

func TestFitPreservesAspectRatio(t *testing.T) {
	f := func(b geom.Rect, frame Frame) {
		t.Helper()
		scene := Scene{
			Frame:   frame,
			Objects: []geom.Object{geom.NewObject(b.Polygon(), "black")},
		}
		fitted, err := scene.Fit()
		if err != nil {
			t.Fatal(err)
		}
		got, _ := fitted.Bounds()
		if rel := math.Abs(got.AspectRatio()-b.AspectRatio()) / b.AspectRatio(); rel > 1e-6 {
			t.Errorf("fit %v into %+v: aspect ratio %v, want %v", b, frame, got.AspectRatio(), b.AspectRatio())
		}
		if !frame.Inner().ContainsRect(got) {
			t.Errorf("fit %v into %+v: bounds %v outside inner %v", b, frame, got, frame.Inner())
		}
	}
	f(geom.Rect{X0: 0, Y0: 0, X1: 10, Y1: 20}, Frame{Width: 100, Height: 100, Margin: 0.1})
	f(geom.Rect{X0: -5, Y0: -5, X1: 5, Y1: 5}, Frame{Width: 200, Height: 100, Margin: 0.05})
	f(geom.Rect{X0: 3, Y0: 7, X1: 400, Y1: 9}, Frame{Width: 50, Height: 80, Margin: 0.2})
	f(geom.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}, Frame{Width: 30, Height: 30, Margin: 0})
}

func TestFitCenters(t *testing.T) {
	scene := Scene{
		Frame:   Frame{Width: 100, Height: 100, Margin: 0.1},
		Objects: []geom.Object{geom.NewObject(mustPolygon(t, geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 20), geom.Pt(0, 20)), "black")},
	}
	fitted, err := scene.Fit()
	if err != nil {
		t.Fatal(err)
	}
	got, _ := fitted.Bounds()
	// 10x20 into an 80x80 inner box: scale 4, slack split evenly in x
	diff(t, geom.Rect{X0: 30, Y0: 10, X1: 70, Y1: 90}, got)
}

func TestFitEmptyScene(t *testing.T) {
	scene := Scene{Frame: Frame{Width: 10, Height: 10, Margin: 0.1}}
	fitted, err := scene.Fit()
	if err != nil {
		t.Fatal(err)
	}
	if len(fitted.Objects) != 0 {
		t.Errorf("got %d objects, want 0", len(fitted.Objects))
	}
}

func TestFitSinglePoint(t *testing.T) {
	scene := Scene{
		Frame:   Frame{Width: 100, Height: 100, Margin: 0.1},
		Objects: []geom.Object{geom.NewObject(geom.Pt(1234, -999), "black")},
	}
	fitted, err := scene.Fit()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, geom.Pt(50, 50), fitted.Objects[0].Shape)
}

func TestClipDropsAndSplits(t *testing.T) {
	frame := Frame{Width: 10, Height: 10}
	scene := Scene{
		Frame: frame,
		Objects: []geom.Object{
			geom.NewObject(geom.Pt(5, 5), "a"),                          // inside, kept
			geom.NewObject(geom.Pt(50, 50), "b"),                        // outside, dropped
			geom.NewObject(geom.Sg(geom.Pt(5, 5), geom.Pt(15, 5)), "c"), // straddles
		},
	}
	clipped, err := scene.Clip(geom.Tolerance{})
	if err != nil {
		t.Fatal(err)
	}
	if len(clipped.Objects) != 2 {
		t.Fatalf("got %d objects, want 2", len(clipped.Objects))
	}
	// order preserved even though clipping runs in parallel
	if clipped.Objects[0].Color != "a" || clipped.Objects[1].Color != "c" {
		t.Errorf("got order %q, %q, want a, c", clipped.Objects[0].Color, clipped.Objects[1].Color)
	}
	diff(t, geom.Sg(geom.Pt(5, 5), geom.Pt(10, 5)), clipped.Objects[1].Shape)
}

func TestLayersFirstSeen(t *testing.T) {
	scene := Scene{Objects: []geom.Object{
		geom.NewObject(geom.Pt(1, 1), "red"),
		geom.NewObject(geom.Pt(2, 2), "blue"),
		geom.NewObject(geom.Pt(3, 3), "red"),
		geom.NewObject(geom.Pt(4, 4), "green"),
	}}
	layers := scene.Layers(nil)
	var colors []string
	var total int
	for _, l := range layers {
		colors = append(colors, l.Color)
		total += len(l.Objects)
	}
	diff(t, []string{"red", "blue", "green"}, colors)
	if total != len(scene.Objects) {
		t.Errorf("layers hold %d objects, want %d", total, len(scene.Objects))
	}
	if len(layers[0].Objects) != 2 {
		t.Errorf("red layer has %d objects, want 2", len(layers[0].Objects))
	}
}

func TestLayersPriority(t *testing.T) {
	scene := Scene{Objects: []geom.Object{
		geom.NewObject(geom.Pt(1, 1), "red"),
		geom.NewObject(geom.Pt(2, 2), "blue"),
		geom.NewObject(geom.Pt(3, 3), "green"),
	}}
	layers := scene.Layers([]string{"green", "blue"})
	var colors []string
	for _, l := range layers {
		colors = append(colors, l.Color)
	}
	diff(t, []string{"green", "blue", "red"}, colors)

	// priority colors no object uses are dropped, not emitted empty
	layers = scene.Layers([]string{"purple", "blue"})
	colors = colors[:0]
	for _, l := range layers {
		colors = append(colors, l.Color)
	}
	diff(t, []string{"blue", "red", "green"}, colors)
}

// TestRedSquarePipeline walks one GeoJSON polygon through the whole
// pipeline: ingest, fit, clip, layer.
func TestRedSquarePipeline(t *testing.T) {
	const input = `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"properties": {"color": "red"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[0,0],[10,0],[10,10],[0,10],[0,0]]]
			}
		}]
	}`
	objs, err := geojson.Decode([]byte(input), geojson.Options{ColorProp: "color"})
	if err != nil {
		t.Fatal(err)
	}
	scene := Scene{Frame: Frame{Width: 100, Height: 100, Margin: 0.1}, Objects: objs}

	fitted, err := scene.Fit()
	if err != nil {
		t.Fatal(err)
	}
	clipped, err := fitted.Clip(geom.Tolerance{})
	if err != nil {
		t.Fatal(err)
	}
	layers := clipped.Layers(nil)
	if len(layers) != 1 || layers[0].Color != "red" {
		t.Fatalf("got layers %v, want one red layer", layers)
	}
	if len(layers[0].Objects) != 1 {
		t.Fatalf("got %d objects in layer, want 1", len(layers[0].Objects))
	}
	pg, ok := layers[0].Objects[0].Shape.(geom.Polygon)
	if !ok {
		t.Fatalf("got shape %T, want Polygon", layers[0].Objects[0].Shape)
	}
	if pg.Len() != 4 {
		t.Errorf("got %d vertices, want 4", pg.Len())
	}
	bounds := pg.Bounds()
	if !(geom.Rect{X0: 10, Y0: 10, X1: 90, Y1: 90}).ContainsRect(bounds) {
		t.Errorf("bounds %v outside margin box (10,10)-(90,90)", bounds)
	}
	if ratio := bounds.AspectRatio(); ratio != 1.0 {
		t.Errorf("got aspect ratio %v, want exactly 1.0", ratio)
	}
}

func TestParseColor(t *testing.T) {
	f := func(in string, wantR, wantG, wantB uint8, wantOK bool) {
		t.Helper()
		c, ok := ParseColor(in)
		if ok != wantOK {
			t.Fatalf("ParseColor(%q): got ok=%t, want %t", in, ok, wantOK)
		}
		if ok && (c.R != wantR || c.G != wantG || c.B != wantB) {
			t.Errorf("ParseColor(%q): got %v, want (%d, %d, %d)", in, c, wantR, wantG, wantB)
		}
	}
	f("red", 0xff, 0, 0, true)
	f("Black", 0, 0, 0, true)
	f("#ff8000", 0xff, 0x80, 0x00, true)
	f("#f80", 0xff, 0x88, 0x00, true)
	f("#zzz", 0, 0, 0, false)
	f("chartreuse-ish", 0, 0, 0, false)
}
