package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/inkplot/inkplot/geom"
)

// previewStroke is the stroked line width of the raster proof, in canvas
// units.
const previewStroke = 0.5

// WritePNG rasterizes the scene to a PNG proof at pixelsPerUnit resolution.
// The proof approximates the plot: white page, each object stroked in its
// color. It is a batch artifact for eyeballing a run, not a faithful
// renderer.
func (s Scene) WritePNG(w io.Writer, pixelsPerUnit float64) error {
	if err := s.Frame.validate(); err != nil {
		return err
	}
	if !(pixelsPerUnit > 0) {
		pixelsPerUnit = 1
	}
	width := int(math.Ceil(s.Frame.Width * pixelsPerUnit))
	height := int(math.Ceil(s.Frame.Height * pixelsPerUnit))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	r := vector.NewRasterizer(width, height)
	for _, o := range s.Objects {
		rgba, ok := ParseColor(o.Color)
		if !ok {
			rgba = color.RGBA{A: 0xff}
		}
		r.Reset(width, height)
		r.DrawOp = draw.Over
		addShape(r, o.Shape, pixelsPerUnit)
		r.Draw(dst, dst.Bounds(), image.NewUniform(rgba), image.Point{})
	}
	return png.Encode(w, dst)
}

func addShape(r *vector.Rasterizer, shape geom.Shape, scale float64) {
	switch shape := shape.(type) {
	case geom.Point:
		addDot(r, shape, scale)
	case geom.Segment:
		addStroke(r, shape, scale)
	case geom.Polyline:
		for _, sg := range shape.Segments() {
			addStroke(r, sg, scale)
		}
	case geom.Polygon:
		for _, sg := range shape.Segments() {
			addStroke(r, sg, scale)
		}
	case geom.Multipolygon:
		for _, pg := range shape {
			for _, sg := range pg.Segments() {
				addStroke(r, sg, scale)
			}
		}
	default:
		panic("canvas: unknown shape kind")
	}
}

// addStroke fills the segment's stroke outline: a quad offset half the
// stroke width to each side.
func addStroke(r *vector.Rasterizer, sg geom.Segment, scale float64) {
	dir := sg.P1.Sub(sg.P0)
	if dir.Hypot() == 0 {
		addDot(r, sg.P0, scale)
		return
	}
	n := dir.Normalize().Mul(previewStroke / 2)
	perp := geom.Vec(-n.Y, n.X)

	a := sg.P0.Translate(perp)
	b := sg.P1.Translate(perp)
	c := sg.P1.Translate(perp.Negate())
	d := sg.P0.Translate(perp.Negate())

	r.MoveTo(float32(a.X*scale), float32(a.Y*scale))
	r.LineTo(float32(b.X*scale), float32(b.Y*scale))
	r.LineTo(float32(c.X*scale), float32(c.Y*scale))
	r.LineTo(float32(d.X*scale), float32(d.Y*scale))
	r.ClosePath()
}

func addDot(r *vector.Rasterizer, pt geom.Point, scale float64) {
	half := previewStroke
	r.MoveTo(float32((pt.X-half)*scale), float32((pt.Y-half)*scale))
	r.LineTo(float32((pt.X+half)*scale), float32((pt.Y-half)*scale))
	r.LineTo(float32((pt.X+half)*scale), float32((pt.Y+half)*scale))
	r.LineTo(float32((pt.X-half)*scale), float32((pt.Y+half)*scale))
	r.ClosePath()
}
