package canvas

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/inkplot/inkplot/geom"
)

// groupID is the stable, parseable identifier carried by each layer's <g>
// element. Downstream tools split output files along these group
// boundaries, so the format is load-bearing.
func groupID(prefix, layer string) string {
	return prefix + "_" + layer
}

// Border returns the frame outline as a drawable object.
func (f Frame) Border(color string) geom.Object {
	return geom.NewObject(f.Rect().Polygon(), color)
}

// WriteSVG serializes the scene to w as a single SVG document, one group
// per layer in layer order. Identical scenes produce byte-identical output.
func (s Scene) WriteSVG(w io.Writer, prefix string, priority []string) error {
	return s.writeLayers(w, prefix, s.Layers(priority))
}

// writeLayers draws the given layers in order. The layer's Color doubles as
// its group name; each object is stroked with its own color.
func (s Scene) writeLayers(w io.Writer, prefix string, layers []Layer) error {
	ew := &errWriter{w: w}
	c := svg.New(ew)
	c.Start(s.Frame.Width, s.Frame.Height)
	for _, layer := range layers {
		c.Gid(groupID(prefix, layer.Color))
		for _, o := range layer.Objects {
			s.drawShape(c, o.Shape, o.Color)
		}
		c.Gend()
	}
	c.End()
	return ew.err
}

func (s Scene) drawShape(c *svg.SVG, shape geom.Shape, color string) {
	stroke := "fill:none;stroke:" + color
	switch shape := shape.(type) {
	case geom.Point:
		c.Circle(shape.X, shape.Y, s.pointRadius(), "fill:"+color)
	case geom.Segment:
		c.Line(shape.P0.X, shape.P0.Y, shape.P1.X, shape.P1.Y, stroke)
	case geom.Polyline:
		xs, ys := splitCoords(shape.Vertices())
		c.Polyline(xs, ys, stroke)
	case geom.Polygon:
		xs, ys := splitCoords(shape.Vertices())
		c.Polygon(xs, ys, stroke)
	case geom.Multipolygon:
		for _, pg := range shape {
			xs, ys := splitCoords(pg.Vertices())
			c.Polygon(xs, ys, stroke)
		}
	default:
		panic("canvas: unknown shape kind")
	}
}

// pointRadius sizes the dot drawn for a bare point: a quarter percent of
// the smaller frame dimension.
func (s Scene) pointRadius() float64 {
	return 0.0025 * min(s.Frame.Width, s.Frame.Height)
}

func splitCoords(pts []geom.Point) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, pt := range pts {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	return xs, ys
}

// WriteFile serializes the scene to path. The document is written to a
// temporary file in the same directory and renamed into place, so an
// aborted run never leaves a half-written file at path.
func (s Scene) WriteFile(path, prefix string, priority []string) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		return s.WriteSVG(w, prefix, priority)
	})
}

func writeFileAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}

// WriteLayerFiles writes the scene as a family of SVG files under dir: the
// whole scene as <prefix>_all.svg, the frame outline as <prefix>_frame.svg,
// and one file per layer named <prefix>_<color>.svg, in layer order. It
// returns the written paths in that order, so a downstream print-job
// sequencer can feed the plotter one pen pass at a time.
func (s Scene) WriteLayerFiles(dir, prefix string, priority []string) ([]string, error) {
	var written []string
	write := func(name string, layers []Layer) error {
		path := filepath.Join(dir, name)
		err := writeFileAtomic(path, func(w io.Writer) error {
			return s.writeLayers(w, prefix, layers)
		})
		if err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	layers := s.Layers(priority)
	if err := write(prefix+"_all.svg", layers); err != nil {
		return nil, err
	}
	frame := Layer{Color: "frame", Objects: []geom.Object{s.Frame.Border("black")}}
	if err := write(prefix+"_frame.svg", []Layer{frame}); err != nil {
		return nil, err
	}
	for _, layer := range layers {
		if err := write(prefix+"_"+fileSafe(layer.Color)+".svg", []Layer{layer}); err != nil {
			return nil, err
		}
	}
	return written, nil
}

// fileSafe makes a layer color usable as a filename fragment. Colors come
// straight from input properties, so a value like "a/b" or ".." must not
// escape the output directory. Group ids inside the document keep the color
// verbatim; only the filename is rewritten.
func fileSafe(color string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r < 0x20 {
			return '_'
		}
		return r
	}, color)
	if safe == "" || safe == "." || safe == ".." {
		return "_"
	}
	return safe
}

// errWriter remembers the first write error so svgo's unchecked writes
// still surface IO failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
