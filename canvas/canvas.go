// Package canvas is the pipeline's orchestration stage: it fits objects into
// a target frame, clips them to it, buckets them into per-color layers and
// serializes the result as SVG.
//
// All operations are value-oriented: a [Scene] is never mutated, each stage
// returns a new one. Output is deterministic: the same scene always
// serializes to byte-identical SVG.
package canvas

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/inkplot/inkplot/geom"
)

// Frame is the rectangular physical canvas, with a margin fraction reserved
// as border on every side.
type Frame struct {
	Width  float64
	Height float64
	// Margin is the fraction of each dimension left blank on each side.
	// 0.1 on a 100x100 frame keeps content inside (10,10)-(90,90).
	Margin float64
}

func (f Frame) validate() error {
	if !(f.Width > 0) || !(f.Height > 0) {
		return fmt.Errorf("frame %vx%v: %w", f.Width, f.Height, geom.ErrInvalidGeometry)
	}
	if f.Margin < 0 || f.Margin >= 0.5 {
		return fmt.Errorf("frame margin %v outside [0, 0.5): %w", f.Margin, geom.ErrInvalidGeometry)
	}
	return nil
}

// Rect is the full canvas rectangle, origin at (0, 0).
func (f Frame) Rect() geom.Rect {
	return geom.Rect{X0: 0, Y0: 0, X1: f.Width, Y1: f.Height}
}

// Inner is the canvas rectangle with the margin taken off every side.
func (f Frame) Inner() geom.Rect {
	return geom.Rect{
		X0: f.Margin * f.Width,
		Y0: f.Margin * f.Height,
		X1: (1 - f.Margin) * f.Width,
		Y1: (1 - f.Margin) * f.Height,
	}
}

// Scene is a set of styled objects plus the frame they are destined for.
type Scene struct {
	Frame   Frame
	Objects []geom.Object
}

// Bounds is the union bounding box of all objects. The second return value
// is false for an empty scene.
func (s Scene) Bounds() (geom.Rect, bool) {
	if len(s.Objects) == 0 {
		return geom.Rect{}, false
	}
	bounds := s.Objects[0].Bounds()
	for _, o := range s.Objects[1:] {
		bounds = bounds.Union(o.Bounds())
	}
	return bounds, true
}

// Fit scales and centers the scene's objects into the frame's inner
// rectangle. A single uniform scale factor is used, so the content's aspect
// ratio is preserved exactly; the scaled bounding box is centered in the
// remaining slack dimension.
func (s Scene) Fit() (Scene, error) {
	if err := s.Frame.validate(); err != nil {
		return Scene{}, err
	}
	bounds, ok := s.Bounds()
	if !ok {
		return s, nil
	}

	inner := s.Frame.Inner()
	var scale float64
	switch {
	case bounds.Width() == 0 && bounds.Height() == 0:
		scale = 1 // a single point only needs centering
	case bounds.Width() == 0:
		scale = inner.Height() / bounds.Height()
	case bounds.Height() == 0:
		scale = inner.Width() / bounds.Width()
	default:
		scale = min(inner.Width()/bounds.Width(), inner.Height()/bounds.Height())
	}

	shift := inner.Center().Sub(bounds.Center().Transform(geom.Scale(scale, scale)))
	aff := geom.Scale(scale, scale).ThenTranslate(shift)

	objs := make([]geom.Object, len(s.Objects))
	for i, o := range s.Objects {
		objs[i] = o.Transform(aff)
	}
	return Scene{Frame: s.Frame, Objects: objs}, nil
}

// Clip crops every object to the frame. Objects entirely outside vanish;
// objects straddling the boundary are replaced by their in-frame pieces.
// Objects are clipped in parallel, but the output preserves input order, so
// serialization downstream stays deterministic.
func (s Scene) Clip(tol geom.Tolerance) (Scene, error) {
	if err := s.Frame.validate(); err != nil {
		return Scene{}, err
	}
	frame := s.Frame.Rect()
	results := make([][]geom.Object, len(s.Objects))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, obj := range s.Objects {
		i, obj := i, obj
		g.Go(func() error {
			pieces, err := geom.Crop(obj, frame, tol)
			if err != nil {
				return fmt.Errorf("object %d: %w", i, err)
			}
			results[i] = pieces
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Scene{}, err
	}

	var objs []geom.Object
	for _, pieces := range results {
		objs = append(objs, pieces...)
	}
	return Scene{Frame: s.Frame, Objects: objs}, nil
}
