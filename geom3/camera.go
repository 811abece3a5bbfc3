package geom3

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/inkplot/inkplot/geom"
)

// ErrDegenerateProjection reports a camera configuration that yields a
// singular or empty view volume. No meaningful output is possible, so
// callers abort the run.
var ErrDegenerateProjection = errors.New("degenerate projection")

// Projection selects between the supported projection kinds. It is a sealed
// sum: [Perspective] and [Orthographic] are the only implementations.
type Projection interface {
	isProjection()
	validate() error
}

// Perspective projects with a vertical field of view of FOV radians. Faces
// with a vertex nearer than Near or a mean depth beyond Far are culled.
type Perspective struct {
	FOV  float64
	Near float64
	Far  float64
}

func (Perspective) isProjection() {}

func (p Perspective) validate() error {
	if !(p.FOV > 0) || p.FOV >= math.Pi {
		return fmt.Errorf("perspective field of view %v: %w", p.FOV, ErrDegenerateProjection)
	}
	if !(p.Near > 0) || p.Far <= p.Near {
		return fmt.Errorf("perspective depth range [%v, %v]: %w", p.Near, p.Far, ErrDegenerateProjection)
	}
	return nil
}

// Orthographic projects onto a view rectangle spanning ±HalfWidth by
// ±HalfHeight around the view axis, with no perspective divide. Faces with
// a vertex at or behind the eye plane are culled.
type Orthographic struct {
	HalfWidth  float64
	HalfHeight float64
}

func (Orthographic) isProjection() {}

func (o Orthographic) validate() error {
	if !(o.HalfWidth > 0) || !(o.HalfHeight > 0) {
		return fmt.Errorf("orthographic extents %v x %v: %w", o.HalfWidth, o.HalfHeight, ErrDegenerateProjection)
	}
	return nil
}

// Camera describes a look-at view: an eye position, the point looked at, an
// up hint, and a projection kind.
type Camera struct {
	Eye        Point3
	Target     Point3
	Up         r3.Vector
	Projection Projection
}

// view is a validated camera basis.
type view struct {
	eye     Point3
	right   r3.Vector
	up      r3.Vector
	forward r3.Vector
	proj    Projection
}

func (c Camera) view() (view, error) {
	if c.Projection == nil {
		return view{}, fmt.Errorf("camera without projection: %w", ErrDegenerateProjection)
	}
	if err := c.Projection.validate(); err != nil {
		return view{}, err
	}
	gaze := c.Target.Sub(c.Eye)
	if gaze.Norm() == 0 {
		return view{}, fmt.Errorf("camera eye coincides with target %v: %w", c.Target, ErrDegenerateProjection)
	}
	forward := gaze.Normalize()
	upHint := c.Up
	if upHint.Norm() == 0 {
		upHint = Pt3(0, 0, 1)
	}
	sideways := forward.Cross(upHint)
	if sideways.Norm() < 1e-12 {
		return view{}, fmt.Errorf("camera up vector parallel to view direction: %w", ErrDegenerateProjection)
	}
	right := sideways.Normalize()
	return view{
		eye:     c.Eye,
		right:   right,
		up:      right.Cross(forward),
		forward: forward,
		proj:    c.Projection,
	}, nil
}

// depth is the camera-space distance of p along the view axis.
func (v view) depth(p Point3) float64 {
	return p.Sub(v.eye).Dot(v.forward)
}

// project maps a 3D point to view-plane coordinates, with y growing upward.
func (v view) project(p Point3) geom.Point {
	rel := p.Sub(v.eye)
	x := rel.Dot(v.right)
	y := rel.Dot(v.up)
	switch proj := v.proj.(type) {
	case Perspective:
		f := 1 / math.Tan(proj.FOV/2)
		d := rel.Dot(v.forward)
		return geom.Pt(f*x/d, f*y/d)
	case Orthographic:
		return geom.Pt(x/proj.HalfWidth, y/proj.HalfHeight)
	default:
		panic("geom3: unknown projection kind")
	}
}

// cull reports whether a face with the given vertex depths is outside the
// view volume.
func (v view) cull(depths []float64) bool {
	var mean float64
	for _, d := range depths {
		mean += d
	}
	mean /= float64(len(depths))
	switch proj := v.proj.(type) {
	case Perspective:
		for _, d := range depths {
			if d < proj.Near {
				return true
			}
		}
		return mean > proj.Far
	case Orthographic:
		for _, d := range depths {
			if d <= 0 {
				return true
			}
		}
		return false
	default:
		panic("geom3: unknown projection kind")
	}
}
