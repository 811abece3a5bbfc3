package geom3

import (
	"errors"
	"math"
	"testing"

	"github.com/inkplot/inkplot/geom"
)

func near3(t *testing.T, want, got Point3) {
	t.Helper()
	if got.Sub(want).Norm() > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNewFaceValidation(t *testing.T) {
	if _, err := NewFace([]Point3{Pt3(0, 0, 0), Pt3(1, 1, 1)}); !errors.Is(err, geom.ErrInvalidGeometry) {
		t.Errorf("got %v, want ErrInvalidGeometry", err)
	}
	if _, err := NewFace([]Point3{Pt3(0, 0, 0), Pt3(1, 0, 0), Pt3(math.NaN(), 1, 0)}); !errors.Is(err, geom.ErrInvalidGeometry) {
		t.Errorf("got %v, want ErrInvalidGeometry", err)
	}

	// closing duplicate dropped
	f, err := NewFace([]Point3{Pt3(0, 0, 0), Pt3(1, 0, 0), Pt3(0, 1, 0), Pt3(0, 0, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 3 {
		t.Errorf("got %d vertices, want 3", f.Len())
	}
}

func TestFaceNormal(t *testing.T) {
	// counter-clockwise in the xy-plane, seen from +z
	f := mustFace(Pt3(0, 0, 0), Pt3(1, 0, 0), Pt3(1, 1, 0), Pt3(0, 1, 0))
	near3(t, Pt3(0, 0, 1), f.Normal())
	near3(t, Pt3(0.5, 0.5, 0), f.Centroid())
}

func TestBoxFaces(t *testing.T) {
	box := Box(Pt3(-1, -1, -1), Pt3(2, 2, 2), "black")
	faces := box.Faces()
	if len(faces) != 6 {
		t.Fatalf("got %d faces, want 6", len(faces))
	}
	// normals point away from the center (the origin here)
	for i, f := range faces {
		if f.Normal().Dot(f.Centroid()) <= 0 {
			t.Errorf("face %d normal %v points inward", i, f.Normal())
		}
	}
}

func TestPyramidFaces(t *testing.T) {
	pyr := Pyramid(Pt3(0, 0, 0), 2, 2, 3, "red")
	if n := len(pyr.Faces()); n != 5 {
		t.Fatalf("got %d faces, want 5", n)
	}
	if pyr.Color != "red" {
		t.Errorf("got color %q, want red", pyr.Color)
	}
}

func TestSolidTransforms(t *testing.T) {
	cube := Cube(Pt3(0, 0, 0), 1, "black")

	moved := cube.Translate(Pt3(10, 0, 0))
	near3(t, Pt3(10.5, 0.5, 0.5), solidCentroid(moved))

	scaled := cube.Scale(2)
	near3(t, Pt3(1, 1, 1), solidCentroid(scaled))

	spun := cube.Translate(Pt3(-0.5, -0.5, -0.5)).RotateZ(math.Pi / 2)
	near3(t, Pt3(0, 0, 0), solidCentroid(spun))
	spunX := cube.RotateX(math.Pi / 2)
	near3(t, Pt3(0.5, -0.5, 0.5), solidCentroid(spunX))
}

func solidCentroid(s Solid) Point3 {
	var sum Point3
	var n float64
	for _, f := range s.Faces() {
		for _, pt := range f.Vertices() {
			sum = sum.Add(pt)
			n++
		}
	}
	return sum.Mul(1 / n)
}
