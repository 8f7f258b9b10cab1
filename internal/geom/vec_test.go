package geom

import (
	"errors"
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Errorf("add = %v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("scale = %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("dot = %v, expected 12", got)
	}
	if got := a.LengthSquared(); got != 14 {
		t.Errorf("length squared = %v, expected 14", got)
	}
}

func TestCrossRightHanded(t *testing.T) {
	if got := UnitX().Cross(UnitY()); got != UnitZ() {
		t.Errorf("x cross y = %v, expected z", got)
	}
	if got := UnitY().Cross(UnitZ()); got != UnitX() {
		t.Errorf("y cross z = %v, expected x", got)
	}
	if got := UnitZ().Cross(UnitX()); got != UnitY() {
		t.Errorf("z cross x = %v, expected y", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n, err := v.Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if math.Abs(n.Length()-1) > 1e-15 {
		t.Errorf("normalized length = %v", n.Length())
	}
	if math.Abs(n.X-0.6) > 1e-15 || math.Abs(n.Y-0.8) > 1e-15 {
		t.Errorf("normalized = %v, expected (0.6, 0.8, 0)", n)
	}
}

func TestVec3Normalize_Zero(t *testing.T) {
	_, err := Vec3{}.Normalize()
	if !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error for zero vector, got %v", err)
	}
}

func TestFromSpherical(t *testing.T) {
	tests := []struct {
		name          string
		r, theta, phi float64
		want          Vec3
	}{
		{"+z pole", 2, 0, 0, Vec3{0, 0, 2}},
		{"-z pole", 2, math.Pi, 0.5, Vec3{0, 0, -2}},
		{"+x equator", 2, math.Pi / 2, 0, Vec3{2, 0, 0}},
		{"+y equator", 3, math.Pi / 2, math.Pi / 2, Vec3{0, 3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSpherical(tt.r, tt.theta, tt.phi)
			if got.Sub(tt.want).Length() > 1e-14 {
				t.Errorf("fromSpherical(%v, %v, %v) = %v, expected %v",
					tt.r, tt.theta, tt.phi, got, tt.want)
			}
		})
	}
}

func TestFromSphericalRadius(t *testing.T) {
	for _, r := range []float64{0, 0.5, 1, 7.25} {
		v := FromSpherical(r, 1.1, 2.9)
		if math.Abs(v.Length()-r) > 1e-13 {
			t.Errorf("|fromSpherical(%v, ...)| = %v", r, v.Length())
		}
	}
}
