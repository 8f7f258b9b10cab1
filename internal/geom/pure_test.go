package geom

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

var testAngles = []float64{0, 0.1, math.Pi / 6, math.Pi / 4, math.Pi / 2, 1.9, math.Pi, 4.2, 2 * math.Pi}

func TestRotationX_MapsYAxis(t *testing.T) {
	b := NewPureBackend()

	for _, a := range testAngles {
		got := b.Apply(b.RotationX(a), UnitY())
		want := Vec3{0, math.Cos(a), math.Sin(a)}
		if got.Sub(want).Length() > 1e-14 {
			t.Errorf("Rx(%v) y = %v, expected %v", a, got, want)
		}
	}
}

func TestRotationY_MapsXAxis(t *testing.T) {
	b := NewPureBackend()

	for _, a := range testAngles {
		got := b.Apply(b.RotationY(a), UnitX())
		want := Vec3{math.Cos(a), 0, -math.Sin(a)}
		if got.Sub(want).Length() > 1e-14 {
			t.Errorf("Ry(%v) x = %v, expected %v", a, got, want)
		}
	}
}

func TestRotationZ_MapsXAxis(t *testing.T) {
	b := NewPureBackend()

	for _, a := range testAngles {
		got := b.Apply(b.RotationZ(a), UnitX())
		want := Vec3{math.Cos(a), math.Sin(a), 0}
		if got.Sub(want).Length() > 1e-14 {
			t.Errorf("Rz(%v) x = %v, expected %v", a, got, want)
		}
	}
}

func TestRotationsOrthogonal(t *testing.T) {
	b := NewPureBackend()
	id := Identity()

	builders := map[string]func(float64) Mat3{
		"x": b.RotationX,
		"y": b.RotationY,
		"z": b.RotationZ,
	}
	for name, build := range builders {
		for _, a := range testAngles {
			r := build(a)
			if got := b.MulMat(r, r.Transposed()); !got.ApproxEqual(id, 1e-13) {
				t.Errorf("R%s(%v) R^T != I: %v", name, a, got)
			}
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	b := NewPureBackend()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		v := Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		axis := Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		if axis == (Vec3{}) {
			continue
		}
		angle := rng.Float64() * 2 * math.Pi

		r, err := b.RotationAxisAngle(axis, angle)
		if err != nil {
			t.Fatalf("axis angle: %v", err)
		}
		got := b.Apply(r, v).Length()
		if math.Abs(got-v.Length()) > 1e-12 {
			t.Errorf("rotation changed length: %v -> %v", v.Length(), got)
		}
	}
}

func TestAxisAngleMatchesZRotation(t *testing.T) {
	b := NewPureBackend()

	for _, a := range testAngles {
		r, err := b.RotationAxisAngle(UnitZ(), a)
		if err != nil {
			t.Fatalf("axis angle: %v", err)
		}
		if !r.ApproxEqual(b.RotationZ(a), 1e-14) {
			t.Errorf("axis-angle about z at %v differs from Rz", a)
		}
	}
}

func TestAxisAngle_NormalizesAxis(t *testing.T) {
	b := NewPureBackend()

	scaled, err := b.RotationAxisAngle(Vec3{0, 0, 5.5}, 1.2)
	if err != nil {
		t.Fatalf("axis angle: %v", err)
	}
	unit, err := b.RotationAxisAngle(UnitZ(), 1.2)
	if err != nil {
		t.Fatalf("axis angle: %v", err)
	}
	if !scaled.ApproxEqual(unit, 1e-15) {
		t.Error("axis length should not affect the rotation")
	}
}

func TestAxisAngle_ZeroAxis(t *testing.T) {
	b := NewPureBackend()

	if _, err := b.RotationAxisAngle(Vec3{}, 1); !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error for zero axis, got %v", err)
	}
}

func TestEulerComposition(t *testing.T) {
	b := NewPureBackend()

	angles := []float64{-1.2, 0, 0.4, math.Pi / 3, 2.8}
	for _, roll := range angles {
		for _, pitch := range angles {
			for _, yaw := range angles {
				got := b.RotationEuler(roll, pitch, yaw)
				want := b.MulMat(b.RotationZ(yaw), b.MulMat(b.RotationY(pitch), b.RotationX(roll)))
				if !got.ApproxEqual(want, 1e-15) {
					t.Errorf("euler(%v, %v, %v) differs from Rz Ry Rx", roll, pitch, yaw)
				}
			}
		}
	}
}

func TestMulMat(t *testing.T) {
	b := NewPureBackend()

	m := Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	if got := b.MulMat(m, Identity()); !got.ApproxEqual(m, 0) {
		t.Errorf("M I = %v, expected M", got)
	}
	if got := b.MulMat(Identity(), m); !got.ApproxEqual(m, 0) {
		t.Errorf("I M = %v, expected M", got)
	}

	n := Mat3{
		{9, 8, 7},
		{6, 5, 4},
		{3, 2, 1},
	}
	want := Mat3{
		{30, 24, 18},
		{84, 69, 54},
		{138, 114, 90},
	}
	if got := b.MulMat(m, n); !got.ApproxEqual(want, 0) {
		t.Errorf("M N = %v, expected %v", got, want)
	}
}

func TestApply(t *testing.T) {
	b := NewPureBackend()

	m := Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	got := b.Apply(m, Vec3{1, -1, 2})
	want := Vec3{5, 11, 17}
	if got != want {
		t.Errorf("M v = %v, expected %v", got, want)
	}
}
