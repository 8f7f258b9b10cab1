package geom

import (
	"math"
	"math/rand"
	"testing"
)

var compareVecs = []Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 2, 3},
	{-4, 0.5, 2.25},
	{0.001, -1000, 3.14159},
}

func TestBackendsAgree_VectorOps(t *testing.T) {
	pure := NewPureBackend()
	lib := NewGonumBackend()

	for _, a := range compareVecs {
		for _, b := range compareVecs {
			if d := math.Abs(pure.Dot(a, b) - lib.Dot(a, b)); d > 1e-12 {
				t.Errorf("dot(%v, %v) differs by %v", a, b, d)
			}
			if d := pure.Cross(a, b).Sub(lib.Cross(a, b)).Length(); d > 1e-12 {
				t.Errorf("cross(%v, %v) differs by %v", a, b, d)
			}
		}
		if d := math.Abs(pure.Length(a) - lib.Length(a)); d > 1e-12 {
			t.Errorf("length(%v) differs by %v", a, d)
		}

		pn, err := pure.Normalize(a)
		if err != nil {
			t.Fatalf("normalize(%v): %v", a, err)
		}
		ln, err := lib.Normalize(a)
		if err != nil {
			t.Fatalf("library normalize(%v): %v", a, err)
		}
		if d := pn.Sub(ln).Length(); d > 1e-12 {
			t.Errorf("normalize(%v) differs by %v", a, d)
		}
	}
}

func TestBackendsAgree_AxisRotations(t *testing.T) {
	pure := NewPureBackend()
	lib := NewGonumBackend()

	for _, a := range testAngles {
		if !pure.RotationX(a).ApproxEqual(lib.RotationX(a), 1e-12) {
			t.Errorf("Rx(%v) differs between implementations", a)
		}
		if !pure.RotationY(a).ApproxEqual(lib.RotationY(a), 1e-12) {
			t.Errorf("Ry(%v) differs between implementations", a)
		}
		if !pure.RotationZ(a).ApproxEqual(lib.RotationZ(a), 1e-12) {
			t.Errorf("Rz(%v) differs between implementations", a)
		}
	}
}

func TestBackendsAgree_AxisAngle(t *testing.T) {
	pure := NewPureBackend()
	lib := NewGonumBackend()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 40; i++ {
		axis := Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		if axis == (Vec3{}) {
			continue
		}
		angle := (rng.Float64() - 0.5) * 4 * math.Pi

		pm, err := pure.RotationAxisAngle(axis, angle)
		if err != nil {
			t.Fatalf("axis angle: %v", err)
		}
		lm, err := lib.RotationAxisAngle(axis, angle)
		if err != nil {
			t.Fatalf("library axis angle: %v", err)
		}
		if !pm.ApproxEqual(lm, 1e-12) {
			t.Errorf("axis-angle(%v, %v) differs between implementations", axis, angle)
		}
	}
}

func TestBackendsAgree_EulerAndProducts(t *testing.T) {
	pure := NewPureBackend()
	lib := NewGonumBackend()

	angles := []float64{-2.1, -0.3, 0, 0.7, 1.5708, 3}
	for _, roll := range angles {
		for _, pitch := range angles {
			for _, yaw := range angles {
				pm := pure.RotationEuler(roll, pitch, yaw)
				lm := lib.RotationEuler(roll, pitch, yaw)
				if !pm.ApproxEqual(lm, 1e-12) {
					t.Errorf("euler(%v, %v, %v) differs between implementations", roll, pitch, yaw)
				}
			}
		}
	}

	m := Mat3{
		{0.5, -1, 2},
		{3, 0.25, -0.75},
		{-2, 1, 1.5},
	}
	n := Mat3{
		{1, 2, 0},
		{0, -1, 4},
		{2, 0.5, -3},
	}
	if !pure.MulMat(m, n).ApproxEqual(lib.MulMat(m, n), 1e-12) {
		t.Error("matrix product differs between implementations")
	}
	v := Vec3{0.3, -2, 5}
	if d := pure.Apply(m, v).Sub(lib.Apply(m, v)).Length(); d > 1e-12 {
		t.Errorf("matrix-vector product differs by %v", d)
	}
}
