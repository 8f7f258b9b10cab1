//go:build !stdonly

package geom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// GonumBackend routes vector algebra through gonum spatial/r3 and builds
// rotations from r3 quaternions, with matrix products on gonum/mat.
type GonumBackend struct{}

func NewGonumBackend() *GonumBackend { return &GonumBackend{} }

func (g *GonumBackend) Name() string    { return "library" }
func (g *GonumBackend) Available() bool { return true }

func (g *GonumBackend) Dot(a, b Vec3) float64 {
	return r3.Dot(r3.Vec(a), r3.Vec(b))
}

func (g *GonumBackend) Cross(a, b Vec3) Vec3 {
	return Vec3(r3.Cross(r3.Vec(a), r3.Vec(b)))
}

func (g *GonumBackend) Length(v Vec3) float64 {
	return r3.Norm(r3.Vec(v))
}

// Normalize guards the zero vector before handing off to r3.Unit, which
// would return NaNs instead of failing.
func (g *GonumBackend) Normalize(v Vec3) (Vec3, error) {
	if v == (Vec3{}) {
		return Vec3{}, fmt.Errorf("geom: normalize zero vector: %w", ErrDomain)
	}
	return Vec3(r3.Unit(r3.Vec(v))), nil
}

func (g *GonumBackend) RotationX(angle float64) Mat3 {
	return matrixFromRotation(r3.NewRotation(angle, r3.Vec{X: 1}))
}

func (g *GonumBackend) RotationY(angle float64) Mat3 {
	return matrixFromRotation(r3.NewRotation(angle, r3.Vec{Y: 1}))
}

func (g *GonumBackend) RotationZ(angle float64) Mat3 {
	return matrixFromRotation(r3.NewRotation(angle, r3.Vec{Z: 1}))
}

func (g *GonumBackend) RotationAxisAngle(axis Vec3, angle float64) (Mat3, error) {
	if axis == (Vec3{}) {
		return Mat3{}, fmt.Errorf("geom: rotation axis: %w", ErrDomain)
	}
	return matrixFromRotation(r3.NewRotation(angle, r3.Vec(axis))), nil
}

func (g *GonumBackend) RotationEuler(roll, pitch, yaw float64) Mat3 {
	return g.MulMat(g.RotationZ(yaw), g.MulMat(g.RotationY(pitch), g.RotationX(roll)))
}

func (g *GonumBackend) MulMat(a, b Mat3) Mat3 {
	var out mat.Dense
	out.Mul(denseOf(a), denseOf(b))
	return matOf(&out)
}

func (g *GonumBackend) Apply(m Mat3, v Vec3) Vec3 {
	var out mat.VecDense
	out.MulVec(denseOf(m), mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return Vec3{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// matrixFromRotation reads the rotation's matrix off the rotated basis
// vectors (columns are the images of x, y, z).
func matrixFromRotation(rot r3.Rotation) Mat3 {
	cx := rot.Rotate(r3.Vec{X: 1})
	cy := rot.Rotate(r3.Vec{Y: 1})
	cz := rot.Rotate(r3.Vec{Z: 1})
	return Mat3{
		{cx.X, cy.X, cz.X},
		{cx.Y, cy.Y, cz.Y},
		{cx.Z, cy.Z, cz.Z},
	}
}

func denseOf(m Mat3) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

func matOf(d *mat.Dense) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = d.At(i, j)
		}
	}
	return out
}
