package geom

import (
	"fmt"
	"math"
)

// PureBackend implements every operation componentwise with stdlib math.
type PureBackend struct{}

func NewPureBackend() *PureBackend { return &PureBackend{} }

func (p *PureBackend) Name() string    { return "self-contained" }
func (p *PureBackend) Available() bool { return true }

func (p *PureBackend) Dot(a, b Vec3) float64   { return a.Dot(b) }
func (p *PureBackend) Cross(a, b Vec3) Vec3    { return a.Cross(b) }
func (p *PureBackend) Length(v Vec3) float64   { return v.Length() }
func (p *PureBackend) Normalize(v Vec3) (Vec3, error) { return v.Normalize() }

func (p *PureBackend) RotationX(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

func (p *PureBackend) RotationY(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

func (p *PureBackend) RotationZ(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// RotationAxisAngle builds the Rodrigues matrix for a right-handed rotation
// about the (normalized) axis. A zero axis is a domain error.
func (p *PureBackend) RotationAxisAngle(axis Vec3, angle float64) (Mat3, error) {
	u, err := axis.Normalize()
	if err != nil {
		return Mat3{}, fmt.Errorf("geom: rotation axis: %w", ErrDomain)
	}
	s, c := math.Sincos(angle)
	cc := 1 - c
	return Mat3{
		{c + u.X*u.X*cc, u.X*u.Y*cc - u.Z*s, u.X*u.Z*cc + u.Y*s},
		{u.Y*u.X*cc + u.Z*s, c + u.Y*u.Y*cc, u.Y*u.Z*cc - u.X*s},
		{u.Z*u.X*cc - u.Y*s, u.Z*u.Y*cc + u.X*s, c + u.Z*u.Z*cc},
	}, nil
}

func (p *PureBackend) RotationEuler(roll, pitch, yaw float64) Mat3 {
	return p.MulMat(p.RotationZ(yaw), p.MulMat(p.RotationY(pitch), p.RotationX(roll)))
}

func (p *PureBackend) MulMat(a, b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return out
}

func (p *PureBackend) Apply(m Mat3, v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}
