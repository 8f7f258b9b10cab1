package geom

import (
	"fmt"
	"math"
)

// Vec3 is an immutable 3D vector. Methods return new values.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}
func (v Vec3) Length() float64        { return math.Sqrt(v.Dot(v)) }
func (v Vec3) LengthSquared() float64 { return v.Dot(v) }

// Normalize returns the unit vector in v's direction. The zero vector has no
// direction and is a domain error.
func (v Vec3) Normalize() (Vec3, error) {
	l := v.Length()
	if l == 0 {
		return Vec3{}, fmt.Errorf("geom: normalize zero vector: %w", ErrDomain)
	}
	return v.Scale(1 / l), nil
}

func UnitX() Vec3 { return Vec3{X: 1} }
func UnitY() Vec3 { return Vec3{Y: 1} }
func UnitZ() Vec3 { return Vec3{Z: 1} }

// FromSpherical maps physics-convention spherical coordinates (radius,
// polar angle theta from +z, azimuthal angle phi from +x) to Cartesian.
// This is deliberately plain float math with no implementation dispatch:
// generated positions must not depend on which backend is selected.
func FromSpherical(r, theta, phi float64) Vec3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return Vec3{
		X: r * st * cp,
		Y: r * st * sp,
		Z: r * ct,
	}
}
