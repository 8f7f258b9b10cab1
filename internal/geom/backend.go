package geom

// Backend is the set of vector and rotation operations with two
// interchangeable implementations. Rotation matrices are right-handed and
// take angles in radians; RotationEuler composes in the fixed order
// Rz(yaw) Ry(pitch) Rx(roll).
type Backend interface {
	Name() string
	Available() bool
	Dot(a, b Vec3) float64
	Cross(a, b Vec3) Vec3
	Length(v Vec3) float64
	Normalize(v Vec3) (Vec3, error)
	RotationX(angle float64) Mat3
	RotationY(angle float64) Mat3
	RotationZ(angle float64) Mat3
	RotationAxisAngle(axis Vec3, angle float64) (Mat3, error)
	RotationEuler(roll, pitch, yaw float64) Mat3
	MulMat(a, b Mat3) Mat3
	Apply(m Mat3, v Vec3) Vec3
}
