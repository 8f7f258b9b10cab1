//go:build stdonly

package geom

// GonumBackend stub for stdonly builds: unavailable, answers through the
// self-contained implementation.
type GonumBackend struct {
	pure *PureBackend
}

func NewGonumBackend() *GonumBackend {
	return &GonumBackend{pure: NewPureBackend()}
}

func (g *GonumBackend) Name() string    { return "library (not available)" }
func (g *GonumBackend) Available() bool { return false }

func (g *GonumBackend) Dot(a, b Vec3) float64         { return g.pure.Dot(a, b) }
func (g *GonumBackend) Cross(a, b Vec3) Vec3          { return g.pure.Cross(a, b) }
func (g *GonumBackend) Length(v Vec3) float64         { return g.pure.Length(v) }
func (g *GonumBackend) Normalize(v Vec3) (Vec3, error) { return g.pure.Normalize(v) }

func (g *GonumBackend) RotationX(angle float64) Mat3 { return g.pure.RotationX(angle) }
func (g *GonumBackend) RotationY(angle float64) Mat3 { return g.pure.RotationY(angle) }
func (g *GonumBackend) RotationZ(angle float64) Mat3 { return g.pure.RotationZ(angle) }

func (g *GonumBackend) RotationAxisAngle(axis Vec3, angle float64) (Mat3, error) {
	return g.pure.RotationAxisAngle(axis, angle)
}

func (g *GonumBackend) RotationEuler(roll, pitch, yaw float64) Mat3 {
	return g.pure.RotationEuler(roll, pitch, yaw)
}

func (g *GonumBackend) MulMat(a, b Mat3) Mat3    { return g.pure.MulMat(a, b) }
func (g *GonumBackend) Apply(m Mat3, v Vec3) Vec3 { return g.pure.Apply(m, v) }
