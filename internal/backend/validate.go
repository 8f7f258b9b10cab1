//go:build !stdonly

package backend

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/periodica/orbsim/internal/geom"
)

// Validate cross-checks every contract operation between the library and
// self-contained implementations on a fixed input battery. Both
// implementations are evaluated directly; the live selection is neither read
// nor written, so validation has no observable side effect on it.
func (r *Registry) Validate(tol float64) *Report {
	rep := &Report{
		Tolerance:        tol,
		LibraryAvailable: r.b.MathLibrary.Available() && r.b.VecLibrary.Available(),
	}
	if !rep.LibraryAvailable {
		return rep
	}

	checks := []struct {
		name string
		run  func(*Registry, *collector)
	}{
		{"factorial", checkFactorial},
		{"double_factorial", checkDoubleFactorial},
		{"binomial", checkBinomial},
		{"gamma_half", checkGammaHalf},
		{"laguerre", checkLaguerre},
		{"assoc_legendre", checkAssocLegendre},
		{"spherical_harmonic", checkSphericalHarmonic},
		{"spherical_harmonic_real", checkSphericalHarmonicReal},
		{"vector_ops", checkVectorOps},
		{"rotation_matrices", checkRotationMatrices},
		{"axis_angle", checkAxisAngle},
		{"euler_angles", checkEuler},
		{"matrix_ops", checkMatrixOps},
		{"orthogonality", checkOrthogonality},
	}
	for _, chk := range checks {
		col := &collector{}
		chk.run(r, col)
		rep.Functions = append(rep.Functions, col.finish(chk.name, tol))
	}
	return rep
}

// collector accumulates pairwise comparisons for one function family.
type collector struct {
	abs, rel []float64
	errs     int
}

func (c *collector) add(a, b float64) {
	d := math.Abs(a - b)
	c.abs = append(c.abs, d)
	c.rel = append(c.rel, d/math.Max(1, math.Max(math.Abs(a), math.Abs(b))))
}

func (c *collector) addVec(a, b geom.Vec3) {
	c.add(a.X, b.X)
	c.add(a.Y, b.Y)
	c.add(a.Z, b.Z)
}

func (c *collector) addMat(a, b geom.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c.add(a[i][j], b[i][j])
		}
	}
}

func (c *collector) fail() { c.errs++ }

func (c *collector) finish(name string, tol float64) FunctionReport {
	fr := FunctionReport{Name: name, Tests: len(c.abs), Errors: c.errs}
	if len(c.abs) > 0 {
		fr.MaxAbsError = floats.Max(c.abs)
		fr.MaxRelError = floats.Max(c.rel)
	}
	fr.Passed = c.errs == 0 && fr.MaxRelError <= tol
	return fr
}

var (
	valAngles = []float64{0, 0.4, math.Pi / 4, math.Pi / 2, 1.9, math.Pi, 4.8, 2 * math.Pi}
	valXs     = []float64{-1, -0.5, 0, 0.5, 1}
	valThetas = []float64{0, 0.6, math.Pi / 2, 2.4, math.Pi}
	valPhis   = []float64{0, 1.1, math.Pi, 5.2}

	valVecs = []geom.Vec3{
		{X: 1}, {Y: 1}, {Z: 1},
		{X: 1, Y: 2, Z: 3},
		{X: -0.5, Y: 4, Z: -2.25},
		{X: 0.001, Y: -1000, Z: 3.14159},
	}
	valAxes = []geom.Vec3{
		{Z: 1}, {X: 1}, {Y: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 0.3, Y: -2, Z: 0.5},
	}
)

func checkFactorial(r *Registry, c *collector) {
	for n := 0; n <= 30; n++ {
		p, err1 := r.b.MathPure.Factorial(n)
		g, err2 := r.b.MathLibrary.Factorial(n)
		if err1 != nil || err2 != nil {
			c.fail()
			continue
		}
		c.add(p, g)
	}
}

func checkDoubleFactorial(r *Registry, c *collector) {
	for n := -1; n <= 40; n++ {
		p, err1 := r.b.MathPure.DoubleFactorial(n)
		g, err2 := r.b.MathLibrary.DoubleFactorial(n)
		if err1 != nil || err2 != nil {
			c.fail()
			continue
		}
		c.add(p, g)
	}
}

func checkBinomial(r *Registry, c *collector) {
	for n := 0; n <= 20; n++ {
		for k := 0; k <= n; k++ {
			p, err1 := r.b.MathPure.Binomial(n, k)
			g, err2 := r.b.MathLibrary.Binomial(n, k)
			if err1 != nil || err2 != nil {
				c.fail()
				continue
			}
			c.add(p, g)
		}
	}
}

func checkGammaHalf(r *Registry, c *collector) {
	for n := 1; n <= 30; n++ {
		p, err1 := r.b.MathPure.GammaHalf(n)
		g, err2 := r.b.MathLibrary.GammaHalf(n)
		if err1 != nil || err2 != nil {
			c.fail()
			continue
		}
		c.add(p, g)
	}
}

func checkLaguerre(r *Registry, c *collector) {
	alphas := []float64{0, 0.5, 1, 2, 3}
	xs := []float64{0, 0.5, 1, 2, 5, 10}
	for n := 0; n <= 8; n++ {
		for _, alpha := range alphas {
			for _, x := range xs {
				p, err1 := r.b.MathPure.Laguerre(n, alpha, x)
				g, err2 := r.b.MathLibrary.Laguerre(n, alpha, x)
				if err1 != nil || err2 != nil {
					c.fail()
					continue
				}
				c.add(p, g)
			}
		}
	}
}

func checkAssocLegendre(r *Registry, c *collector) {
	for l := 0; l <= 5; l++ {
		for m := -l; m <= l; m++ {
			for _, x := range valXs {
				p, err1 := r.b.MathPure.AssocLegendre(m, l, x)
				g, err2 := r.b.MathLibrary.AssocLegendre(m, l, x)
				if err1 != nil || err2 != nil {
					c.fail()
					continue
				}
				c.add(p, g)
			}
		}
	}
}

func checkSphericalHarmonic(r *Registry, c *collector) {
	for l := 0; l <= 4; l++ {
		for m := -l; m <= l; m++ {
			for _, theta := range valThetas {
				for _, phi := range valPhis {
					p, err1 := r.b.MathPure.SphericalHarmonic(l, m, theta, phi)
					g, err2 := r.b.MathLibrary.SphericalHarmonic(l, m, theta, phi)
					if err1 != nil || err2 != nil {
						c.fail()
						continue
					}
					c.add(real(p), real(g))
					c.add(imag(p), imag(g))
				}
			}
		}
	}
}

func checkSphericalHarmonicReal(r *Registry, c *collector) {
	for l := 0; l <= 4; l++ {
		for m := -l; m <= l; m++ {
			for _, theta := range valThetas {
				for _, phi := range valPhis {
					p, err1 := r.b.MathPure.SphericalHarmonicReal(l, m, theta, phi)
					g, err2 := r.b.MathLibrary.SphericalHarmonicReal(l, m, theta, phi)
					if err1 != nil || err2 != nil {
						c.fail()
						continue
					}
					c.add(p, g)
				}
			}
		}
	}
}

func checkVectorOps(r *Registry, c *collector) {
	for _, a := range valVecs {
		for _, b := range valVecs {
			c.add(r.b.VecPure.Dot(a, b), r.b.VecLibrary.Dot(a, b))
			c.addVec(r.b.VecPure.Cross(a, b), r.b.VecLibrary.Cross(a, b))
		}
		c.add(r.b.VecPure.Length(a), r.b.VecLibrary.Length(a))

		p, err1 := r.b.VecPure.Normalize(a)
		g, err2 := r.b.VecLibrary.Normalize(a)
		if err1 != nil || err2 != nil {
			c.fail()
			continue
		}
		c.addVec(p, g)
	}
}

func checkRotationMatrices(r *Registry, c *collector) {
	for _, a := range valAngles {
		c.addMat(r.b.VecPure.RotationX(a), r.b.VecLibrary.RotationX(a))
		c.addMat(r.b.VecPure.RotationY(a), r.b.VecLibrary.RotationY(a))
		c.addMat(r.b.VecPure.RotationZ(a), r.b.VecLibrary.RotationZ(a))
	}
}

func checkAxisAngle(r *Registry, c *collector) {
	for _, axis := range valAxes {
		for _, a := range valAngles {
			p, err1 := r.b.VecPure.RotationAxisAngle(axis, a)
			g, err2 := r.b.VecLibrary.RotationAxisAngle(axis, a)
			if err1 != nil || err2 != nil {
				c.fail()
				continue
			}
			c.addMat(p, g)
		}
	}
	// Rotation about z must reduce to the plain z rotation on both sides.
	for _, a := range valAngles {
		p, err := r.b.VecPure.RotationAxisAngle(geom.UnitZ(), a)
		if err != nil {
			c.fail()
			continue
		}
		c.addMat(p, r.b.VecPure.RotationZ(a))
		g, err := r.b.VecLibrary.RotationAxisAngle(geom.UnitZ(), a)
		if err != nil {
			c.fail()
			continue
		}
		c.addMat(g, r.b.VecLibrary.RotationZ(a))
	}
}

func checkEuler(r *Registry, c *collector) {
	angles := []float64{-1.2, 0, 0.4, math.Pi / 3, 2.8}
	for _, roll := range angles {
		for _, pitch := range angles {
			for _, yaw := range angles {
				c.addMat(
					r.b.VecPure.RotationEuler(roll, pitch, yaw),
					r.b.VecLibrary.RotationEuler(roll, pitch, yaw),
				)
			}
		}
	}
}

func checkMatrixOps(r *Registry, c *collector) {
	ms := []geom.Mat3{
		geom.Identity(),
		{{0.5, -1, 2}, {3, 0.25, -0.75}, {-2, 1, 1.5}},
		{{1, 2, 0}, {0, -1, 4}, {2, 0.5, -3}},
	}
	for _, a := range ms {
		for _, b := range ms {
			c.addMat(r.b.VecPure.MulMat(a, b), r.b.VecLibrary.MulMat(a, b))
		}
		for _, v := range valVecs {
			c.addVec(r.b.VecPure.Apply(a, v), r.b.VecLibrary.Apply(a, v))
		}
	}
}

// checkOrthogonality verifies R R^T = I on each implementation's own
// arithmetic rather than comparing across them.
func checkOrthogonality(r *Registry, c *collector) {
	id := geom.Identity()
	for _, impl := range []geom.Backend{r.b.VecPure, r.b.VecLibrary} {
		for _, axis := range valAxes {
			for _, a := range valAngles {
				m, err := impl.RotationAxisAngle(axis, a)
				if err != nil {
					c.fail()
					continue
				}
				c.addMat(impl.MulMat(m, m.Transposed()), id)
			}
		}
	}
}
