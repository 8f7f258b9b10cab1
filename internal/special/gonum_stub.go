//go:build stdonly

package special

// GonumBackend stub for stdonly builds. It reports itself unavailable and
// answers through the self-contained evaluator so callers that never check
// Available() still get correct numbers.
type GonumBackend struct {
	pure *PureBackend
}

func NewGonumBackend() *GonumBackend {
	return &GonumBackend{pure: NewPureBackend()}
}

func (b *GonumBackend) Name() string    { return "library (not available)" }
func (b *GonumBackend) Available() bool { return false }

func (b *GonumBackend) Factorial(n int) (float64, error) { return b.pure.Factorial(n) }

func (b *GonumBackend) DoubleFactorial(n int) (float64, error) { return b.pure.DoubleFactorial(n) }

func (b *GonumBackend) Binomial(n, k int) (float64, error) { return b.pure.Binomial(n, k) }

func (b *GonumBackend) GammaHalf(n int) (float64, error) { return b.pure.GammaHalf(n) }

func (b *GonumBackend) Laguerre(n int, alpha, x float64) (float64, error) {
	return b.pure.Laguerre(n, alpha, x)
}

func (b *GonumBackend) AssocLegendre(m, l int, x float64) (float64, error) {
	return b.pure.AssocLegendre(m, l, x)
}

func (b *GonumBackend) SphericalHarmonic(l, m int, theta, phi float64) (complex128, error) {
	return b.pure.SphericalHarmonic(l, m, theta, phi)
}

func (b *GonumBackend) SphericalHarmonicReal(l, m int, theta, phi float64) (float64, error) {
	return b.pure.SphericalHarmonicReal(l, m, theta, phi)
}
