package special

import (
	"fmt"
	"math"
)

// MaxFactorial is the largest n with n! representable in float64.
const MaxFactorial = 170

// maxDoubleFactorial is the largest n with n!! representable in float64.
const maxDoubleFactorial = 300

// legendreSlack tolerates arguments a hair outside [-1, 1] from upstream
// cos/sin round-off before declaring a domain error.
const legendreSlack = 1e-12

type Backend interface {
	Name() string
	Available() bool
	Factorial(n int) (float64, error)
	DoubleFactorial(n int) (float64, error)
	Binomial(n, k int) (float64, error)
	GammaHalf(n int) (float64, error)
	Laguerre(n int, alpha, x float64) (float64, error)
	AssocLegendre(m, l int, x float64) (float64, error)
	SphericalHarmonic(l, m int, theta, phi float64) (complex128, error)
	SphericalHarmonicReal(l, m int, theta, phi float64) (float64, error)
}

// clampUnit validates x against [-1-slack, 1+slack] and pins it to [-1, 1].
func clampUnit(x float64) (float64, error) {
	if math.IsNaN(x) || math.Abs(x) > 1+legendreSlack {
		return 0, fmt.Errorf("special: argument %v outside [-1, 1]: %w", x, ErrDomain)
	}
	if x > 1 {
		return 1, nil
	}
	if x < -1 {
		return -1, nil
	}
	return x, nil
}

func checkHarmonicOrder(l, m int) error {
	if l < 0 || m < -l || m > l {
		return fmt.Errorf("special: harmonic degree l=%d, order m=%d: %w", l, m, ErrDomain)
	}
	return nil
}

// realCombination builds the real-basis harmonic from y = Y_l^|m| with the
// Condon-Shortley phase removed. Both implementations share this definition.
func realCombination(y complex128, m int) float64 {
	sign := 1.0
	if m%2 != 0 {
		sign = -1
	}
	switch {
	case m == 0:
		return real(y)
	case m > 0:
		return sign * math.Sqrt2 * real(y)
	default:
		return sign * math.Sqrt2 * imag(y)
	}
}
