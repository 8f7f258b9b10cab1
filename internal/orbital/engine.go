// Package orbital evaluates hydrogen-like electron orbital probability
// densities on top of the special-function layer, with optional effective
// nuclear charge screening for multi-electron atoms, and samples orbital
// point clouds for rendering.
//
// Wavefunctions use Bohr-radius units (a0 = 1). Probability densities are
// |psi|^2 = R_nl(r)^2 |Y_lm(theta,phi)|^2, non-negative everywhere and
// normalized so that the radial integral of r^2 R^2 is 1.
package orbital

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/periodica/orbsim/internal/backend"
	"github.com/periodica/orbsim/internal/geom"
	"github.com/periodica/orbsim/internal/special"
)

var (
	ErrDomain   = errors.New("orbital: argument outside domain")
	ErrSampling = errors.New("orbital: cloud sampling did not converge")
)

// SamplingError carries the context of a rejection sampler that ran out
// of its draw budget.
type SamplingError struct {
	N, L, M  int
	Got      int
	Want     int
	Attempts int
	Wrapped  error
}

func (e *SamplingError) Error() string {
	return fmt.Sprintf("orbital: sampled %d of %d points for %s after %d draws: %v",
		e.Got, e.Want, OrbitalName(e.N, e.L, e.M), e.Attempts, e.Wrapped)
}

func (e *SamplingError) Unwrap() error {
	return e.Wrapped
}

const (
	envelopeRadialSteps  = 256
	envelopeAngularSteps = 128
	envelopeMargin       = 1.25
	samplerMaxTries      = 10000
)

// Engine evaluates orbital wavefunctions through the registry's active
// math implementation, resolved on every call.
type Engine struct {
	reg *backend.Registry

	// sampler pins cloud generation to the self-contained functions so a
	// seed produces the same cloud on every build and backend selection.
	sampler special.Backend
}

func NewEngine(reg *backend.Registry) *Engine {
	return &Engine{reg: reg, sampler: special.NewPureBackend()}
}

func checkQuantum(n, l, m int) error {
	if n < 1 || l < 0 || l >= n {
		return fmt.Errorf("orbital: quantum numbers n=%d l=%d: %w", n, l, ErrDomain)
	}
	if m < -l || m > l {
		return fmt.Errorf("orbital: quantum numbers l=%d m=%d: %w", l, m, ErrDomain)
	}
	return nil
}

// RadialWavefunction evaluates R_nl(r) for nuclear charge Z:
//
//	R_nl(r) = sqrt((2Z/n)^3 (n-l-1)! / (2n (n+l)!)) rho^l e^(-rho/2) L^(2l+1)_(n-l-1)(rho)
//
// with rho = 2Zr/n. The value can be negative; probability comes from its
// square.
func (e *Engine) RadialWavefunction(n, l int, r, Z float64) (float64, error) {
	return radialOn(e.reg.Math(), n, l, r, Z)
}

// AngularDensity evaluates |Y_lm(theta, phi)|^2.
func (e *Engine) AngularDensity(l, m int, theta, phi float64) (float64, error) {
	return angularOn(e.reg.Math(), l, m, theta, phi)
}

// Probability evaluates the full density R_nl(r)^2 |Y_lm|^2.
func (e *Engine) Probability(n, l, m int, r, theta, phi, Z float64) (float64, error) {
	if err := checkQuantum(n, l, m); err != nil {
		return 0, err
	}
	sf := e.reg.Math()
	radial, err := radialOn(sf, n, l, r, Z)
	if err != nil {
		return 0, err
	}
	angular, err := angularOn(sf, l, m, theta, phi)
	if err != nil {
		return 0, err
	}
	return radial * radial * angular, nil
}

// RadialDistribution samples the radial probability density r^2 R_nl(r)^2
// on a uniform grid of the given size over [0, rMax]. It returns the radii
// and the matching densities, sized for terminal plotting.
func (e *Engine) RadialDistribution(n, l int, Z, rMax float64, samples int) ([]float64, []float64, error) {
	if samples < 2 {
		return nil, nil, fmt.Errorf("orbital: %d samples: %w", samples, ErrDomain)
	}
	if rMax <= 0 {
		return nil, nil, fmt.Errorf("orbital: rMax %g: %w", rMax, ErrDomain)
	}
	sf := e.reg.Math()
	rs := make([]float64, samples)
	ds := make([]float64, samples)
	for i := range rs {
		r := rMax * float64(i) / float64(samples-1)
		w, err := radialOn(sf, n, l, r, Z)
		if err != nil {
			return nil, nil, err
		}
		rs[i] = r
		ds[i] = r * r * w * w
	}
	return rs, ds, nil
}

// SampleCloud draws count points distributed according to |psi|^2 using
// seeded rejection sampling. Output is a pure function of the arguments:
// the RNG is scoped to the call and consumed in a fixed order per attempt
// (radius, cos(theta), phi, acceptance), and density evaluation uses the
// self-contained functions regardless of the registry selection.
func (e *Engine) SampleCloud(n, l, m int, Z float64, count int, seed int64) ([]geom.Vec3, error) {
	if err := checkQuantum(n, l, m); err != nil {
		return nil, err
	}
	if Z <= 0 {
		return nil, fmt.Errorf("orbital: charge %g: %w", Z, ErrDomain)
	}
	if count < 0 {
		return nil, fmt.Errorf("orbital: %d points: %w", count, ErrDomain)
	}

	// Proposals are uniform in (r, cos(theta), phi), so the acceptance
	// target is the joint density r^2 R^2 |Y|^2 in those coordinates. The
	// radial and angular factors are bounded separately on a coarse grid.
	rMax := (2*float64(n*n) + 10) / Z
	bound, err := e.envelope(n, l, m, Z, rMax)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]geom.Vec3, 0, count)
	for tries := 0; len(out) < count; tries++ {
		if tries >= samplerMaxTries*count {
			return nil, &SamplingError{
				N: n, L: l, M: m,
				Got: len(out), Want: count, Attempts: tries,
				Wrapped: ErrSampling,
			}
		}
		r := rMax * rng.Float64()
		cosTheta := 2*rng.Float64() - 1
		phi := 2 * math.Pi * rng.Float64()
		u := rng.Float64()

		theta := math.Acos(cosTheta)
		w, err := radialOn(e.sampler, n, l, r, Z)
		if err != nil {
			return nil, err
		}
		a, err := angularOn(e.sampler, l, m, theta, phi)
		if err != nil {
			return nil, err
		}
		if u*bound <= r*r*w*w*a {
			out = append(out, geom.FromSpherical(r, theta, phi))
		}
	}
	return out, nil
}

// envelope bounds r^2 R^2 |Y|^2 over the proposal region. The density
// factorizes, so the product of per-factor grid maxima with a safety
// margin dominates the true maximum.
func (e *Engine) envelope(n, l, m int, Z, rMax float64) (float64, error) {
	maxRadial := 0.0
	for i := 1; i <= envelopeRadialSteps; i++ {
		r := rMax * float64(i) / envelopeRadialSteps
		w, err := radialOn(e.sampler, n, l, r, Z)
		if err != nil {
			return 0, err
		}
		if d := r * r * w * w; d > maxRadial {
			maxRadial = d
		}
	}
	maxAngular := 0.0
	for j := 0; j <= envelopeAngularSteps; j++ {
		theta := math.Acos(1 - 2*float64(j)/envelopeAngularSteps)
		a, err := angularOn(e.sampler, l, m, theta, 0)
		if err != nil {
			return 0, err
		}
		if a > maxAngular {
			maxAngular = a
		}
	}
	bound := envelopeMargin * maxRadial * maxAngular
	if bound <= 0 || math.IsNaN(bound) || math.IsInf(bound, 0) {
		return 0, fmt.Errorf("orbital: degenerate density bound %g: %w", bound, ErrSampling)
	}
	return bound, nil
}

func radialOn(sf special.Backend, n, l int, r, Z float64) (float64, error) {
	if n < 1 || l < 0 || l >= n {
		return 0, fmt.Errorf("orbital: quantum numbers n=%d l=%d: %w", n, l, ErrDomain)
	}
	if r < 0 {
		return 0, fmt.Errorf("orbital: radius %g: %w", r, ErrDomain)
	}
	if Z <= 0 {
		return 0, fmt.Errorf("orbital: charge %g: %w", Z, ErrDomain)
	}

	rho := 2 * Z * r / float64(n)
	num, err := sf.Factorial(n - l - 1)
	if err != nil {
		return 0, err
	}
	den, err := sf.Factorial(n + l)
	if err != nil {
		return 0, err
	}
	lag, err := sf.Laguerre(n-l-1, float64(2*l+1), rho)
	if err != nil {
		return 0, err
	}
	norm := math.Sqrt(math.Pow(2*Z/float64(n), 3) * num / (2 * float64(n) * den))
	return norm * math.Pow(rho, float64(l)) * math.Exp(-rho/2) * lag, nil
}

func angularOn(sf special.Backend, l, m int, theta, phi float64) (float64, error) {
	if l < 0 || m < -l || m > l {
		return 0, fmt.Errorf("orbital: quantum numbers l=%d m=%d: %w", l, m, ErrDomain)
	}
	y, err := sf.SphericalHarmonic(l, m, theta, phi)
	if err != nil {
		return 0, err
	}
	return real(y)*real(y) + imag(y)*imag(y), nil
}
