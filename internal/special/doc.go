// Package special evaluates the special functions behind hydrogen-like
// orbital densities: factorials, binomial coefficients, half-integer gamma
// values, generalized Laguerre polynomials, associated Legendre functions,
// and complex/real spherical harmonics.
//
// Two interchangeable implementations satisfy Backend:
//
//   - self-contained: stable three-term recurrences, stdlib math only
//   - library: explicit closed forms over gonum combinatorics and math.Gamma
//
// Both share one set of domain rules and sign conventions (Condon-Shortley
// phase inside P_l^m, phase-free real harmonics), so their results agree to
// tight tolerance and callers can swap one for the other at run time through
// the backend registry:
//
//	b := special.NewPureBackend()
//	y, err := b.SphericalHarmonicReal(1, 0, theta, phi)
//
// Builds tagged "stdonly" exclude the gonum-based implementation; its
// constructor then returns a stub that reports Available() == false and
// falls back to the self-contained evaluator.
package special
