// Package backend selects between the library and self-contained
// implementations of the math and vector subsystems, and cross-validates
// them against each other.
//
// A Registry owns both implementations of both subsystems. Selection is one
// atomic value per subsystem: reads never block, and a Select is observed by
// the very next operation call on any goroutine. Calling code resolves the
// active implementation at call time:
//
//	reg := backend.New()
//	y, err := reg.Math().SphericalHarmonicReal(1, 0, theta, phi)
//
// Validate runs a fixed battery over both implementations directly, without
// touching the live selection, and reports per-function maximum errors.
package backend
