// Package geom provides the 3D vector and rotation math under the nucleon
// and orbital generators.
//
// Vec3 and Mat3 are immutable value types; every operation returns a new
// value. Plain componentwise arithmetic (Add, Sub, Scale, FromSpherical)
// lives on the types themselves and is bit-identical no matter which
// implementation is active, which is what keeps seeded position generation
// reproducible across implementation switches.
//
// The operations where an optimized library can actually differ, dot, cross,
// norms, rotation-matrix construction, and matrix products, sit behind
// Backend with two implementations:
//
//   - self-contained: componentwise formulas, Rodrigues axis-angle
//   - library: gonum spatial/r3 quaternion rotations and gonum/mat products
//
// Builds tagged "stdonly" replace the library implementation with a stub
// that reports Available() == false.
package geom
