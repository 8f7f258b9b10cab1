//go:build stdonly

package backend

// Validate in stdonly builds: the library implementation is compiled out,
// so there is no second implementation to compare against.
func (r *Registry) Validate(tol float64) *Report {
	return &Report{
		Tolerance:        tol,
		LibraryAvailable: r.b.MathLibrary.Available() && r.b.VecLibrary.Available(),
	}
}
