package backend

// FunctionReport summarizes cross-implementation agreement for one function
// family of the validation battery.
type FunctionReport struct {
	Name        string
	Tests       int
	Errors      int
	MaxAbsError float64
	MaxRelError float64
	Passed      bool
}

// Report is the outcome of Registry.Validate. When the library
// implementation is excluded from the build there is nothing to compare:
// LibraryAvailable is false and Functions is empty.
type Report struct {
	Tolerance        float64
	LibraryAvailable bool
	Functions        []FunctionReport
}

func (r *Report) AllPassed() bool {
	for _, f := range r.Functions {
		if !f.Passed {
			return false
		}
	}
	return true
}

// Failed returns the function families outside tolerance.
func (r *Report) Failed() []FunctionReport {
	var out []FunctionReport
	for _, f := range r.Functions {
		if !f.Passed {
			out = append(out, f)
		}
	}
	return out
}
