package special

import "errors"

// Domain errors for special-function evaluation.
var (
	// ErrDomain indicates an argument outside a function's mathematical domain.
	ErrDomain = errors.New("special: argument outside domain")

	// ErrOverflow indicates a result too large for float64.
	ErrOverflow = errors.New("special: result overflows float64")
)
