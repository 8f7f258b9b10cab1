package geom

import "errors"

// ErrDomain indicates a geometric argument with no defined result, such as
// normalizing the zero vector or rotating about a zero-length axis.
var ErrDomain = errors.New("geom: argument outside domain")
