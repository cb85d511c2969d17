package shared

import (
	"errors"
)

var EmptyLineErr = errors.New("empty line")

// ErrNoSource is returned when the source file cannot be opened or read.
// Nothing is written when it is hit.
var ErrNoSource = errors.New("cannot read source")
