package pointwise

import "errors"

// Sentinel kinds for pointwise loss errors.
var (
	ErrEmptyVector       = errors.New("empty vector")
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
