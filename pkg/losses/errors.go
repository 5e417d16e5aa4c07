package losses

import "errors"

// Sentinel kinds for evaluation errors.
var (
	ErrMissingColumn = errors.New("missing required column")
)
