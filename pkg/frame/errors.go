package frame

import "errors"

// Sentinel kinds for frame errors.
var (
	ErrUnknownColumn     = errors.New("unknown column")
	ErrNotNumeric        = errors.New("column is not numeric")
	ErrDuplicateColumn   = errors.New("duplicate column name")
	ErrLengthMismatch    = errors.New("series length mismatch")
	ErrUnsupportedNative = errors.New("unsupported native dataframe type")
)
