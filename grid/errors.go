package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyField indicates the field has no rows or no columns.
	ErrEmptyField = errors.New("grid: field must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnrecognizedCell indicates a byte other than '.' or '@' in the field.
	ErrUnrecognizedCell = errors.New("grid: field cell must be '.' or '@'")
	// ErrTooLarge indicates the field exceeds the 50x50 bound.
	ErrTooLarge = errors.New("grid: field dimensions exceed the 50x50 bound")
)
