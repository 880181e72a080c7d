package wave

import "errors"

// Errors returned by wave measurements.
var (
	ErrInvalidFilterParameter = errors.New("wave: invalid filter parameter")
	ErrInsufficientData       = errors.New("wave: insufficient data")
	ErrInvalidArgument        = errors.New("wave: invalid argument")
	ErrDegenerateSpectrum     = errors.New("wave: degenerate spectrum")
)
