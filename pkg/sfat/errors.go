package sfat

import "errors"

var (
	// ErrDomain is returned when a formula is evaluated outside its domain,
	// e.g. the logarithm of a non-positive value.
	ErrDomain = errors.New("argument outside formula domain")

	// ErrInvalidDomain is returned when a sampling domain cannot be built.
	ErrInvalidDomain = errors.New("invalid sampling domain")

	// ErrInvalidConstants is returned by Constants.Validate.
	ErrInvalidConstants = errors.New("invalid model constants")
)
