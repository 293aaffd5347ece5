package matcher

import "errors"

var (
	// ErrInvalidConfiguration is the parent of every construction-time error.
	ErrInvalidConfiguration = errors.New("invalid matcher configuration")

	// ErrInvalidParams is returned when a matcher receives an unsupported number of parameters.
	ErrInvalidParams = errors.New("unsupported number of matcher parameters")

	// ErrNegativeParam is returned when a digit or decimal place limit is negative.
	ErrNegativeParam = errors.New("matcher parameter must not be negative")
)
