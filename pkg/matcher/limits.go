package matcher

import (
	"errors"
	"fmt"
)

// DefaultMaxDigits is the digit limit applied when no parameters are given.
const DefaultMaxDigits = 11

// Limits is the resolved configuration of a DecimalNumber matcher.
// It is implemented only by NoLimit, MaxDigits and MaxDigitsAndPlaces.
type Limits interface {
	maxDigits() int
	maxPlaces() (int, bool)
}

// NoLimit applies DefaultMaxDigits and leaves decimal places unrestricted.
type NoLimit struct{}

func (NoLimit) maxDigits() int         { return DefaultMaxDigits }
func (NoLimit) maxPlaces() (int, bool) { return 0, false }

// MaxDigits restricts the number of significant digits only.
type MaxDigits struct {
	Digits int
}

func (l MaxDigits) maxDigits() int       { return l.Digits }
func (MaxDigits) maxPlaces() (int, bool) { return 0, false }

// MaxDigitsAndPlaces restricts both significant digits and decimal places.
type MaxDigitsAndPlaces struct {
	Digits int
	Places int
}

func (l MaxDigitsAndPlaces) maxDigits() int         { return l.Digits }
func (l MaxDigitsAndPlaces) maxPlaces() (int, bool) { return l.Places, true }

// ParseLimits resolves a positional parameter list into Limits.
func ParseLimits(params ...int) (Limits, error) {
	for i, p := range params {
		if p < 0 {
			return nil, errors.Join(ErrInvalidConfiguration, ErrNegativeParam,
				fmt.Errorf("parameter %d is %d", i, p))
		}
	}

	switch len(params) {
	case 0:
		return NoLimit{}, nil
	case 1:
		return MaxDigits{Digits: params[0]}, nil
	case 2:
		return MaxDigitsAndPlaces{Digits: params[0], Places: params[1]}, nil
	default:
		return nil, errors.Join(ErrInvalidConfiguration, ErrInvalidParams,
			fmt.Errorf("got %d parameters, want 0, 1 or 2", len(params)))
	}
}
