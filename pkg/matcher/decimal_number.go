package matcher

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalNumber validates that a value is nil or an exact decimal number
// within configured digit and decimal place limits.
type DecimalNumber struct {
	limits Limits
}

var _ Matcher = (*DecimalNumber)(nil)

// NewDecimalNumber creates a matcher from zero, one or two parameters:
//   - none: at most DefaultMaxDigits significant digits
//   - (digits): at most digits significant digits
//   - (digits, places): both limits must hold
func NewDecimalNumber(params ...int) (*DecimalNumber, error) {
	limits, err := ParseLimits(params...)
	if err != nil {
		return nil, err
	}
	return &DecimalNumber{limits: limits}, nil
}

// MustDecimalNumber is like NewDecimalNumber but panics on invalid parameters.
func MustDecimalNumber(params ...int) *DecimalNumber {
	m, err := NewDecimalNumber(params...)
	if err != nil {
		panic(err)
	}
	return m
}

// NewDecimalNumberWithLimits creates a matcher from already resolved limits.
// A nil limits value is treated as NoLimit.
func NewDecimalNumberWithLimits(limits Limits) *DecimalNumber {
	if limits == nil {
		limits = NoLimit{}
	}
	return &DecimalNumber{limits: limits}
}

// Limits returns the resolved configuration.
func (m *DecimalNumber) Limits() Limits {
	return m.limits
}

// Match validates value. A nil value is always valid. A value that cannot be
// parsed yields only InvalidDecimalNumber; otherwise the digit and decimal
// place checks run independently and may both report.
func (m *DecimalNumber) Match(value *string) Result {
	var res Result
	if value == nil {
		return res
	}

	number, err := decimal.NewFromString(*value)
	if err != nil {
		res.add(InvalidDecimalNumber)
		return res
	}

	if precision(number) > m.limits.maxDigits() {
		res.add(ExceededDigits)
	}

	if places, ok := m.limits.maxPlaces(); ok && decimalPlaces(number) > places {
		res.add(ExceededDecimalPlaces)
	}

	return res
}

// MatchString validates a present value.
func (m *DecimalNumber) MatchString(value string) Result {
	return m.Match(&value)
}

// precision counts significant digits: leading zeros never count, neither do
// trailing zeros of the fraction. Zeros of the integer part and zeros implied
// by a positive exponent do. Zero has a precision of one.
func precision(d decimal.Decimal) int {
	coef := new(big.Int).Abs(d.Coefficient())
	if coef.Sign() == 0 {
		return 1
	}
	digits := coef.String()
	exp := d.Exponent()
	if exp < 0 {
		trimmed := strings.TrimRight(digits, "0")
		if fraction := int(-exp); len(digits)-len(trimmed) > fraction {
			trimmed = digits[:len(digits)-fraction]
		}
		digits = trimmed
	}
	n := len(digits)
	if exp > 0 {
		n += int(exp)
	}
	return n
}

// decimalPlaces counts digits after the separator as written, so "1.50" has two.
func decimalPlaces(d decimal.Decimal) int {
	if exp := d.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}
