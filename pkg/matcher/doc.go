// Package matcher provides reusable validation rules ("matchers") that check a
// single optional string value and report every violation they find as data
// instead of returning an error.
//
// A matcher is configured once and then applied to any number of candidate
// values. Each call to Match returns a fresh Result holding zero or more
// issues, each identified by a stable machine-readable code and a default
// English message. Callers decide how to surface issues: the validator package
// converts them into field errors and the i18n package renders localised
// messages keyed by the same codes.
//
// # Decimal numbers
//
// DecimalNumber accepts nil (absence is not a format violation) or a string
// that parses as an exact decimal with "." as the only decimal separator. The
// value is parsed with github.com/shopspring/decimal, so no precision is lost
// to binary floating point.
//
// The limits are chosen with zero, one or two parameters:
//
//	matcher.MustDecimalNumber()      // at most 11 significant digits
//	matcher.MustDecimalNumber(5)     // at most 5 significant digits
//	matcher.MustDecimalNumber(5, 2)  // at most 5 digits, at most 2 decimal places
//
// Parameters are resolved once into a Limits value (NoLimit, MaxDigits or
// MaxDigitsAndPlaces). Any other parameter count, or a negative parameter, is
// rejected by NewDecimalNumber with an error wrapping ErrInvalidConfiguration.
//
// # Usage
//
//	m, err := matcher.NewDecimalNumber(5, 2)
//	if err != nil {
//	    return err
//	}
//
//	res := m.MatchString("1234.567")
//	for _, issue := range res.Issues() {
//	    fmt.Println(issue.Code, issue.Message)
//	}
//	// doubleNumber.e002 The value exceeded maximum number of digits.
//	// doubleNumber.e003 The value exceeded maximum number of decimal places.
//
// # Concurrency
//
// Matchers are immutable after construction and Match allocates a new Result
// per call, so a single instance can be shared between goroutines.
package matcher
