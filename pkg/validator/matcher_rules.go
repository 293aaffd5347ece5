package validator

import "github.com/dmitrymomot/matchkit/pkg/matcher"

// Match runs m against value and reports each issue as a field error.
// It returns nil when the value is valid.
func Match(field string, value *string, m matcher.Matcher) error {
	var errs ValidationErrors
	errs.AddResult(field, m.Match(value))
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// DecimalNumber validates value with a decimal number matcher built from params.
// Invalid params yield the matcher construction error rather than ValidationErrors.
func DecimalNumber(field string, value *string, params ...int) error {
	m, err := matcher.NewDecimalNumber(params...)
	if err != nil {
		return err
	}
	return Match(field, value, m)
}

// ValidDecimal adapts m to a Rule for a present value so it can be combined
// with other rules in Apply. Only the first issue is reported; use Match to
// collect all of them.
func ValidDecimal(field, value string, m *matcher.DecimalNumber) Rule {
	res := m.MatchString(value)
	err := ValidationError{Field: field, TranslationValues: map[string]any{"field": field}}
	if issues := res.Issues(); len(issues) > 0 {
		err.Code = issues[0].Code
		err.Message = issues[0].Message
		err.TranslationKey = issues[0].Code
	}
	return Rule{
		Check: res.Valid,
		Error: err,
	}
}
