// Package validator aggregates field-level validation failures into a single
// error value and bridges matcher results into that representation.
//
// Rules are small values pairing a boolean Check with error metadata and are
// evaluated with Apply. Matchers from the matcher package report issues as
// data; Match converts every issue into a ValidationError whose Code and
// TranslationKey carry the issue code, so the same key can be rendered by the
// i18n package.
//
// # Usage
//
//	price := "1234.567"
//	err := validator.Merge(
//	    validator.DecimalNumber("price", &price, 6, 2),
//	    validator.Match("discount", nil, discountMatcher),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, code := range verrs.Codes("price") {
//	        // doubleNumber.e002, doubleNumber.e003
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is. Matcher configuration errors from DecimalNumber are returned as
// is and are not validation errors.
package validator
