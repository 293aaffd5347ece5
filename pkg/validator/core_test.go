package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/matchkit/pkg/matcher"
	"github.com/dmitrymomot/matchkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "amount",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: amount: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "amount", Message: "too many digits"})
		errs.Add(validator.ValidationError{Field: "rate", Message: "not a number"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "amount: too many digits")
		assert.Contains(t, errorMsg, "rate: not a number")
	})

	t.Run("matches sentinel", func(t *testing.T) {
		err := error(validator.ValidationErrors{{Field: "amount"}})
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	})
}

func TestValidationErrors_AddResult(t *testing.T) {
	t.Run("converts every issue", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.AddResult("price", matcher.MustDecimalNumber(5, 2).MatchString("123456.789"))

		require.Len(t, errs, 2)
		assert.Equal(t, []string{"doubleNumber.e002", "doubleNumber.e003"}, errs.Codes("price"))
		assert.Equal(t, "doubleNumber.e002", errs[0].TranslationKey)
		assert.Equal(t, map[string]any{"field": "price"}, errs[0].TranslationValues)
		assert.Equal(t, []string{
			"The value exceeded maximum number of digits.",
			"The value exceeded maximum number of decimal places.",
		}, errs.Get("price"))
	})

	t.Run("valid result adds nothing", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.AddResult("price", matcher.MustDecimalNumber().MatchString("1.5"))
		assert.True(t, errs.IsEmpty())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "amount", Code: "a", Message: "first"})
	errs.Add(validator.ValidationError{Field: "amount", Code: "b", Message: "second"})
	errs.Add(validator.ValidationError{Field: "rate", Message: "third"})

	assert.True(t, errs.Has("amount"))
	assert.False(t, errs.Has("missing"))
	assert.Equal(t, []string{"first", "second"}, errs.Get("amount"))
	assert.Len(t, errs.GetErrors("amount"), 2)
	assert.Empty(t, errs.GetErrors("missing"))
	assert.Equal(t, []string{"a", "b"}, errs.Codes("amount"))
	assert.Nil(t, errs.Codes("rate"))
	assert.Equal(t, []string{"amount", "rate"}, errs.Fields())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(validator.Rule{Check: func() bool { return true }})
		assert.NoError(t, err)
	})

	t.Run("collects failing rules", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "a", Message: "bad"}},
			validator.Rule{Check: func() bool { return true }},
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "b", Message: "bad"}},
		)
		require.Error(t, err)
		require.True(t, validator.IsValidationError(err))
		assert.Equal(t, []string{"a", "b"}, validator.ExtractValidationErrors(err).Fields())
	})
}

func TestMerge(t *testing.T) {
	t.Run("nil inputs", func(t *testing.T) {
		assert.NoError(t, validator.Merge(nil, nil))
	})

	t.Run("flattens validation errors", func(t *testing.T) {
		a := validator.ValidationErrors{{Field: "a"}}
		b := validator.ValidationErrors{{Field: "b"}, {Field: "c"}}
		err := validator.Merge(a, nil, b)
		assert.Len(t, validator.ExtractValidationErrors(err), 3)
	})

	t.Run("returns foreign error as is", func(t *testing.T) {
		boom := errors.New("boom")
		err := validator.Merge(validator.ValidationErrors{{Field: "a"}}, boom)
		assert.Equal(t, boom, err)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("other")))

	wrapped := errors.Join(errors.New("context"), validator.ValidationErrors{{Field: "x"}})
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Equal(t, []string{"x"}, validator.ExtractValidationErrors(wrapped).Fields())
}
