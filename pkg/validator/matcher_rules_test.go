package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/matchkit/pkg/matcher"
	"github.com/dmitrymomot/matchkit/pkg/validator"
)

func TestMatch(t *testing.T) {
	t.Parallel()
	m := matcher.MustDecimalNumber(5, 2)

	t.Run("nil value is valid", func(t *testing.T) {
		assert.NoError(t, validator.Match("price", nil, m))
	})

	t.Run("valid value", func(t *testing.T) {
		v := "123.45"
		assert.NoError(t, validator.Match("price", &v, m))
	})

	t.Run("invalid value", func(t *testing.T) {
		v := "abc"
		err := validator.Match("price", &v, m)
		require.Error(t, err)
		assert.Equal(t, []string{"doubleNumber.e001"}, validator.ExtractValidationErrors(err).Codes("price"))
	})
}

func TestDecimalNumber(t *testing.T) {
	t.Parallel()

	t.Run("default limits", func(t *testing.T) {
		v := "123456789012"
		err := validator.DecimalNumber("amount", &v)
		require.Error(t, err)
		assert.Equal(t, []string{"doubleNumber.e002"}, validator.ExtractValidationErrors(err).Codes("amount"))
	})

	t.Run("configuration error is not a validation error", func(t *testing.T) {
		v := "1"
		err := validator.DecimalNumber("amount", &v, 1, 2, 3)
		require.Error(t, err)
		assert.False(t, validator.IsValidationError(err))
		assert.True(t, errors.Is(err, matcher.ErrInvalidParams))
	})
}

func TestValidDecimal(t *testing.T) {
	t.Parallel()
	m := matcher.MustDecimalNumber(5, 2)

	err := validator.Apply(
		validator.ValidDecimal("price", "12.5", m),
		validator.ValidDecimal("tax", "1.234", m),
	)
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	assert.False(t, verrs.Has("price"))
	assert.Equal(t, []string{"doubleNumber.e003"}, verrs.Codes("tax"))
	assert.Equal(t, "doubleNumber.e003", verrs[0].TranslationKey)
}
