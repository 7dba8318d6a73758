package customer

import (
	"testing"
	"time"

	dErrors "aotearoa/pkg/domain-errors"
	"aotearoa/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerInvariants(t *testing.T) {
	birth := testutil.Date(1990, time.June, 15)

	t.Run("accepts a complete record and trims whitespace", func(t *testing.T) {
		c, err := New("  Aroha ", "Ngata", birth, "aroha.ngata@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Aroha", c.FirstName)
		assert.Equal(t, "Ngata", c.LastName)
		assert.Equal(t, ID(0), c.ID, "ID is assigned by the store, not the constructor")
	})

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := New("", "Ngata", birth, "a@b.c")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

		_, err = New("Aroha", "   ", birth, "a@b.c")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		_, err := New("Aroha", "Ngata", birth, "aroha-at-example.com")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("rejects a zero birth date", func(t *testing.T) {
		_, err := New("Aroha", "Ngata", time.Time{}, "a@b.c")
		require.Error(t, err)
	})
}

func TestAge(t *testing.T) {
	born := testutil.Date(2000, time.March, 10)
	c := Customer{BirthDate: born}

	t.Run("day before the birthday", func(t *testing.T) {
		assert.Equal(t, 23, c.Age(testutil.Date(2024, time.March, 9)))
	})

	t.Run("on the birthday", func(t *testing.T) {
		assert.Equal(t, 24, c.Age(testutil.Date(2024, time.March, 10)))
	})

	t.Run("later month in the year", func(t *testing.T) {
		assert.Equal(t, 24, c.Age(testutil.Date(2024, time.November, 1)))
	})

	t.Run("earlier month in the year", func(t *testing.T) {
		assert.Equal(t, 23, c.Age(testutil.Date(2024, time.February, 28)))
	})
}
