package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates_valid_amount", func(t *testing.T) {
		m, err := kernel.NewMoney(50000)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(50000), m.Cents())
		assert.True(t, m.IsPositive())
	})

	t.Run("zero_is_allowed", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("negative_is_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestZeroMoney(t *testing.T) {
	m := kernel.ZeroMoney()

	require.NoError(t, m.Validate())
	assert.True(t, m.IsZero())
	assert.False(t, m.IsPositive())
}

func TestMoney_Add(t *testing.T) {
	t.Run("sums_amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(30000)
		b, _ := kernel.NewMoney(20000)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(50000), sum.Cents())
	})

	t.Run("rejects_unconstructed_operand", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		var b kernel.Money

		_, err := a.Add(b)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Subtract(t *testing.T) {
	t.Run("subtracts_amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(50000)
		b, _ := kernel.NewMoney(20000)

		rest, err := a.Subtract(b)

		require.NoError(t, err)
		assert.Equal(t, int64(30000), rest.Cents())
	})

	t.Run("underflow_fails_instead_of_clamping", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(500)

		_, err := a.Subtract(b)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("subtracting_everything_leaves_zero", func(t *testing.T) {
		a, _ := kernel.NewMoney(500)

		rest, err := a.Subtract(a)

		require.NoError(t, err)
		assert.True(t, rest.IsZero())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	small, _ := kernel.NewMoney(100)
	big, _ := kernel.NewMoney(200)

	assert.True(t, small.LessThan(big))
	assert.False(t, big.LessThan(small))
	assert.True(t, small.IsEqual(small))
	assert.False(t, small.IsEqual(big))
}

func TestMoney_String(t *testing.T) {
	m, _ := kernel.NewMoney(50075)
	assert.Equal(t, "500.75", m.String())

	m, _ = kernel.NewMoney(5)
	assert.Equal(t, "0.05", m.String())
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}
