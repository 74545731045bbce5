package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeolocation(t *testing.T) {
	t.Run("creates_valid_coordinates", func(t *testing.T) {
		loc, err := kernel.NewGeolocation(12.9716, 77.5946)

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.InDelta(t, 12.9716, loc.Latitude(), 1e-9)
		assert.InDelta(t, 77.5946, loc.Longitude(), 1e-9)
	})

	t.Run("accepts_boundary_values", func(t *testing.T) {
		_, err := kernel.NewGeolocation(kernel.LatitudeMin, kernel.LongitudeMin)
		require.NoError(t, err)

		_, err = kernel.NewGeolocation(kernel.LatitudeMax, kernel.LongitudeMax)
		require.NoError(t, err)
	})

	t.Run("rejects_latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeolocation(91, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeolocation(0, -181)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeolocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeolocation(10, 20)
	b, _ := kernel.NewGeolocation(10, 20)
	c, _ := kernel.NewGeolocation(10, 21)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestGeolocation_String(t *testing.T) {
	loc, _ := kernel.NewGeolocation(12.9716, 77.5946)
	assert.Equal(t, "Geolocation(12.9716,77.5946)", loc.String())
}

func TestGeolocation_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var loc kernel.Geolocation

		err := loc.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeolocationIsNotConstructed, err)
	})
}
