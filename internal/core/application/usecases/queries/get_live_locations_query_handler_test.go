package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLiveLocationsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	location, err := kernel.NewGeolocation(12.9716, 77.5946)
	require.NoError(t, err)
	reportedAt := time.Now().UTC()

	cache := new(MockLocationCache)
	cache.On("GetAll", ctx).Return([]ports.DriverLocation{{
		DriverID:   driverID,
		Location:   location,
		ReportedAt: reportedAt,
	}}, nil).Once()

	handler := queries.NewGetLiveLocationsQueryHandler(cache)
	responses, err := handler.Handle(ctx, queries.NewGetLiveLocationsQuery())

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].DriverID.IsEqual(driverID))
	assert.True(t, responses[0].Location.IsEqual(location))
	assert.Equal(t, reportedAt, responses[0].ReportedAt)
	cache.AssertExpectations(t)
}
