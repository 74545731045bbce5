package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetLiveLocationsQueryHandler serves the dashboard map from the live
// location cache. Drivers that stopped reporting age out of the cache and
// disappear from the map without any bookkeeping here.
type GetLiveLocationsQueryHandler struct {
	locationCache ports.LocationCache
}

// NewGetLiveLocationsQueryHandler creates a handler for live position queries.
func NewGetLiveLocationsQueryHandler(locationCache ports.LocationCache) GetLiveLocationsQueryHandler {
	return GetLiveLocationsQueryHandler{locationCache: locationCache}
}

// Handle executes the query.
func (h GetLiveLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetLiveLocationsQuery,
) ([]LiveLocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations, err := h.locationCache.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]LiveLocationResponse, 0, len(locations))
	for _, location := range locations {
		responses = append(responses, LiveLocationResponse{
			DriverID:   location.DriverID,
			Location:   location.Location,
			ReportedAt: location.ReportedAt,
		})
	}

	return responses, nil
}
