package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetLiveLocationsQueryIsNotConstructed = errors.New(
	"GetLiveLocationsQuery must be created via NewGetLiveLocationsQuery constructor",
)

// GetLiveLocationsQuery retrieves the live positions of reporting drivers
// for the dashboard map. This is a parameterless query.
type GetLiveLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLiveLocationsQuery creates a query for live driver positions.
func NewGetLiveLocationsQuery() GetLiveLocationsQuery {
	return GetLiveLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLiveLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLiveLocationsQueryIsNotConstructed)
}

// LiveLocationResponse represents one driver's live position.
type LiveLocationResponse struct {
	DriverID   kernel.UUID
	Location   kernel.Geolocation
	ReportedAt time.Time
}
