package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// DriverLocation is a driver's last reported position as held by the cache.
type DriverLocation struct {
	DriverID   kernel.UUID
	Location   kernel.Geolocation
	ReportedAt time.Time
}

// LocationCache holds the live positions of active drivers. Entries expire
// on their own when a driver stops reporting; Remove drops a driver's entry
// eagerly when they go off shift.
type LocationCache interface {
	// Set stores a driver's position, replacing any previous entry.
	Set(ctx context.Context, location DriverLocation) error

	// Remove drops a driver's entry. Removing an absent entry is not an error.
	Remove(ctx context.Context, driverID kernel.UUID) error

	// GetAll retrieves every live position currently held.
	GetAll(ctx context.Context) ([]DriverLocation, error)
}
