package queries

import (
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery retrieves drivers, optionally narrowed by status.
type ListDriversQuery struct { //nolint:recvcheck //using for validation
	status *driver.Status

	guard guard.ConstructorGuard
}

// NewListDriversQuery creates a query to list drivers. The status filter is
// optional; nil means no constraint.
func NewListDriversQuery(status *driver.Status) (ListDriversQuery, error) {
	driversQuery := ListDriversQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := driversQuery.setStatus(status); err != nil {
		return ListDriversQuery{}, err
	}

	return driversQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

// Status returns the status filter, or nil for no constraint.
func (q ListDriversQuery) Status() *driver.Status {
	return q.status
}

func (q *ListDriversQuery) setStatus(status *driver.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	copied := *status
	q.status = &copied
	return nil
}

// DriverResponse represents a driver in the read model.
type DriverResponse struct {
	ID              kernel.UUID
	Name            string
	Vehicle         string
	Status          driver.Status
	Location        *kernel.Geolocation
	TotalDeliveries int
	CompletedToday  int
	PendingCash     kernel.Money
}
