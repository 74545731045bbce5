package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrListCollectionsQueryIsNotConstructed = errors.New(
	"ListCollectionsQuery must be created via NewListCollectionsQuery constructor",
)

// ListCollectionsQuery retrieves cash collections, optionally narrowed by
// status and/or submitting driver. Absent filters place no constraint; set
// filters combine with AND.
type ListCollectionsQuery struct { //nolint:recvcheck //using for validation
	status   *cash.Status
	driverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCollectionsQuery creates a query to list collections. Both filters
// are optional; nil means no constraint.
func NewListCollectionsQuery(status *cash.Status, driverID *kernel.UUID) (ListCollectionsQuery, error) {
	collectionsQuery := ListCollectionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		collectionsQuery.setStatus(status),
		collectionsQuery.setDriverID(driverID),
	); err != nil {
		return ListCollectionsQuery{}, err
	}

	return collectionsQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCollectionsQuery) Validate() error {
	return q.guard.Validate(ErrListCollectionsQueryIsNotConstructed)
}

// Status returns the status filter, or nil for no constraint.
func (q ListCollectionsQuery) Status() *cash.Status {
	return q.status
}

// DriverID returns the submitting-driver filter, or nil for no constraint.
func (q ListCollectionsQuery) DriverID() *kernel.UUID {
	return q.driverID
}

func (q *ListCollectionsQuery) setStatus(status *cash.Status) error {
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

func (q *ListCollectionsQuery) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	copied := *driverID
	q.driverID = &copied
	return nil
}

// CollectionResponse represents a cash collection in the read model.
type CollectionResponse struct {
	ID          kernel.UUID
	DriverID    kernel.UUID
	OrderIDs    []kernel.UUID
	Amount      kernel.Money
	Status      cash.Status
	Notes       string
	SubmittedAt time.Time
	ApprovedBy  *string
	ApprovedAt  *time.Time
}
