// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders, optionally narrowed by status and/or
// assigned driver. Absent filters place no constraint; set filters combine
// with AND.
//
// Example:
//
//	status := order.InTransit
//	query, _ := NewListOrdersQuery(&status, nil)
//	handler := NewListOrdersQueryHandler(orderRepo)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status   *order.Status
	driverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. Both filters are
// optional; nil means no constraint.
func NewListOrdersQuery(status *order.Status, driverID *kernel.UUID) (ListOrdersQuery, error) {
	ordersQuery := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ordersQuery.setStatus(status),
		ordersQuery.setDriverID(driverID),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return ordersQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil for no constraint.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// DriverID returns the assigned-driver filter, or nil for no constraint.
func (q ListOrdersQuery) DriverID() *kernel.UUID {
	return q.driverID
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
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

func (q *ListOrdersQuery) setDriverID(driverID *kernel.UUID) error {
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

// OrderResponse represents an order in the read model.
type OrderResponse struct {
	ID             kernel.UUID
	OrderNumber    string
	TrackingNumber string
	CustomerName   string
	CustomerPhone  string
	Address        string
	Amount         kernel.Money
	Payment        order.PaymentMethod
	Status         order.Status
	DriverID       *kernel.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
