package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetPendingCashQueryIsNotConstructed = errors.New(
	"GetPendingCashQuery must be created via NewGetPendingCashQuery constructor",
)

// GetPendingCashQuery retrieves a driver's pending cash, recomputed from the
// ledger rather than read from the cached field on the aggregate.
type GetPendingCashQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingCashQuery creates a query for a driver's pending cash.
// Validates that the driver ID is valid.
func NewGetPendingCashQuery(driverID kernel.UUID) (GetPendingCashQuery, error) {
	cashQuery := GetPendingCashQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := cashQuery.setDriverID(driverID); err != nil {
		return GetPendingCashQuery{}, err
	}

	return cashQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingCashQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCashQueryIsNotConstructed)
}

// DriverID returns the unique identifier of the driver.
func (q GetPendingCashQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetPendingCashQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	q.driverID = driverID
	return nil
}

// PendingCashResponse represents a driver's recomputed pending cash.
type PendingCashResponse struct {
	DriverID    kernel.UUID
	PendingCash kernel.Money
}
