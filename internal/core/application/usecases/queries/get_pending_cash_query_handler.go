package queries

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GetPendingCashQueryHandler recomputes a driver's pending cash from
// delivered orders and approved collections. Serving the derivation instead
// of the cached field keeps the driver app honest even between refreshes.
type GetPendingCashQueryHandler struct {
	driverRepo     ports.DriverRepository
	orderRepo      ports.OrderRepository
	collectionRepo ports.CollectionRepository
}

// NewGetPendingCashQueryHandler creates a handler for pending cash queries.
func NewGetPendingCashQueryHandler(
	driverRepo ports.DriverRepository,
	orderRepo ports.OrderRepository,
	collectionRepo ports.CollectionRepository,
) GetPendingCashQueryHandler {
	return GetPendingCashQueryHandler{
		driverRepo:     driverRepo,
		orderRepo:      orderRepo,
		collectionRepo: collectionRepo,
	}
}

// Handle executes the query. Fails with an ObjectNotFound error for an
// unknown driver.
func (h GetPendingCashQueryHandler) Handle(
	ctx context.Context,
	query GetPendingCashQuery,
) (PendingCashResponse, error) {
	if err := query.Validate(); err != nil {
		return PendingCashResponse{}, err
	}

	if _, err := h.driverRepo.Get(ctx, query.DriverID()); err != nil {
		return PendingCashResponse{}, err
	}

	driverID := query.DriverID()
	orders, err := h.orderRepo.List(ctx, ports.OrderFilter{DriverID: &driverID})
	if err != nil {
		return PendingCashResponse{}, err
	}

	collections, err := h.collectionRepo.GetAllForDriver(ctx, driverID)
	if err != nil {
		return PendingCashResponse{}, err
	}

	pending, err := services.NewCashLedger().PendingCashFor(driverID, orders, collections)
	if err != nil {
		return PendingCashResponse{}, err
	}

	return PendingCashResponse{
		DriverID:    driverID,
		PendingCash: pending,
	}, nil
}
