package queries

import (
	"context"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// GetDashboardStatsQueryHandler aggregates the headline numbers across all
// three repositories. Pending cash totals come from the cached driver
// balances; the dashboard tolerates the refresh lag.
type GetDashboardStatsQueryHandler struct {
	driverRepo     ports.DriverRepository
	orderRepo      ports.OrderRepository
	collectionRepo ports.CollectionRepository
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats queries.
func NewGetDashboardStatsQueryHandler(
	driverRepo ports.DriverRepository,
	orderRepo ports.OrderRepository,
	collectionRepo ports.CollectionRepository,
) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{
		driverRepo:     driverRepo,
		orderRepo:      orderRepo,
		collectionRepo: collectionRepo,
	}
}

// Handle executes the query.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (DashboardStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsResponse{}, err
	}

	orders, err := h.orderRepo.List(ctx, ports.OrderFilter{})
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	drivers, err := h.driverRepo.GetAll(ctx)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	collections, err := h.collectionRepo.GetAll(ctx)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	stats := DashboardStatsResponse{
		TotalOrders:    len(orders),
		OrdersByStatus: make(map[string]int),
	}

	for _, aggregate := range orders {
		stats.OrdersByStatus[aggregate.Status().String()]++
	}

	totalPending := kernel.ZeroMoney()
	for _, aggregate := range drivers {
		if aggregate.Status() == driver.Active {
			stats.ActiveDrivers++
		}
		stats.DeliveredToday += aggregate.CompletedToday()

		totalPending, err = totalPending.Add(aggregate.PendingCash())
		if err != nil {
			return DashboardStatsResponse{}, err
		}
	}
	stats.TotalPendingCash = totalPending

	for _, aggregate := range collections {
		if aggregate.Status() == cash.StatusPending {
			stats.PendingCollections++
		}
	}

	return stats, nil
}
