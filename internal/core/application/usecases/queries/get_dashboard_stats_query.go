package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the headline numbers for the operations
// dashboard. This is a parameterless query.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the dashboard headline stats.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// DashboardStatsResponse represents the dashboard headline numbers.
type DashboardStatsResponse struct {
	TotalOrders        int
	OrdersByStatus     map[string]int
	ActiveDrivers      int
	DeliveredToday     int
	PendingCollections int
	TotalPendingCash   kernel.Money
}
