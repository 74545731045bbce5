package queries

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// ListOrdersQueryHandler answers order list queries straight off the
// repository, preserving insertion order.
type ListOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(orderRepo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query and maps the matching aggregates to read models.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.List(ctx, ports.OrderFilter{
		Status:   query.Status(),
		DriverID: query.DriverID(),
	})
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, aggregate := range orders {
		responses = append(responses, toOrderResponse(aggregate))
	}

	return responses, nil
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	response := OrderResponse{
		ID:             aggregate.ID(),
		OrderNumber:    aggregate.OrderNumber(),
		TrackingNumber: aggregate.TrackingNumber(),
		CustomerName:   aggregate.CustomerName(),
		CustomerPhone:  aggregate.CustomerPhone(),
		Address:        aggregate.Address(),
		Amount:         aggregate.Amount(),
		Payment:        aggregate.Payment(),
		Status:         aggregate.Status(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}

	if aggregate.Driver() != nil {
		driverID := *aggregate.Driver()
		response.DriverID = &driverID
	}

	return response
}
