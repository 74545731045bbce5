package queries

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/ports"
)

// ListDriversQueryHandler answers driver list queries straight off the
// repository, preserving registration order.
type ListDriversQueryHandler struct {
	driverRepo ports.DriverRepository
}

// NewListDriversQueryHandler creates a handler for driver list queries.
func NewListDriversQueryHandler(driverRepo ports.DriverRepository) ListDriversQueryHandler {
	return ListDriversQueryHandler{driverRepo: driverRepo}
}

// Handle executes the query and maps the matching aggregates to read models.
func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers, err := h.driverRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]DriverResponse, 0, len(drivers))
	for _, aggregate := range drivers {
		if query.Status() != nil && aggregate.Status() != *query.Status() {
			continue
		}
		responses = append(responses, toDriverResponse(aggregate))
	}

	return responses, nil
}

func toDriverResponse(aggregate *driver.Driver) DriverResponse {
	response := DriverResponse{
		ID:              aggregate.ID(),
		Name:            aggregate.Name(),
		Vehicle:         aggregate.Vehicle(),
		Status:          aggregate.Status(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		CompletedToday:  aggregate.CompletedToday(),
		PendingCash:     aggregate.PendingCash(),
	}

	if aggregate.Location() != nil {
		location := *aggregate.Location()
		response.Location = &location
	}

	return response
}
