package queries

import (
	"context"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/ports"
)

// ListCollectionsQueryHandler answers collection list queries straight off
// the repository, preserving submission order.
type ListCollectionsQueryHandler struct {
	collectionRepo ports.CollectionRepository
}

// NewListCollectionsQueryHandler creates a handler for collection list queries.
func NewListCollectionsQueryHandler(collectionRepo ports.CollectionRepository) ListCollectionsQueryHandler {
	return ListCollectionsQueryHandler{collectionRepo: collectionRepo}
}

// Handle executes the query and maps the matching aggregates to read models.
func (h ListCollectionsQueryHandler) Handle(
	ctx context.Context,
	query ListCollectionsQuery,
) ([]CollectionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		collections []*cash.Collection
		err         error
	)
	if query.DriverID() != nil {
		collections, err = h.collectionRepo.GetAllForDriver(ctx, *query.DriverID())
	} else {
		collections, err = h.collectionRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]CollectionResponse, 0, len(collections))
	for _, aggregate := range collections {
		if query.Status() != nil && aggregate.Status() != *query.Status() {
			continue
		}
		responses = append(responses, toCollectionResponse(aggregate))
	}

	return responses, nil
}

func toCollectionResponse(aggregate *cash.Collection) CollectionResponse {
	response := CollectionResponse{
		ID:          aggregate.ID(),
		DriverID:    aggregate.Driver(),
		OrderIDs:    aggregate.Orders(),
		Amount:      aggregate.Amount(),
		Status:      aggregate.Status(),
		Notes:       aggregate.Notes(),
		SubmittedAt: aggregate.SubmittedAt(),
	}

	if aggregate.ApprovedBy() != nil {
		approvedBy := *aggregate.ApprovedBy()
		approvedAt := *aggregate.ApprovedAt()
		response.ApprovedBy = &approvedBy
		response.ApprovedAt = &approvedAt
	}

	return response
}
