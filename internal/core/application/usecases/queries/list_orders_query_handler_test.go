package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("passes_filters_through_and_maps_responses", func(t *testing.T) {
		driverID := kernel.NewUUID()
		status := order.Delivered
		delivered := buildDeliveredOrder(t, driverID, 50000)

		query, err := queries.NewListOrdersQuery(&status, &driverID)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		orderRepo.On("List", ctx, ports.OrderFilter{Status: query.Status(), DriverID: query.DriverID()}).
			Return([]*order.Order{delivered}, nil).Once()

		handler := queries.NewListOrdersQueryHandler(orderRepo)
		responses, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.True(t, responses[0].ID.IsEqual(delivered.ID()))
		assert.Equal(t, order.Delivered, responses[0].Status)
		assert.Equal(t, delivered.OrderNumber(), responses[0].OrderNumber)
		assert.Equal(t, int64(50000), responses[0].Amount.Cents())
		require.NotNil(t, responses[0].DriverID)
		assert.True(t, responses[0].DriverID.IsEqual(driverID))
		orderRepo.AssertExpectations(t)
	})

	t.Run("pending_order_maps_without_driver", func(t *testing.T) {
		pending := buildOrder(t, 50000)

		query, err := queries.NewListOrdersQuery(nil, nil)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		orderRepo.On("List", ctx, ports.OrderFilter{}).
			Return([]*order.Order{pending}, nil).Once()

		handler := queries.NewListOrdersQueryHandler(orderRepo)
		responses, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Nil(t, responses[0].DriverID)
	})

	t.Run("unconstructed_query_is_rejected", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		handler := queries.NewListOrdersQueryHandler(orderRepo)

		_, err := handler.Handle(ctx, queries.ListOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
		orderRepo.AssertNotCalled(t, "List", ctx)
	})
}
