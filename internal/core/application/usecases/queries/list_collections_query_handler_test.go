package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCollectionsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("driver_filter_uses_the_driver_index", func(t *testing.T) {
		driverID := kernel.NewUUID()
		submitted := buildCollection(t, driverID, []kernel.UUID{kernel.NewUUID()}, 50000)

		query, err := queries.NewListCollectionsQuery(nil, &driverID)
		require.NoError(t, err)

		collectionRepo := new(MockCollectionRepository)
		collectionRepo.On("GetAllForDriver", ctx, driverID).
			Return([]*cash.Collection{submitted}, nil).Once()

		handler := queries.NewListCollectionsQueryHandler(collectionRepo)
		responses, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.True(t, responses[0].DriverID.IsEqual(driverID))
		assert.Equal(t, cash.StatusPending, responses[0].Status)
		assert.Nil(t, responses[0].ApprovedBy)
		collectionRepo.AssertExpectations(t)
	})

	t.Run("status_filter_narrows_the_full_list", func(t *testing.T) {
		driverID := kernel.NewUUID()
		pending := buildCollection(t, driverID, []kernel.UUID{kernel.NewUUID()}, 50000)
		approved := buildCollection(t, driverID, []kernel.UUID{kernel.NewUUID()}, 30000)
		require.NoError(t, approved.Approve("Manager"))

		status := cash.StatusApproved
		query, err := queries.NewListCollectionsQuery(&status, nil)
		require.NoError(t, err)

		collectionRepo := new(MockCollectionRepository)
		collectionRepo.On("GetAll", ctx).
			Return([]*cash.Collection{pending, approved}, nil).Once()

		handler := queries.NewListCollectionsQueryHandler(collectionRepo)
		responses, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, cash.StatusApproved, responses[0].Status)
		require.NotNil(t, responses[0].ApprovedBy)
		assert.Equal(t, "Manager", *responses[0].ApprovedBy)
		require.NotNil(t, responses[0].ApprovedAt)
	})
}
