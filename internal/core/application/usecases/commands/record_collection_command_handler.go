package commands

import (
	"context"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

// RecordCollectionCommandHandler handles cash collection submissions.
// Every referenced order must be a delivered cash-on-delivery order of the
// submitting driver, not already claimed by a pending or approved collection.
// The collection amount is the sum of the referenced orders' amounts.
//
// Example:
//
//	handler := NewRecordCollectionCommandHandler(uowFactory)
//	cmd, _ := NewRecordCollectionCommand(collectionID, driverID, orderIDs, "evening shift")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, cash.ErrOrderNotEligible):
//	    log.Println("An order is not collectable by this driver")
//	case errors.Is(err, cash.ErrDoubleCollection):
//	    log.Println("An order is already claimed")
//	case err != nil:
//	    log.Printf("Submission failed: %v", err)
//	}
type RecordCollectionCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecordCollectionCommandHandler creates a handler for collection submissions.
// Requires a UoWFactory for coordinating all three aggregate types.
func NewRecordCollectionCommandHandler(uowFactory UoWFactory) RecordCollectionCommandHandler {
	return RecordCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the collection submission.
// Resolves the driver and every referenced order, checks eligibility through
// the cash ledger, and persists the pending collection in one transaction.
func (h RecordCollectionCommandHandler) Handle(ctx context.Context, cmd RecordCollectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orders := make([]*order.Order, 0, len(cmd.OrderIDs()))
	for _, orderID := range cmd.OrderIDs() {
		aggregate, err := orderRepo.Get(ctx, orderID)
		if err != nil {
			return err
		}
		orders = append(orders, aggregate)
	}

	collectionRepo := uow.CollectionRepository()
	existing, err := collectionRepo.GetAllForDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	ledger := services.NewCashLedger()
	if err = ledger.ValidateSubmission(cmd.DriverID(), orders, existing); err != nil {
		return err
	}

	amount := kernel.ZeroMoney()
	for _, aggregate := range orders {
		amount, err = amount.Add(aggregate.Amount())
		if err != nil {
			return err
		}
	}

	collection, err := cash.NewCollection(cmd.CollectionID(), cmd.DriverID(),
		cmd.OrderIDs(), amount, cmd.Notes())
	if err != nil {
		return err
	}

	if err = collectionRepo.Add(ctx, collection); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
