package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler handles forward lifecycle transitions
// (assigned → picked-up → in-transit → delivered).
//
// Reaching delivered is the moment cash changes hands: the assigned driver's
// delivery counters are bumped and, for cash-on-delivery orders, the amount
// lands on the driver's pending cash. Both updates share the transaction
// with the order transition.
type AdvanceOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement operations.
// Requires a LifecycleUoWFactory for coordinating the order and driver aggregates.
func NewAdvanceOrderCommandHandler(uowFactory LifecycleUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advancement command.
// Fails with a StaleState error when the stored status differs from the one
// the caller observed, leaving the order unchanged.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Advance(cmd.Expected()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Status() == order.Delivered {
		driverRepo := uow.DriverRepository()
		assignee, err := driverRepo.Get(ctx, *aggregate.Driver())
		if err != nil {
			return err
		}

		if err = assignee.RecordDelivery(aggregate.Amount(), aggregate.IsCashOnDelivery()); err != nil {
			return err
		}

		if err = driverRepo.Update(ctx, assignee); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
