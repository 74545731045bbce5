package commands

import (
	"context"
)

// MarkOrderReturnedCommandHandler handles failed deliveries.
// Legal only from in-transit; the driver keeps no cash for returned orders.
type MarkOrderReturnedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderReturnedCommandHandler creates a handler for return operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkOrderReturnedCommandHandler(uowFactory OrderUoWFactory) MarkOrderReturnedCommandHandler {
	return MarkOrderReturnedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return command.
func (h MarkOrderReturnedCommandHandler) Handle(ctx context.Context, cmd MarkOrderReturnedCommand) error {
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

	if err = aggregate.MarkReturned(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
