package commands

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// RefreshPendingCashCommandHandler recomputes a driver's pending cash from
// delivered orders and approved collections, then overwrites the cached
// balance on the driver aggregate. The recomputation is the source of truth;
// the stored field only serves reads.
type RefreshPendingCashCommandHandler struct {
	uowFactory UoWFactory
}

// NewRefreshPendingCashCommandHandler creates a handler for balance refreshes.
// Requires a UoWFactory for coordinating all three aggregate types.
func NewRefreshPendingCashCommandHandler(uowFactory UoWFactory) RefreshPendingCashCommandHandler {
	return RefreshPendingCashCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refresh command.
// A ledger where approved collections exceed delivered cash surfaces as an
// integrity fault and leaves the stored balance untouched.
func (h RefreshPendingCashCommandHandler) Handle(ctx context.Context, cmd RefreshPendingCashCommand) error {
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

	driverRepo := uow.DriverRepository()
	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	driverID := cmd.DriverID()
	orders, err := uow.OrderRepository().List(ctx, ports.OrderFilter{DriverID: &driverID})
	if err != nil {
		return err
	}

	collections, err := uow.CollectionRepository().GetAllForDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	pending, err := services.NewCashLedger().PendingCashFor(cmd.DriverID(), orders, collections)
	if err != nil {
		return err
	}

	if err = aggregate.RefreshPendingCash(pending); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
