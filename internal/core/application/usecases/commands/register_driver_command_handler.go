package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler handles the business logic for driver registration.
// New drivers start active with zero counters and no pending cash.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration operations.
// Requires a DriverUoWFactory for transactional persistence.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
// Uses a transaction to ensure the driver is properly persisted or rolled back on error.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
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

	newDriver, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Vehicle())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
