package commands

import (
	"context"
)

// ResetDailyCountersCommandHandler zeroes every driver's completed-today
// counter. Lifetime totals and pending cash are untouched. All drivers are
// reset in one transaction so a partial day rollover is never observable.
type ResetDailyCountersCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewResetDailyCountersCommandHandler creates a handler for day rollover operations.
// Requires a DriverUoWFactory for transactional persistence.
func NewResetDailyCountersCommandHandler(uowFactory DriverUoWFactory) ResetDailyCountersCommandHandler {
	return ResetDailyCountersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the day rollover command.
func (h ResetDailyCountersCommandHandler) Handle(ctx context.Context, cmd ResetDailyCountersCommand) error {
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
	drivers, err := driverRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range drivers {
		aggregate.ResetDailyCount()
		if err = driverRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
