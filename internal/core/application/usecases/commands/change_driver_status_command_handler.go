package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/ports"
)

// ChangeDriverStatusCommandHandler handles driver status transitions.
// A driver leaving active loses their reported location, both on the
// aggregate and in the live location cache.
type ChangeDriverStatusCommandHandler struct {
	uowFactory    DriverUoWFactory
	locationCache ports.LocationCache
	logger        *slog.Logger
}

// NewChangeDriverStatusCommandHandler creates a handler for driver status changes.
// Requires a DriverUoWFactory for transactional persistence and a LocationCache
// to drop stale live positions.
func NewChangeDriverStatusCommandHandler(
	uowFactory DriverUoWFactory,
	locationCache ports.LocationCache,
	logger *slog.Logger,
) ChangeDriverStatusCommandHandler {
	return ChangeDriverStatusCommandHandler{
		uowFactory:    uowFactory,
		locationCache: locationCache,
		logger:        logger,
	}
}

// Handle processes the status change command.
// The cache eviction runs after commit and is best-effort: a failing cache
// entry expires on its own and must not fail a committed status change.
func (h ChangeDriverStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDriverStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Status() != driver.Active {
		if err = h.locationCache.Remove(ctx, cmd.DriverID()); err != nil {
			h.logger.WarnContext(ctx, "failed to evict driver location",
				"driver_id", cmd.DriverID().String(), "error", err)
		}
	}

	return nil
}
