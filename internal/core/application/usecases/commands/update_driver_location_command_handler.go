package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/ports"
)

// UpdateDriverLocationCommandHandler handles driver position reports.
// Only active drivers may report; the position is persisted on the aggregate
// and mirrored into the live location cache for the dashboard map.
type UpdateDriverLocationCommandHandler struct {
	uowFactory    DriverUoWFactory
	locationCache ports.LocationCache
	logger        *slog.Logger
}

// NewUpdateDriverLocationCommandHandler creates a handler for position reports.
func NewUpdateDriverLocationCommandHandler(
	uowFactory DriverUoWFactory,
	locationCache ports.LocationCache,
	logger *slog.Logger,
) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory:    uowFactory,
		locationCache: locationCache,
		logger:        logger,
	}
}

// Handle processes the position report.
// The cache write runs after commit and is best-effort: the store copy is
// authoritative and the cache catches up on the next report.
func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
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

	if err = aggregate.UpdateLocation(cmd.Location()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.locationCache.Set(ctx, ports.DriverLocation{
		DriverID:   cmd.DriverID(),
		Location:   cmd.Location(),
		ReportedAt: time.Now().UTC(),
	}); err != nil {
		h.logger.WarnContext(ctx, "failed to cache driver location",
			"driver_id", cmd.DriverID().String(), "error", err)
	}

	return nil
}
