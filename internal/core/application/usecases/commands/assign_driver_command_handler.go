package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/ports"
)

// AssignDriverCommandHandler orchestrates handing a pending order to a driver.
// Only active drivers take orders; the order moves to assigned and the driver
// is notified after commit.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory, notifier)
//	cmd, _ := NewAssignDriverCommand(orderID, driverID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Unknown order or driver")
//	case errors.Is(err, driver.ErrDriverUnavailable):
//	    log.Println("Driver is not active")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignDriverCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.NotificationSink
}

// NewAssignDriverCommandHandler creates a handler for driver assignment operations.
// Requires a LifecycleUoWFactory for coordinating the order and driver aggregates
// and a NotificationSink for the post-commit driver notification.
func NewAssignDriverCommandHandler(
	uowFactory LifecycleUoWFactory,
	notifier ports.NotificationSink,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the driver assignment command.
// Resolves both aggregates, checks driver availability, and moves the order
// to assigned within a single transaction. The driver notification fires only
// after a successful commit and is fire-and-forget.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	assignee, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !assignee.IsAvailable() {
		return driver.ErrDriverUnavailable
	}

	if err = aggregate.Assign(assignee.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		RecipientID: assignee.ID().String(),
		Message:     fmt.Sprintf("New delivery assigned: %s to %s", aggregate.OrderNumber(), aggregate.Address()),
		Channel:     ports.ChannelDriver,
	})

	return nil
}
