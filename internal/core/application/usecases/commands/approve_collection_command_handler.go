package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/ports"
)

// ApproveCollectionCommandHandler handles collection approvals.
// Approval settles the amount against the driver's pending cash within the
// same transaction; a balance below the collection amount is an integrity
// fault and fails the approval untouched.
type ApproveCollectionCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationSink
}

// NewApproveCollectionCommandHandler creates a handler for approval operations.
// Requires a UoWFactory for coordinating the collection and driver aggregates
// and a NotificationSink for the post-commit driver notification.
func NewApproveCollectionCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationSink,
) ApproveCollectionCommandHandler {
	return ApproveCollectionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the approval command.
// Legal only while the collection is pending. The driver notification fires
// only after a successful commit and is fire-and-forget.
func (h ApproveCollectionCommandHandler) Handle(ctx context.Context, cmd ApproveCollectionCommand) error {
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

	collectionRepo := uow.CollectionRepository()
	collection, err := collectionRepo.Get(ctx, cmd.CollectionID())
	if err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	owner, err := driverRepo.Get(ctx, collection.Driver())
	if err != nil {
		return err
	}

	if err = collection.Approve(cmd.ApprovedBy()); err != nil {
		return err
	}

	if err = owner.SettleCash(collection.Amount()); err != nil {
		return err
	}

	if err = collectionRepo.Update(ctx, collection); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, owner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		RecipientID: owner.ID().String(),
		Message: fmt.Sprintf("Cash collection of %s approved by %s",
			collection.Amount(), cmd.ApprovedBy()),
		Channel: ports.ChannelDriver,
	})

	return nil
}
