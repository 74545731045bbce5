package commands

import (
	"context"
)

// RejectCollectionCommandHandler handles collection rejections.
// Rejection changes no balances and releases the contributing orders for
// resubmission.
type RejectCollectionCommandHandler struct {
	uowFactory CollectionUoWFactory
}

// NewRejectCollectionCommandHandler creates a handler for rejection operations.
// Requires a CollectionUoWFactory for transactional persistence.
func NewRejectCollectionCommandHandler(uowFactory CollectionUoWFactory) RejectCollectionCommandHandler {
	return RejectCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command. Legal only while pending.
func (h RejectCollectionCommandHandler) Handle(ctx context.Context, cmd RejectCollectionCommand) error {
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

	if err = collection.Reject(); err != nil {
		return err
	}

	if err = collectionRepo.Update(ctx, collection); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
