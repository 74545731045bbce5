package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRejectCollectionCommandIsNotConstructed = errors.New(
	"RejectCollectionCommand must be created via NewRejectCollectionCommand constructor",
)

// RejectCollectionCommand represents an operator declining a submitted
// cash collection.
type RejectCollectionCommand struct { //nolint:recvcheck //using for validation
	collectionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectCollectionCommand creates a command to reject a collection.
// Validates that the collection ID is valid.
func NewRejectCollectionCommand(collectionID kernel.UUID) (RejectCollectionCommand, error) {
	rejectCommand := RejectCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := rejectCommand.setCollectionID(collectionID); err != nil {
		return RejectCollectionCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectCollectionCommand) Validate() error {
	return c.guard.Validate(ErrRejectCollectionCommandIsNotConstructed)
}

// CollectionID returns the unique identifier of the collection.
func (c RejectCollectionCommand) CollectionID() kernel.UUID {
	return c.collectionID
}

func (c *RejectCollectionCommand) setCollectionID(collectionID kernel.UUID) error {
	if err := collectionID.Validate(); err != nil {
		return err
	}

	c.collectionID = collectionID
	return nil
}
