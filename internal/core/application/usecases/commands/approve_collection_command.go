package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrApproveCollectionCommandIsNotConstructed = errors.New(
		"ApproveCollectionCommand must be created via NewApproveCollectionCommand constructor",
	)
	ErrApprovedByIsRequired = errors.New("approver identity is required")
)

// ApproveCollectionCommand represents an operator accepting a submitted
// cash collection.
type ApproveCollectionCommand struct { //nolint:recvcheck //using for validation
	collectionID kernel.UUID
	approvedBy   string

	guard guard.ConstructorGuard
}

// NewApproveCollectionCommand creates a command to approve a collection.
// Validates that the collection ID is valid and the approver is named.
func NewApproveCollectionCommand(collectionID kernel.UUID, approvedBy string) (ApproveCollectionCommand, error) {
	approveCommand := ApproveCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		approveCommand.setCollectionID(collectionID),
		approveCommand.setApprovedBy(approvedBy),
	); err != nil {
		return ApproveCollectionCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCollectionCommand) Validate() error {
	return c.guard.Validate(ErrApproveCollectionCommandIsNotConstructed)
}

// CollectionID returns the unique identifier of the collection.
func (c ApproveCollectionCommand) CollectionID() kernel.UUID {
	return c.collectionID
}

// ApprovedBy returns the approving operator's identity.
func (c ApproveCollectionCommand) ApprovedBy() string {
	return c.approvedBy
}

func (c *ApproveCollectionCommand) setCollectionID(collectionID kernel.UUID) error {
	if err := collectionID.Validate(); err != nil {
		return err
	}

	c.collectionID = collectionID
	return nil
}

func (c *ApproveCollectionCommand) setApprovedBy(approvedBy string) error {
	if approvedBy == "" {
		return ErrApprovedByIsRequired
	}

	c.approvedBy = approvedBy
	return nil
}
