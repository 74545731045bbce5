package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrRecordCollectionCommandIsNotConstructed = errors.New(
		"RecordCollectionCommand must be created via NewRecordCollectionCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order ID is required")
)

// RecordCollectionCommand represents a driver's declaration that cash from a
// set of delivered cash-on-delivery orders is being handed over. The amount
// is not part of the command: the engine computes it as the sum of the
// referenced orders' amounts.
type RecordCollectionCommand struct { //nolint:recvcheck //using for validation
	collectionID kernel.UUID
	driverID     kernel.UUID
	orderIDs     []kernel.UUID
	notes        string

	guard guard.ConstructorGuard
}

// NewRecordCollectionCommand creates a command to submit a cash collection.
// Validates that all identifiers are valid and at least one order is named.
// Notes are optional.
func NewRecordCollectionCommand(
	collectionID kernel.UUID,
	driverID kernel.UUID,
	orderIDs []kernel.UUID,
	notes string,
) (RecordCollectionCommand, error) {
	collectionCommand := RecordCollectionCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		collectionCommand.setCollectionID(collectionID),
		collectionCommand.setDriverID(driverID),
		collectionCommand.setOrderIDs(orderIDs),
	); err != nil {
		return RecordCollectionCommand{}, err
	}

	return collectionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCollectionCommand) Validate() error {
	return c.guard.Validate(ErrRecordCollectionCommandIsNotConstructed)
}

// CollectionID returns the unique identifier for the collection.
func (c RecordCollectionCommand) CollectionID() kernel.UUID {
	return c.collectionID
}

// DriverID returns the unique identifier of the submitting driver.
func (c RecordCollectionCommand) DriverID() kernel.UUID {
	return c.driverID
}

// OrderIDs returns a copy of the referenced order identifiers.
func (c RecordCollectionCommand) OrderIDs() []kernel.UUID {
	orderIDs := make([]kernel.UUID, len(c.orderIDs))
	copy(orderIDs, c.orderIDs)
	return orderIDs
}

// Notes returns the free-form submission notes, possibly empty.
func (c RecordCollectionCommand) Notes() string {
	return c.notes
}

func (c *RecordCollectionCommand) setCollectionID(collectionID kernel.UUID) error {
	if err := collectionID.Validate(); err != nil {
		return err
	}

	c.collectionID = collectionID
	return nil
}

func (c *RecordCollectionCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RecordCollectionCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}

	copied := make([]kernel.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		copied = append(copied, id)
	}

	c.orderIDs = copied
	return nil
}
