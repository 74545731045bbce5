package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrMarkOrderReturnedCommandIsNotConstructed = errors.New(
	"MarkOrderReturnedCommand must be created via NewMarkOrderReturnedCommand constructor",
)

// MarkOrderReturnedCommand represents a request to record a failed delivery.
type MarkOrderReturnedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderReturnedCommand creates a command to mark an order as returned.
// Validates that the order ID is valid.
func NewMarkOrderReturnedCommand(orderID kernel.UUID) (MarkOrderReturnedCommand, error) {
	returnCommand := MarkOrderReturnedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := returnCommand.setOrderID(orderID); err != nil {
		return MarkOrderReturnedCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReturnedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReturnedCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c MarkOrderReturnedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderReturnedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
