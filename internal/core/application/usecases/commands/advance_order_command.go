package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an order one step along
// the lifecycle chain. The caller supplies the status it observed, which the
// engine uses as a compare-and-swap guard against racing updates.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	expected order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
// Validates that the order ID and the observed status are valid.
func NewAdvanceOrderCommand(orderID kernel.UUID, expected order.Status) (AdvanceOrderCommand, error) {
	advanceCommand := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setOrderID(orderID),
		advanceCommand.setExpected(expected),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Expected returns the status the caller observed before issuing the command.
func (c AdvanceOrderCommand) Expected() order.Status {
	return c.expected
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setExpected(expected order.Status) error {
	if err := expected.Validate(); err != nil {
		return err
	}

	c.expected = expected
	return nil
}
