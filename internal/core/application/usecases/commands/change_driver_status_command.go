package commands

import (
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrChangeDriverStatusCommandIsNotConstructed = errors.New(
	"ChangeDriverStatusCommand must be created via NewChangeDriverStatusCommand constructor",
)

// ChangeDriverStatusCommand represents a request to move a driver between
// active, inactive, and on-break.
type ChangeDriverStatusCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	status   driver.Status

	guard guard.ConstructorGuard
}

// NewChangeDriverStatusCommand creates a command to change a driver's status.
// Validates that the driver ID and the target status are valid.
func NewChangeDriverStatusCommand(driverID kernel.UUID, status driver.Status) (ChangeDriverStatusCommand, error) {
	statusCommand := ChangeDriverStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setDriverID(driverID),
		statusCommand.setStatus(status),
	); err != nil {
		return ChangeDriverStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverStatusCommandIsNotConstructed)
}

// DriverID returns the unique identifier of the driver.
func (c ChangeDriverStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Status returns the target driver status.
func (c ChangeDriverStatusCommand) Status() driver.Status {
	return c.status
}

func (c *ChangeDriverStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *ChangeDriverStatusCommand) setStatus(status driver.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
