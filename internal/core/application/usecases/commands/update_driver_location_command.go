package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand represents a position report from a driver's app.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	location kernel.Geolocation

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command to record a driver's position.
// Validates that the driver ID and the location are valid.
func NewUpdateDriverLocationCommand(driverID kernel.UUID, location kernel.Geolocation) (UpdateDriverLocationCommand, error) {
	locationCommand := UpdateDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setDriverID(driverID),
		locationCommand.setLocation(location),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// DriverID returns the unique identifier of the driver.
func (c UpdateDriverLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Location returns the reported position.
func (c UpdateDriverLocationCommand) Location() kernel.Geolocation {
	return c.location
}

func (c *UpdateDriverLocationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverLocationCommand) setLocation(location kernel.Geolocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
