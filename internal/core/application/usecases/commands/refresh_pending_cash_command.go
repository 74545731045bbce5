package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRefreshPendingCashCommandIsNotConstructed = errors.New(
	"RefreshPendingCashCommand must be created via NewRefreshPendingCashCommand constructor",
)

// RefreshPendingCashCommand represents a request to recompute a driver's
// pending cash from the ledger and overwrite the cached balance on the
// aggregate. Issued by the reconciliation job to heal any drift.
type RefreshPendingCashCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefreshPendingCashCommand creates a command to refresh a driver's balance.
// Validates that the driver ID is valid.
func NewRefreshPendingCashCommand(driverID kernel.UUID) (RefreshPendingCashCommand, error) {
	refreshCommand := RefreshPendingCashCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := refreshCommand.setDriverID(driverID); err != nil {
		return RefreshPendingCashCommand{}, err
	}

	return refreshCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshPendingCashCommand) Validate() error {
	return c.guard.Validate(ErrRefreshPendingCashCommandIsNotConstructed)
}

// DriverID returns the unique identifier of the driver.
func (c RefreshPendingCashCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *RefreshPendingCashCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
