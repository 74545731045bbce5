package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrResetDailyCountersCommandIsNotConstructed = errors.New(
	"ResetDailyCountersCommand must be created via NewResetDailyCountersCommand constructor",
)

// ResetDailyCountersCommand represents the start of a new operating day:
// every driver's completed-today counter drops back to zero.
// Carries no parameters.
type ResetDailyCountersCommand struct {
	guard guard.ConstructorGuard
}

// NewResetDailyCountersCommand creates a command to reset daily counters.
func NewResetDailyCountersCommand() ResetDailyCountersCommand {
	return ResetDailyCountersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ResetDailyCountersCommand) Validate() error {
	return c.guard.Validate(ErrResetDailyCountersCommandIsNotConstructed)
}
