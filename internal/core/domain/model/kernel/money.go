package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"

	"logistics/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or ZeroMoney")

// Money is an immutable monetary amount in integer minor units (cents).
// Amounts are always non-negative; arithmetic that would produce a negative
// result fails instead of clamping, so that balance underflows surface as
// errors rather than silent data corruption.
//
// Example:
//
//	amount, _ := kernel.NewMoney(50000) // 500.00
//	rest, err := amount.Subtract(collected)
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money amount from minor units.
// Returns an error for negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", cents))
	}
	return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

// ZeroMoney returns a constructed zero amount, used for fresh driver
// balances and aggregate seeds.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return Money{cents: m.cents + other.cents, guard: guard.NewConstructorGuard()}, nil
}

// Subtract returns the difference of two amounts.
// Fails when the result would be negative; callers decide whether that is
// a validation error or an integrity fault.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if other.cents > m.cents {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", m.cents-other.cents, 0, m.cents)
	}
	return Money{cents: m.cents - other.cents, guard: guard.NewConstructorGuard()}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// IsEqual reports whether two amounts are equal.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "500.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// Validate returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
