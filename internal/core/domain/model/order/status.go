package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a single explicit transition table so that assignment,
// advancement, and returns all consult the same source of truth.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	// Pending orders have no driver and wait for assignment.
	Pending

	// Assigned indicates the order has been handed to a driver.
	Assigned

	// PickedUp indicates the driver has collected the parcel.
	PickedUp

	// InTransit indicates the parcel is on its way to the customer.
	InTransit

	// Delivered is the successful terminal state.
	Delivered

	// Returned is the unsuccessful terminal state, reachable only from
	// InTransit.
	Returned
)

// getStatusStrings returns the wire names of all statuses, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked-up",
		InTransit: "in-transit",
		Delivered: "delivered",
		Returned:  "returned",
	}
}

// getValidStatusStrings returns the wire names of valid statuses only.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked-up",
		InTransit: "in-transit",
		Delivered: "delivered",
		Returned:  "returned",
	}
}

// getForwardTransitions is the transition table of the advance chain.
// Pending is absent on purpose: leaving pending requires a driver and goes
// through Assign. Terminal states have no entry.
func getForwardTransitions() map[Status]Status {
	return map[Status]Status{
		Assigned:  PickedUp,
		PickedUp:  InTransit,
		InTransit: Delivered,
	}
}

// StatusFromString parses a wire name ("pending", "picked-up", ...) into a
// Status. Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer
// and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned
}

// Assign transitions the status to Assigned.
// Legal only from Pending; there is no reassignment in this lifecycle.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), Assigned.String())
	}
	return Assigned, nil
}

// Advance returns the single legal successor of the status per the
// transition table. Fails for Pending (which leaves via Assign) and for
// terminal states.
func (s Status) Advance() (Status, error) {
	next, ok := getForwardTransitions()[s]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), "its successor")
	}
	return next, nil
}

// Return transitions the status to Returned. Legal only from InTransit.
func (s Status) Return() (Status, error) {
	if s != InTransit {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), Returned.String())
	}
	return Returned, nil
}

// ValidateCanHaveDriver enforces the invariant that a driver is assigned
// exactly when the order is not pending.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot have a driver", s.String()))
	}

	if !hasDriver && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must have a driver", s.String()))
	}

	return nil
}
