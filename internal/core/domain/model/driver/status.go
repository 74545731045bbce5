package driver

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents a driver's duty state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active means the driver is on duty and eligible for assignments.
	Active

	// Inactive means the driver is off duty.
	Inactive

	// OnBreak means the driver is temporarily unavailable.
	OnBreak
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Active:   "active",
		Inactive: "inactive",
		OnBreak:  "on-break",
	}
}

// StatusFromString parses a wire name ("active", "on-break", ...) into a
// Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks that the Status is one of the valid duty states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateCanHaveLocation enforces the rule that only active drivers carry
// a live location. An active driver without a location is fine (the device
// may not have reported yet); a non-active driver with one is not.
func (s Status) ValidateCanHaveLocation(hasLocation bool) error {
	if hasLocation && s != Active {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s driver cannot have a location", s.String()))
	}
	return nil
}
