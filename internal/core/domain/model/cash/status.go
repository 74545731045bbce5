package cash

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the review state of a cash collection.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a submitted collection,
	// awaiting an operator's review.
	StatusPending

	// StatusApproved is the terminal status of an accepted collection.
	// Approval settles the amount against the driver's pending cash.
	StatusApproved

	// StatusRejected is the terminal status of a declined collection.
	// Rejected collections release their orders for resubmission.
	StatusRejected
)

// getStatusStrings returns the wire names of all statuses, including StatusUnknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusApproved: "approved",
		StatusRejected: "rejected",
	}
}

// getValidStatusStrings returns the wire names of valid statuses only.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:  "pending",
		StatusApproved: "approved",
		StatusRejected: "rejected",
	}
}

// StatusFromString parses a wire name ("pending", "approved", "rejected")
// into a Status. Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid collection status", s))
}

// Validate checks that the Status is one of the valid review states.
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

// Approve transitions the status to StatusApproved. Legal only from
// StatusPending.
func (s Status) Approve() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidTransitionError("collection", s.String(), StatusApproved.String())
	}
	return StatusApproved, nil
}

// Reject transitions the status to StatusRejected. Legal only from
// StatusPending.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidTransitionError("collection", s.String(), StatusRejected.String())
	}
	return StatusRejected, nil
}
