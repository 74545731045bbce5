package cash

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrCollectionIsNotConstructed is returned when a Collection instance was
	// not created through NewCollection or RestoreCollection.
	ErrCollectionIsNotConstructed = errors.New(
		"Collection must be created via NewCollection or RestoreCollection constructor")

	// ErrCollectionNeedsOrders is returned when submitting a collection that
	// references no orders.
	ErrCollectionNeedsOrders = errs.NewValueIsRequiredError("order IDs")

	// ErrAmountMustBePositive is returned when submitting a collection with a
	// non-positive amount.
	ErrAmountMustBePositive = errs.NewValueIsInvalidErrorWithCause("amount",
		errors.New("collection amount must be greater than zero"))

	// ErrApproverIsRequired is returned when approving a collection without
	// naming who approved it.
	ErrApproverIsRequired = errs.NewValueIsRequiredError("approver")

	// ErrOrderNotEligible is returned when a collection references an order
	// that is not a delivered cash-on-delivery order of the submitting driver.
	ErrOrderNotEligible = errors.New("order is not eligible for cash collection")

	// ErrDoubleCollection is returned when a collection references an order
	// already claimed by another pending or approved collection.
	ErrDoubleCollection = errors.New("order is already claimed by an active collection")
)

// NewOrderNotEligibleError wraps ErrOrderNotEligible with the offending order
// and the reason it was turned away.
func NewOrderNotEligibleError(orderID kernel.UUID, reason string) error {
	return fmt.Errorf("%w: order %s %s", ErrOrderNotEligible, orderID, reason)
}

// NewDoubleCollectionError wraps ErrDoubleCollection with the offending order.
func NewDoubleCollectionError(orderID kernel.UUID) error {
	return fmt.Errorf("%w: order %s", ErrDoubleCollection, orderID)
}

// Collection is the aggregate root of a cash hand-over declaration.
//
// Invariants:
//   - at least one order is referenced, with no duplicates
//   - amount is strictly positive
//   - approver identity and approval time are present exactly when approved
//   - approved and rejected collections accept no further transitions
type Collection struct {
	id          kernel.UUID
	driverID    kernel.UUID
	orderIDs    []kernel.UUID
	amount      kernel.Money
	status      Status
	notes       string
	submittedAt time.Time
	approvedBy  *string
	approvedAt  *time.Time
	guard       guard.ConstructorGuard
}

// NewCollection submits a pending Collection and validates every field.
// Notes are optional.
func NewCollection(
	id kernel.UUID,
	driverID kernel.UUID,
	orderIDs []kernel.UUID,
	amount kernel.Money,
	notes string,
) (*Collection, error) {
	c := &Collection{
		status:      StatusPending,
		notes:       notes,
		submittedAt: time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setDriverID(driverID),
		c.setOrderIDs(orderIDs),
		c.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCollection reconstructs a Collection from persistence without
// regenerating the submission time. It revalidates every invariant,
// including the approval-fields rule for the restored status.
func RestoreCollection(
	id kernel.UUID,
	driverID kernel.UUID,
	orderIDs []kernel.UUID,
	amount kernel.Money,
	status Status,
	notes string,
	submittedAt time.Time,
	approvedBy *string,
	approvedAt *time.Time,
) (*Collection, error) {
	c := &Collection{
		notes:       notes,
		submittedAt: submittedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setDriverID(driverID),
		c.setOrderIDs(orderIDs),
		c.setAmount(amount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	approved := status == StatusApproved
	if approved != (approvedBy != nil && approvedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("approval fields",
			fmt.Errorf("approver and approval time must be set exactly when status is %s",
				StatusApproved))
	}
	if approvedBy != nil {
		if *approvedBy == "" {
			return nil, ErrApproverIsRequired
		}
		by := *approvedBy
		at := *approvedAt
		c.approvedBy = &by
		c.approvedAt = &at
	}

	c.status = status
	return c, nil
}

// Validate ensures the Collection was created through a constructor.
func (c *Collection) Validate() error {
	if c == nil {
		return ErrCollectionIsNotConstructed
	}
	return c.guard.Validate(ErrCollectionIsNotConstructed)
}

// IsEqual compares two collections by identifier.
func (c *Collection) IsEqual(other *Collection) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the collection's unique identifier.
func (c *Collection) ID() kernel.UUID {
	return c.id
}

// Driver returns the ID of the driver who submitted the collection.
func (c *Collection) Driver() kernel.UUID {
	return c.driverID
}

// Orders returns a copy of the referenced order IDs in submission order.
func (c *Collection) Orders() []kernel.UUID {
	orders := make([]kernel.UUID, len(c.orderIDs))
	copy(orders, c.orderIDs)
	return orders
}

// Covers reports whether the collection references the given order.
func (c *Collection) Covers(orderID kernel.UUID) bool {
	for _, id := range c.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// Amount returns the declared hand-over amount.
func (c *Collection) Amount() kernel.Money {
	return c.amount
}

// Status returns the current review status.
func (c *Collection) Status() Status {
	return c.status
}

// Notes returns the free-form submission notes, possibly empty.
func (c *Collection) Notes() string {
	return c.notes
}

// SubmittedAt returns the submission timestamp.
func (c *Collection) SubmittedAt() time.Time {
	return c.submittedAt
}

// ApprovedBy returns the approver's identity, or nil unless approved.
func (c *Collection) ApprovedBy() *string {
	return c.approvedBy
}

// ApprovedAt returns the approval timestamp, or nil unless approved.
func (c *Collection) ApprovedAt() *time.Time {
	return c.approvedAt
}

// IsActive reports whether the collection still claims its orders.
// Pending and approved collections do; rejected ones release them.
func (c *Collection) IsActive() bool {
	return c.status != StatusRejected
}

// Approve accepts the collection on behalf of the named operator.
// Legal only while pending.
func (c *Collection) Approve(approvedBy string) error {
	if approvedBy == "" {
		return ErrApproverIsRequired
	}

	newStatus, err := c.status.Approve()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	c.status = newStatus
	c.approvedBy = &approvedBy
	c.approvedAt = &now
	return nil
}

// Reject declines the collection, releasing its orders for resubmission.
// Legal only while pending.
func (c *Collection) Reject() error {
	newStatus, err := c.status.Reject()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

func (c *Collection) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Collection) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *Collection) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrCollectionNeedsOrders
	}

	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	copied := make([]kernel.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("order IDs",
				fmt.Errorf("order %s is referenced twice", id))
		}
		seen[id] = struct{}{}
		copied = append(copied, id)
	}

	c.orderIDs = copied
	return nil
}

func (c *Collection) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	c.amount = amount
	return nil
}
