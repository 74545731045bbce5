package order

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCustomerNameIsRequired is returned when creating an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrCustomerPhoneIsRequired is returned when creating an order without a customer phone.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customer phone")
	// ErrAddressIsRequired is returned when creating an order without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	// ErrAmountMustBePositive is returned when creating an order with a non-positive amount.
	ErrAmountMustBePositive = errs.NewValueIsInvalidErrorWithCause("amount",
		errors.New("order amount must be greater than zero"))
)

// Order is the aggregate root of a delivery order. It owns the status state
// machine, the driver assignment, and the timestamps the dashboard sorts by.
//
// Invariants:
//   - amount is strictly positive
//   - a driver is assigned exactly when status is not pending
//   - terminal orders (delivered, returned) accept no further transitions
//   - every transition refreshes updatedAt
type Order struct {
	id             kernel.UUID
	orderNumber    string
	trackingNumber string
	customerName   string
	customerPhone  string
	address        string
	amount         kernel.Money
	payment        PaymentMethod
	status         Status
	driverID       *kernel.UUID
	createdAt      time.Time
	updatedAt      time.Time
	guard          guard.ConstructorGuard
}

// NewOrder creates a pending Order, generates its order and tracking
// numbers, and validates every field.
//
// Example:
//
//	amount, _ := kernel.NewMoney(50000)
//	o, err := order.NewOrder(kernel.NewUUID(), "Asha Rao", "+91 98450 12345",
//	    "14 MG Road, Bengaluru", amount, order.CashOnDelivery)
func NewOrder(
	id kernel.UUID,
	customerName string,
	customerPhone string,
	address string,
	amount kernel.Money,
	payment PaymentMethod,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setAddress(address),
		o.setAmount(amount),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	o.orderNumber = newOrderNumber(id, now)
	o.trackingNumber = newTrackingNumber(id, now)
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without regenerating
// numbers or timestamps. It revalidates every invariant, including the
// driver-presence rule for the restored status.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	trackingNumber string,
	customerName string,
	customerPhone string,
	address string,
	amount kernel.Money,
	payment PaymentMethod,
	status Status,
	driverID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		orderNumber:    orderNumber,
		trackingNumber: trackingNumber,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setAddress(address),
		o.setAmount(amount),
		o.setPayment(payment),
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}

	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("tracking number")
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		copied := *driverID
		o.driverID = &copied
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// TrackingNumber returns the customer-facing tracking number.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// CustomerName returns the recipient's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the recipient's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Amount returns the order's monetary amount.
func (o *Order) Amount() kernel.Money {
	return o.amount
}

// Payment returns the order's payment method.
func (o *Order) Payment() PaymentMethod {
	return o.payment
}

// IsCashOnDelivery reports whether the amount is collected by the driver.
func (o *Order) IsCashOnDelivery() bool {
	return o.payment == CashOnDelivery
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's ID, or nil while pending.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign hands the order to a driver and moves it to Assigned.
// Legal only from Pending; a driver, once set, is never replaced.
// Driver availability is checked by the caller, which owns both aggregates.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.touch()
	return nil
}

// Advance moves the order one step along the lifecycle chain
// (assigned → picked-up → in-transit → delivered).
//
// expected is the status the caller observed before issuing the command;
// if the stored status differs, Advance fails with a StaleState error and
// changes nothing. This is the compare-and-swap guard against racing
// transition attempts on the same order.
func (o *Order) Advance(expected Status) error {
	if err := expected.Validate(); err != nil {
		return err
	}
	if o.status != expected {
		return errs.NewStaleStateError("order status", expected.String(), o.status.String())
	}

	next, err := o.status.Advance()
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// MarkReturned records a failed delivery. Legal only from InTransit.
func (o *Order) MarkReturned() error {
	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	o.amount = amount
	return nil
}

func (o *Order) setPayment(payment PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

// newOrderNumber derives a human-readable order number from the order
// identity and creation year, e.g. "ORD-2026-4F2A91C3".
func newOrderNumber(id kernel.UUID, t time.Time) string {
	raw := id.Bytes()
	return fmt.Sprintf("ORD-%d-%08X", t.Year(), binary.BigEndian.Uint32(raw[0:4]))
}

// newTrackingNumber derives a tracking number from the creation instant
// plus an identity fragment to disambiguate same-millisecond orders.
func newTrackingNumber(id kernel.UUID, t time.Time) string {
	raw := id.Bytes()
	return fmt.Sprintf("TRK%d%02X%02X", t.UnixMilli(), raw[4], raw[5])
}
