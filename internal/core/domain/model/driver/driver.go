package driver

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
	// ErrNameIsRequired is returned when registering a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleIsRequired is returned when registering a driver without a vehicle identifier.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")
	// ErrDriverUnavailable is returned when an operation requires an active
	// driver (order assignment, location updates) and the driver is not.
	ErrDriverUnavailable = errors.New("driver is not active")
)

// Driver is the aggregate root for a delivery driver.
//
// Invariants:
//   - a location is present only while the driver is active
//   - delivery counters are non-negative
//   - pendingCash is a non-negative cache of the ledger-derived balance
type Driver struct {
	id              kernel.UUID
	name            string
	vehicle         string
	status          Status
	location        *kernel.Geolocation
	totalDeliveries int
	completedToday  int
	pendingCash     kernel.Money
	guard           guard.ConstructorGuard
}

// NewDriver registers a new driver: active, no location yet, all counters
// and the cash balance at zero.
//
// Example:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Rajesh Kumar", "KA-01-AB-1234")
func NewDriver(id kernel.UUID, name string, vehicle string) (*Driver, error) {
	d := &Driver{
		status:      Active,
		pendingCash: kernel.ZeroMoney(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence, revalidating the
// location-presence rule and counter bounds.
func RestoreDriver(
	id kernel.UUID,
	name string,
	vehicle string,
	status Status,
	location *kernel.Geolocation,
	totalDeliveries int,
	completedToday int,
	pendingCash kernel.Money,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setVehicle(vehicle),
		status.Validate(),
		status.ValidateCanHaveLocation(location != nil),
		pendingCash.Validate(),
	); err != nil {
		return nil, err
	}

	if totalDeliveries < 0 || completedToday < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("delivery counters",
			fmt.Errorf("counters must be non-negative, got %d and %d", totalDeliveries, completedToday))
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		copied := *location
		d.location = &copied
	}

	d.status = status
	d.totalDeliveries = totalDeliveries
	d.completedToday = completedToday
	d.pendingCash = pendingCash
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Vehicle returns the driver's vehicle identifier.
func (d *Driver) Vehicle() string {
	return d.vehicle
}

// Status returns the driver's duty status.
func (d *Driver) Status() Status {
	return d.status
}

// IsAvailable reports whether the driver can take assignments and report
// locations.
func (d *Driver) IsAvailable() bool {
	return d.status == Active
}

// Location returns the driver's last reported location, or nil when the
// driver is not active or has not reported yet.
func (d *Driver) Location() *kernel.Geolocation {
	return d.location
}

// TotalDeliveries returns the lifetime completed-delivery count.
func (d *Driver) TotalDeliveries() int {
	return d.totalDeliveries
}

// CompletedToday returns the deliveries completed in the current operating day.
func (d *Driver) CompletedToday() int {
	return d.completedToday
}

// PendingCash returns the cached pending-cash balance.
func (d *Driver) PendingCash() kernel.Money {
	return d.pendingCash
}

// ChangeStatus moves the driver to a new duty status. Leaving Active clears
// the location so that the presence rule keeps holding.
func (d *Driver) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if status != Active {
		d.location = nil
	}
	d.status = status
	return nil
}

// UpdateLocation records a location report from the driver's device.
// Only active drivers report locations.
func (d *Driver) UpdateLocation(location kernel.Geolocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if d.status != Active {
		return ErrDriverUnavailable
	}

	d.location = &location
	return nil
}

// RecordDelivery bumps the delivery counters for a completed order and,
// for cash-on-delivery, adds the collected amount to the cash balance.
func (d *Driver) RecordDelivery(amount kernel.Money, cashOnDelivery bool) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	d.totalDeliveries++
	d.completedToday++

	if cashOnDelivery {
		newBalance, err := d.pendingCash.Add(amount)
		if err != nil {
			return err
		}
		d.pendingCash = newBalance
	}
	return nil
}

// SettleCash decrements the pending-cash balance by an approved collection
// amount. A balance below the collection amount is a data-integrity fault,
// reported rather than clamped.
func (d *Driver) SettleCash(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	newBalance, err := d.pendingCash.Subtract(amount)
	if err != nil {
		return errs.NewIntegrityFaultErrorWithCause("driver pending cash below collection amount", err)
	}

	d.pendingCash = newBalance
	return nil
}

// RefreshPendingCash overwrites the cached balance with a freshly
// recomputed ledger value.
func (d *Driver) RefreshPendingCash(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	d.pendingCash = amount
	return nil
}

// ResetDailyCount zeroes the per-day delivery counter at the operating-day
// boundary.
func (d *Driver) ResetDailyCount() {
	d.completedToday = 0
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setVehicle(vehicle string) error {
	if vehicle == "" {
		return ErrVehicleIsRequired
	}
	d.vehicle = vehicle
	return nil
}
