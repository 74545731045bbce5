package services

import (
	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// CashLedger is a domain service implementing the reconciliation rules that
// span order, driver, and collection aggregates.
//
// Business rules:
//   - only delivered cash-on-delivery orders of the submitting driver are
//     collectable
//   - an order backs at most one collection that is not rejected
//   - a driver's pending cash is derivable at any time: cash taken on
//     delivered COD orders minus cash already handed over and approved
//
// The stored pending cash on the Driver aggregate is a cache of that
// derivation; PendingCashFor is the source of truth used to refresh it.
type CashLedger struct{}

// NewCashLedger creates a new CashLedger instance.
func NewCashLedger() CashLedger {
	return CashLedger{}
}

// ValidateSubmission checks that every order of a proposed collection is
// collectable by the driver and not already claimed.
//
// orders must be the resolved aggregates of the submission's order IDs.
// activeCollections are the driver's existing collections that still claim
// their orders (pending or approved).
func (CashLedger) ValidateSubmission(
	driverID kernel.UUID,
	orders []*order.Order,
	activeCollections []*cash.Collection,
) error {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}

		if o.Status() != order.Delivered {
			return cash.NewOrderNotEligibleError(o.ID(), "is not delivered")
		}
		if !o.IsCashOnDelivery() {
			return cash.NewOrderNotEligibleError(o.ID(), "is not cash-on-delivery")
		}
		if o.Driver() == nil || !o.Driver().IsEqual(driverID) {
			return cash.NewOrderNotEligibleError(o.ID(), "belongs to another driver")
		}

		for _, c := range activeCollections {
			if c.IsActive() && c.Covers(o.ID()) {
				return cash.NewDoubleCollectionError(o.ID())
			}
		}
	}

	return nil
}

// PendingCashFor recomputes a driver's pending cash from first principles:
// the sum over the driver's delivered cash-on-delivery orders, minus the
// sum of the driver's approved collections.
//
// Orders and collections belonging to other drivers are skipped, so callers
// may pass unfiltered slices. An approved total exceeding the delivered
// total is an integrity fault: it means a collection was approved for cash
// the ledger never saw.
func (CashLedger) PendingCashFor(
	driverID kernel.UUID,
	orders []*order.Order,
	collections []*cash.Collection,
) (kernel.Money, error) {
	collected := kernel.ZeroMoney()
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return kernel.Money{}, err
		}
		if o.Status() != order.Delivered || !o.IsCashOnDelivery() {
			continue
		}
		if o.Driver() == nil || !o.Driver().IsEqual(driverID) {
			continue
		}

		sum, err := collected.Add(o.Amount())
		if err != nil {
			return kernel.Money{}, err
		}
		collected = sum
	}

	for _, c := range collections {
		if err := c.Validate(); err != nil {
			return kernel.Money{}, err
		}
		if c.Status() != cash.StatusApproved || !c.Driver().IsEqual(driverID) {
			continue
		}

		rest, err := collected.Subtract(c.Amount())
		if err != nil {
			return kernel.Money{}, errs.NewIntegrityFaultErrorWithCause(
				"approved collections exceed cash collected on deliveries", err)
		}
		collected = rest
	}

	return collected, nil
}
