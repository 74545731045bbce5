// Package cash contains the CashCollection aggregate of the reconciliation
// ledger.
//
// A collection is a driver's declaration that cash from a set of delivered
// cash-on-delivery orders has been handed over. It is submitted as pending
// and then either approved or rejected by an operator:
//
//	pending ──→ approved
//	   │
//	   └─────→ rejected
//
// Both outcomes are terminal. An order may back at most one collection that
// is not rejected; eligibility of the referenced orders (delivered,
// cash-on-delivery, owned by the submitting driver) is enforced by the
// command layer, which owns the order aggregates.
package cash
