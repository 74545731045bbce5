// Package services provides domain services that orchestrate business rules
// across multiple aggregates of the logistics system.
//
// The package includes:
//   - CashLedger: reconciliation rules spanning orders, drivers, and
//     cash collections
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root. They are pure: all state they need is passed in by the
// application layer, which owns loading and persisting the aggregates.
package services
