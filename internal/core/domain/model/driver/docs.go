// Package driver contains the Driver aggregate: identity, duty status,
// live location, delivery counters, and the cached pending-cash balance.
//
// A driver carries a location only while active; deactivating or going on
// break clears it. The pendingCash field is a cache of the ledger-derived
// balance (sum of delivered COD orders not yet approved for collection);
// the cash reconciliation engine refreshes it after every relevant mutation.
// Drivers are never hard-deleted; deactivation is a status change.
package driver
