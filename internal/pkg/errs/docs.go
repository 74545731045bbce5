// Package errs provides the standardized error kinds used across the
// logistics application. Every kind follows the same pattern:
//
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for classification
//
// The generic kinds (ObjectNotFound, ValueIsRequired, ValueIsInvalid,
// ValueIsOutOfRange) cover validation and lookup failures. The ledger kinds
// (InvalidTransition, StaleState, IntegrityFault) cover illegal state-machine
// moves, optimistic-concurrency guard mismatches, and invariant violations
// that an otherwise valid command would introduce. Domain-specific kinds such
// as driver unavailability live next to their aggregates.
package errs
