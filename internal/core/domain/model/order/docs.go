// Package order contains the Order aggregate of the logistics domain.
//
// An order moves through a fixed lifecycle:
//
//	pending ──> assigned ──> picked-up ──> in-transit ──┬──> delivered
//	                                                    └──> returned
//
// Delivered and returned are terminal. All transition rules are expressed in
// a single transition table consulted by Assign, Advance, and MarkReturned,
// so no collaborator duplicates lifecycle logic. A driver reference is set
// exactly when the order leaves pending and is never reassigned.
package order
