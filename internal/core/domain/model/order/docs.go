// Package order models the order lifecycle: the Order aggregate with its
// items and price totals, the fixed status graph and the append-only status
// history ledger.
//
// Key business rules:
//   - an order is created in PENDING together with its first ledger entry
//   - status changes only along the status graph and each change yields exactly one ledger entry
//   - replaying the ledger of an order reproduces its stored status
//   - only PENDING and CANCELLED orders may be deleted
package order
