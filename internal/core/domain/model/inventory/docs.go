// Package inventory models per-product stock levels and reservation requests.
//
// Reservations are applied by storage as single conditional updates; a Record
// loaded afterwards reflects the outcome and records the matching events.
package inventory
