// Package services holds domain logic that does not belong to a single
// aggregate.
//
// The package includes:
//   - PricingCalculator: computes order totals from items, delivery type and
//     discount using the configured tax rate and flat delivery fee
package services
