// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - CheckoutService: converts a cart into an order snapshot, pricing the
//     lines and reserving stock on the product aggregates
package services
