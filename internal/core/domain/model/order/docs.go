// Package order provides the Order aggregate: an immutable purchase snapshot
// created at checkout, a validated lifecycle state machine, and an
// append-only status history.
//
// Key business rules:
//   - Line items and totals are frozen at checkout; later product price
//     changes never affect an existing order.
//   - total == subtotal + tax + shipping, all rounded to two decimals.
//   - Status moves only along the explicit lifecycle graph; a delivered
//     order can never return to pending.
//   - Every transition appends exactly one StatusChange entry; history is
//     never edited or deleted.
package order
