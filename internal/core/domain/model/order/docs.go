// Package order records confirmed orders.
//
// An Order is created only after checkout succeeded: stock was reserved and a
// delivery agent was chosen. It keeps the receipt exactly as it was issued to
// the customer, which agent carries it and where it goes.
//
// Key business rules:
//   - Orders must have a valid identifier, the session that placed them and at least one receipt line
//   - The ETA is a non-negative number of whole minutes
//   - Order status follows the workflow: Dispatched -> Delivered
package order
