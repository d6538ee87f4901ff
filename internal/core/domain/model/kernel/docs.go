// Package kernel holds the value objects shared by every aggregate of the
// order desk: identifiers, grid locations and money.
//
// The package includes:
//   - UUID: identifier of sessions and confirmed orders
//   - Location: a point on the delivery grid, with Euclidean distance
//   - Money: an exact amount in cents, formatted as dollars
//
// All values are immutable. Zero values of UUID and Location are invalid and
// fail Validate; they must come from the constructors.
package kernel
