// Package catalog models the restaurant menu: the set of orderable items with
// their stable stock identifier, unit price and description.
//
// A Catalog is immutable once built and preserves insertion order, which the
// semantic fallback relies on to break score ties.
package catalog
