// Package errs provides the typed errors shared by the order desk packages.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) returned by Unwrap,
//     so callers branch with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//
// Business outcomes of a conversation turn (unknown intent, out of stock,
// no driver) are not errors and never use this package.
package errs
