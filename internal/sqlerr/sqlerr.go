// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the driver into a small Code enum, marks
// missing rows with ErrNotFound, and converts anything that reaches the
// HTTP layer unclassified into an *errs.HTTPError.
package sqlerr
