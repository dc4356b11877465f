package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrRateMissing indicates a missing rate-table entry. Rate tables are
// configuration data, so a miss is a deployment problem, not user error.
var ErrRateMissing = errors.New("rate entry missing")
