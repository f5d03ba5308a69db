package span

import "errors"

// Errors returned when an identifier is not in its catalog. They are
// wrapped with the offending identifier; use [errors.Is] to match.
var (
	ErrInvalidUnit   = errors.New("invalid unit")
	ErrInvalidHint   = errors.New("invalid hint")
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidSyntax = errors.New("invalid span syntax")
)
