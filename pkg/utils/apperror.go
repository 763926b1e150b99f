package utils

import "errors"

// Sentinel errors for the service layer. Handlers map these to HTTP
// statuses with errors.Is; anything unrecognized is reported as a
// generic storage failure without leaking internals.
var (
	ErrValidation     = errors.New("validation failed")
	ErrFlightNotFound = errors.New("flight not found")
	ErrSoldOut        = errors.New("flight full")
	ErrStorage        = errors.New("storage unavailable")
)
