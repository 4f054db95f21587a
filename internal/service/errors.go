package service

import "errors"

// Domain errors shared across services. Handlers map these onto the
// response error codes.
var (
	ErrNotFound       = errors.New("record not found")
	ErrUnknownTerm    = errors.New("unknown term")
	ErrNegativeAmount = errors.New("payment amount must not be negative")
	ErrNoProfile      = errors.New("account has no profile for its role")
)
