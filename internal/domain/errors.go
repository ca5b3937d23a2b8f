package domain

import "errors"

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateCPF       = errors.New("cpf already registered")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidField       = errors.New("missing or invalid field")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrPendingExists      = errors.New("a request of this kind is already pending")
	ErrNothingPending     = errors.New("nothing pending to resolve")
	ErrNotClient          = errors.New("operation applies to client accounts only")
	ErrNotFound           = errors.New("account not found")
)
