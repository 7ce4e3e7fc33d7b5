package domain

import "errors"

// Sentinel errors surfaced by the repository layer. Services translate them
// into the HTTP error taxonomy; they never cross the handler boundary raw.
var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAlreadyRegistered    = errors.New("email already registered for this activity")
	ErrActivityFull         = errors.New("activity registration is full")
)
