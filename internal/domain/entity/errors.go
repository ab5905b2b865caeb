package entity

import "errors"

var (
	// ErrInvalidState is returned when a transition contradicts an immutable attribute.
	ErrInvalidState = errors.New("invalid state")
	// ErrIllegalArgument is returned when required construction fields are missing.
	ErrIllegalArgument = errors.New("illegal argument")
)
