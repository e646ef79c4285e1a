package domain

import "errors"

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrPerformerNotFound = errors.New("performer not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrCategoryNotFound  = errors.New("category not found")
)

var (
	ErrInvalidTransition      = errors.New("booking status does not allow this transition")
	ErrPerformerProfileExists = errors.New("performer profile already exists for this user")
	ErrPerformerUnavailable   = errors.New("performer is not available for booking")
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

var (
	ErrValidation = errors.New("validation error")
)
