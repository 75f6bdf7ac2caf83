package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("item %w", ErrNotFound)
	ErrRentalNotFound  = fmt.Errorf("rental %w", ErrNotFound)
	ErrPaymentNotFound = fmt.Errorf("payment %w", ErrNotFound)
)

var (
	ErrInvalidDateRange    = errors.New("end date must be after start date")
	ErrDateInPast          = errors.New("start date cannot be in the past")
	ErrSelfRentalForbidden = errors.New("cannot rent your own item")
	ErrItemUnavailable     = errors.New("item is not available")
	ErrDateRangeConflict   = errors.New("item is already booked for these dates")
)

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidRentalState   = errors.New("rental is not in a state that allows this operation")
	ErrPaymentAlreadyExists = errors.New("payment already exists for this rental")
)

var (
	ErrUsernameTaken = errors.New("username or email is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
