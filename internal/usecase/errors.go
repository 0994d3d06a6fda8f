package usecase

import "errors"

// Domain errors. Handlers map these onto HTTP statuses with errors.Is;
// anything else is treated as an infrastructure failure.
var (
	// ErrValidation covers malformed input: bad dates, zero guest count,
	// out-of-range percentages.
	ErrValidation = errors.New("validation error")

	// ErrConflict covers room unavailability, overlapping reservations and
	// double checkout.
	ErrConflict = errors.New("conflict")

	// ErrState covers operations invalid for the entity's current status,
	// such as confirming an already-confirmed booking.
	ErrState = errors.New("invalid state")

	// ErrCapacity is the hard guest ceiling: more than 150% of the rooms'
	// combined capacity is rejected outright, not surcharged.
	ErrCapacity = errors.New("guest count exceeds capacity")

	// ErrNotFound covers unknown booking, room, rental or discount ids.
	ErrNotFound = errors.New("not found")

	// ErrForbidden covers access to another customer's records.
	ErrForbidden = errors.New("forbidden")
)
