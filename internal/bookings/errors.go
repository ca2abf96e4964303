package bookings

import (
	"errors"

	"cinegold/internal/payments"
)

var (
	// ErrInvalidSeat means a seat label doesn't exist in the layout.
	ErrInvalidSeat = errors.New("invalid seat")
	// ErrEmptySelection means the request named no seats at all.
	ErrEmptySelection = errors.New("no seats selected")
	// ErrSeatConflict means at least one requested seat is already taken.
	ErrSeatConflict = errors.New("seat already booked")
	// ErrBookingNotFound means no booking exists with the given ID.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNotOwner means the caller is not the booking's owner.
	ErrNotOwner = errors.New("booking belongs to another user")
	// ErrAlreadyTerminal means the booking already reached a final state.
	ErrAlreadyTerminal = errors.New("booking already settled")
	// ErrStoreUnavailable means the datastore could not be reached. It is
	// the only error the service retries.
	ErrStoreUnavailable = errors.New("booking store unavailable")

	// ErrPaymentDeclined is re-exported so callers can match declines
	// without importing the payments package.
	ErrPaymentDeclined = payments.ErrPaymentDeclined
)
