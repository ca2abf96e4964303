package notifications

import "time"

// Booking lifecycle event types.
const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingFailed    = "booking.failed"
)

// BookingEvent is the message published for every booking state change.
// Downstream consumers use it to send confirmation emails and tickets.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	ShowtimeID string    `json:"showtime_id"`
	UserID     string    `json:"user_id"`
	Seats      []string  `json:"seats"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
