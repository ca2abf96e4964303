package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the database constraints the booking flow relies on.
// The unique index on (showtime_id, seat_label) is the authoritative guard
// against two bookings holding the same seat: even if the transactional
// overlap check were bypassed, the insert itself would fail.
func MigrateConstraints(db *gorm.DB) error {
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_per_showtime
		ON booking_seats (showtime_id, seat_label);
	`).Error
	if err != nil {
		return err
	}

	// Booking lookups by showtime during availability reads
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_seats_showtime
		ON booking_seats (showtime_id);
	`).Error
	if err != nil {
		return err
	}

	// User booking history, newest first
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_created
		ON bookings (user_id, created_at DESC);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
