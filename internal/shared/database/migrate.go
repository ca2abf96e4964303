package database

import (
	"cinegold/internal/bookings"
	"cinegold/internal/showtimes"
	"cinegold/internal/theaters"
	"cinegold/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&theaters.Theater{},
		&showtimes.Showtime{},
		&bookings.Booking{},
		&bookings.BookingSeat{},
		&bookings.Payment{},
	)
}
