package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinegold/internal/showtimes"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Reads
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	GetBookedSeats(ctx context.Context, showtimeID uuid.UUID) ([]string, error)

	// Reserve atomically claims the booking's seats. On overlap with an
	// existing claim it returns ErrSeatConflict and writes nothing.
	Reserve(ctx context.Context, booking *Booking) error

	// UpdateStatus moves a booking to a terminal state. Moving to FAILED
	// releases the claimed seats in the same transaction.
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, transactionID string) (*Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Preload("Payment").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, storeErr("get booking", err)
	}
	return &booking, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, storeErr("list bookings", err)
	}
	return bookings, nil
}

// GetBookedSeats returns the seat labels currently held for a showtime.
// PENDING bookings hold their seats too, so a pending claim blocks rivals
// until it settles one way or the other.
func (r *repository) GetBookedSeats(ctx context.Context, showtimeID uuid.UUID) ([]string, error) {
	var labels []string
	err := r.db.WithContext(ctx).
		Table("booking_seats").
		Joins("JOIN bookings ON bookings.id = booking_seats.booking_id").
		Where("booking_seats.showtime_id = ? AND bookings.status <> ?", showtimeID, StatusFailed).
		Pluck("booking_seats.seat_label", &labels).Error
	if err != nil {
		return nil, storeErr("get booked seats", err)
	}
	return labels, nil
}

func (r *repository) Reserve(ctx context.Context, booking *Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the showtime row so concurrent reservations for the same
		// showtime serialize here.
		var showtime showtimes.Showtime
		err := tx.
			Set("gorm:query_option", "FOR UPDATE").
			Where("id = ?", booking.ShowtimeID).
			First(&showtime).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return showtimes.ErrShowtimeNotFound
			}
			return fmt.Errorf("failed to lock showtime: %w", err)
		}

		held, err := lockedSeatLabels(tx, booking.ShowtimeID)
		if err != nil {
			return fmt.Errorf("failed to load held seats: %w", err)
		}

		heldSet := make(map[string]bool, len(held))
		for _, label := range held {
			heldSet[label] = true
		}
		for _, seat := range booking.Seats {
			if heldSet[seat.SeatLabel] {
				return fmt.Errorf("%w: %s", ErrSeatConflict, seat.SeatLabel)
			}
		}

		if err := tx.Create(booking).Error; err != nil {
			// The unique index on (showtime_id, seat_label) is the backstop
			// in case something slipped past the row lock.
			if isUniqueViolation(err) {
				return ErrSeatConflict
			}
			return fmt.Errorf("failed to create booking: %w", err)
		}

		err = tx.Model(&showtimes.Showtime{}).
			Where("id = ?", booking.ShowtimeID).
			Update("available_seats", gorm.Expr("available_seats - ?", booking.NumTickets)).Error
		if err != nil {
			return fmt.Errorf("failed to update available seats: %w", err)
		}

		return nil
	})

	if err == nil {
		return nil
	}
	if errors.Is(err, ErrSeatConflict) || errors.Is(err, showtimes.ErrShowtimeNotFound) {
		return err
	}
	return storeErr("reserve", err)
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, transactionID string) (*Booking, error) {
	var updated *Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking Booking
		err := tx.
			Preload("Seats").
			Preload("Payment").
			Set("gorm:query_option", "FOR UPDATE").
			Where("id = ?", id).
			First(&booking).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if !booking.Status.CanTransitionTo(status) {
			return ErrAlreadyTerminal
		}

		if status == StatusConfirmed {
			// Re-verify the booking still exclusively holds its seats before
			// sealing it. The unique index makes theft impossible, so a
			// mismatch here means the rows were tampered with out of band.
			var heldCount int64
			err := tx.Model(&BookingSeat{}).
				Where("booking_id = ?", id).
				Count(&heldCount).Error
			if err != nil {
				return fmt.Errorf("failed to verify seat ownership: %w", err)
			}
			if int(heldCount) != booking.NumTickets {
				return fmt.Errorf("%w: seat ownership lost before confirmation", ErrSeatConflict)
			}
		}

		now := time.Now().UTC()
		booking.Status = status
		booking.UpdatedAt = now

		err = tx.Model(&Booking{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"status": status, "updated_at": now}).Error
		if err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		paymentStatus := "COMPLETED"
		if status == StatusFailed {
			paymentStatus = "FAILED"

			// Release the seats so the showtime sells them again.
			err = tx.Where("booking_id = ?", id).Delete(&BookingSeat{}).Error
			if err != nil {
				return fmt.Errorf("failed to release seats: %w", err)
			}
			booking.Seats = nil

			err = tx.Model(&showtimes.Showtime{}).
				Where("id = ?", booking.ShowtimeID).
				Update("available_seats", gorm.Expr("available_seats + ?", booking.NumTickets)).Error
			if err != nil {
				return fmt.Errorf("failed to restore available seats: %w", err)
			}
		}

		paymentUpdates := map[string]interface{}{
			"status":       paymentStatus,
			"processed_at": now,
			"updated_at":   now,
		}
		if transactionID != "" {
			paymentUpdates["transaction_id"] = transactionID
		}
		err = tx.Model(&Payment{}).
			Where("booking_id = ?", id).
			Updates(paymentUpdates).Error
		if err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}

		if booking.Payment != nil {
			booking.Payment.Status = paymentStatus
			booking.Payment.ProcessedAt = &now
			if transactionID != "" {
				booking.Payment.TransactionID = transactionID
			}
		}

		updated = &booking
		return nil
	})

	if err == nil {
		return updated, nil
	}
	if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrAlreadyTerminal) || errors.Is(err, ErrSeatConflict) {
		return nil, err
	}
	return nil, storeErr("update status", err)
}

// lockedSeatLabels reads held seat labels inside an open transaction.
func lockedSeatLabels(tx *gorm.DB, showtimeID uuid.UUID) ([]string, error) {
	var labels []string
	err := tx.
		Table("booking_seats").
		Joins("JOIN bookings ON bookings.id = booking_seats.booking_id").
		Where("booking_seats.showtime_id = ? AND bookings.status <> ?", showtimeID, StatusFailed).
		Pluck("booking_seats.seat_label", &labels).Error
	return labels, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}

// storeErr classifies unexpected database failures as store unavailability
// so the service layer can apply its bounded retry.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
