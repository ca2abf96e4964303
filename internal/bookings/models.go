package bookings

import (
	"time"

	"cinegold/internal/seatmap"

	"github.com/google/uuid"
)

// Booking is one seat reservation against a showtime.
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ShowtimeID uuid.UUID `gorm:"type:uuid;index;not null" json:"showtime_id"`
	NumTickets int       `gorm:"not null" json:"num_tickets"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	Status     Status    `gorm:"type:varchar(20);check:status IN ('PENDING', 'CONFIRMED', 'FAILED');default:'PENDING'" json:"status"`
	BookingRef string    `gorm:"unique;not null" json:"booking_ref"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Seats   []BookingSeat `json:"seats,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
	Payment *Payment      `json:"payment,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// SeatLabels flattens the booking's seat rows into labels.
func (b *Booking) SeatLabels() []string {
	labels := make([]string, 0, len(b.Seats))
	for _, s := range b.Seats {
		labels = append(labels, s.SeatLabel)
	}
	return labels
}

// BookingSeat holds one claimed seat. The unique index on
// (showtime_id, seat_label) is the database-level backstop for seat
// exclusivity; it is created in the constraints migration.
type BookingSeat struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID  uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	ShowtimeID uuid.UUID `gorm:"type:uuid;not null" json:"showtime_id"`
	SeatLabel  string    `gorm:"type:varchar(4);not null" json:"seat_label"`
	CreatedAt  time.Time `json:"created_at"`
}

func (BookingSeat) TableName() string {
	return "booking_seats"
}

// Payment tracks the charge attached to a booking.
type Payment struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"booking_id"`
	Amount        float64    `gorm:"not null" json:"amount"`
	Currency      string     `gorm:"type:varchar(3);default:'INR'" json:"currency"`
	Status        string     `gorm:"type:varchar(20);check:status IN ('PENDING', 'COMPLETED', 'FAILED');default:'PENDING'" json:"status"`
	PaymentMethod string     `gorm:"type:varchar(20)" json:"payment_method"`
	TransactionID string     `json:"transaction_id,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// CreateBookingRequest is the seat selection submitted by the client.
type CreateBookingRequest struct {
	ShowtimeID string   `json:"showtime_id" validate:"required,uuid"`
	Seats      []string `json:"seats" validate:"required"`
}

// PayBookingRequest settles a pending booking.
type PayBookingRequest struct {
	Method string `json:"method" validate:"required,oneof=debit credit upi"`
}

// SeatMapResponse is the per-showtime seat picture the seat-selection page
// renders: the grid plus aggregate counts and the advisory hot set.
type SeatMapResponse struct {
	ShowtimeID string                 `json:"showtime_id"`
	Grid       [][]seatmap.SeatState  `json:"grid"`
	HotSeats   []string               `json:"hot_seats"`
	Booked     int                    `json:"booked"`
	Available  int                    `json:"available"`
	Legend     map[string]string      `json:"legend"`
}

// TicketResponse is the confirmed-booking view used by the ticket page.
type TicketResponse struct {
	BookingID  string    `json:"booking_id"`
	BookingRef string    `json:"booking_ref"`
	MovieTitle string    `json:"movie_title"`
	Theater    string    `json:"theater"`
	Screen     string    `json:"screen"`
	ShowDate   string    `json:"show_date"`
	ShowTime   string    `json:"show_time"`
	Seats      []string  `json:"seats"`
	TotalPrice float64   `json:"total_price"`
	BookedAt   time.Time `json:"booked_at"`
}
