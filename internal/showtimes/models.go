package showtimes

import (
	"time"

	"github.com/google/uuid"
)

// TotalSeats is the fixed auditorium capacity: 10 rows of 14 seats.
const TotalSeats = 140

type Showtime struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	MovieID        int       `json:"movie_id" gorm:"not null;index"`
	MovieTitle     string    `json:"movie_title" gorm:"not null"`
	TheaterID      uuid.UUID `json:"theater_id" gorm:"type:uuid;not null;index"`
	ScreenName     string    `json:"screen_name" gorm:"not null"`
	ShowDate       string    `json:"show_date" gorm:"not null"`
	ShowTime       string    `json:"show_time" gorm:"not null"`
	Price          float64   `json:"price" gorm:"not null"`
	AvailableSeats int       `json:"available_seats" gorm:"not null;default:140"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Showtime) TableName() string {
	return "showtimes"
}

type CreateShowtimeRequest struct {
	MovieID    int     `json:"movie_id" validate:"required,min=1"`
	TheaterID  string  `json:"theater_id" validate:"required,uuid"`
	ScreenName string  `json:"screen_name" validate:"required,min=1,max=60"`
	ShowDate   string  `json:"show_date" validate:"required,datetime=2006-01-02"`
	ShowTime   string  `json:"show_time" validate:"required"`
	Price      float64 `json:"price" validate:"required,gt=0"`
}

type UpdateShowtimeRequest struct {
	ScreenName *string  `json:"screen_name" validate:"omitempty,min=1,max=60"`
	ShowDate   *string  `json:"show_date" validate:"omitempty,datetime=2006-01-02"`
	ShowTime   *string  `json:"show_time" validate:"omitempty"`
	Price      *float64 `json:"price" validate:"omitempty,gt=0"`
}

// TheaterShowtimes groups a theater's showtimes for the listing response,
// mirroring how the booking page renders one card per theater.
type TheaterShowtimes struct {
	TheaterID   uuid.UUID  `json:"theater_id"`
	TheaterName string     `json:"theater_name"`
	Location    string     `json:"location"`
	Address     string     `json:"address"`
	Showtimes   []Showtime `json:"showtimes"`
}
