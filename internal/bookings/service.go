package bookings

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"cinegold/internal/notifications"
	"cinegold/internal/payments"
	"cinegold/internal/pricing"
	"cinegold/internal/seatmap"
	"cinegold/internal/showtimes"
	"cinegold/internal/theaters"
	"cinegold/pkg/logger"

	"github.com/google/uuid"
)

const (
	// storeRetryAttempts bounds how often a store-unavailable failure is
	// retried before giving up. Conflicts and validation errors never retry.
	storeRetryAttempts = 3
	storeRetryBackoff  = 50 * time.Millisecond
)

type Service interface {
	RequestBooking(ctx context.Context, userID string, req CreateBookingRequest) (*Booking, error)
	ConfirmPayment(ctx context.Context, userID, bookingID string, req PayBookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, userID, bookingID string) (*Booking, error)
	ListBookings(ctx context.Context, userID string) ([]Booking, error)
	GetSeatMap(ctx context.Context, showtimeID string) (*SeatMapResponse, error)
	GetTicket(ctx context.Context, userID, bookingID string) (*TicketResponse, error)
}

type service struct {
	repo         Repository
	showtimeRepo showtimes.Repository
	theaterRepo  theaters.Repository
	gateway      payments.Gateway
	producer     notifications.Producer
	logger       *logger.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewService(
	repo Repository,
	showtimeRepo showtimes.Repository,
	theaterRepo theaters.Repository,
	gateway payments.Gateway,
	producer notifications.Producer,
) Service {
	return &service{
		repo:         repo,
		showtimeRepo: showtimeRepo,
		theaterRepo:  theaterRepo,
		gateway:      gateway,
		producer:     producer,
		logger:       logger.GetDefault(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *service) RequestBooking(ctx context.Context, userID string, req CreateBookingRequest) (*Booking, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}

	if len(req.Seats) == 0 {
		return nil, ErrEmptySelection
	}
	if err := seatmap.ValidateLabels(req.Seats); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeat, err)
	}

	showtime, err := s.showtimeRepo.GetByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	total, err := pricing.Total(showtime.Price, len(req.Seats))
	if err != nil {
		return nil, err
	}

	bookingID := uuid.New()
	booking := &Booking{
		ID:         bookingID,
		UserID:     uid,
		ShowtimeID: showtimeID,
		NumTickets: len(req.Seats),
		TotalPrice: total,
		Status:     StatusPending,
		BookingRef: newBookingRef(),
		Seats:      make([]BookingSeat, 0, len(req.Seats)),
		Payment: &Payment{
			ID:        uuid.New(),
			BookingID: bookingID,
			Amount:    total,
			Status:    "PENDING",
		},
	}
	for _, label := range req.Seats {
		booking.Seats = append(booking.Seats, BookingSeat{
			ID:         uuid.New(),
			BookingID:  bookingID,
			ShowtimeID: showtimeID,
			SeatLabel:  label,
		})
	}

	err = s.withStoreRetry(ctx, func() error {
		return s.repo.Reserve(ctx, booking)
	})
	if err != nil {
		if errors.Is(err, ErrSeatConflict) {
			s.logger.LogSeatConflict(ctx, req.ShowtimeID, userID, req.Seats)
		}
		return nil, err
	}

	s.logger.LogBookingCreated(ctx, booking.ID.String(), req.ShowtimeID, userID, req.Seats)
	s.publish(ctx, notifications.EventBookingCreated, booking)

	return booking, nil
}

func (s *service) ConfirmPayment(ctx context.Context, userID, bookingID string, req PayBookingRequest) (*Booking, error) {
	booking, err := s.authorizedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status.IsTerminal() {
		return nil, ErrAlreadyTerminal
	}

	result, err := s.gateway.Settle(ctx, payments.SettleRequest{
		BookingID: booking.ID.String(),
		UserID:    userID,
		Method:    req.Method,
		Amount:    booking.TotalPrice,
	})
	if err != nil {
		if errors.Is(err, payments.ErrPaymentDeclined) {
			s.logger.LogPaymentDeclined(ctx, bookingID, req.Method, booking.TotalPrice)

			failed, failErr := s.transition(ctx, booking.ID, StatusFailed, "")
			if failErr != nil {
				return nil, fmt.Errorf("payment declined and booking could not be failed: %w", failErr)
			}
			s.logger.LogBookingFailed(ctx, bookingID, "payment declined")
			s.publish(ctx, notifications.EventBookingFailed, failed)
			return nil, ErrPaymentDeclined
		}
		return nil, err
	}

	confirmed, err := s.transition(ctx, booking.ID, StatusConfirmed, result.TransactionID)
	if err != nil {
		return nil, err
	}

	s.logger.LogBookingConfirmed(ctx, bookingID, result.TransactionID, result.Amount)
	s.publish(ctx, notifications.EventBookingConfirmed, confirmed)

	return confirmed, nil
}

func (s *service) GetBooking(ctx context.Context, userID, bookingID string) (*Booking, error) {
	return s.authorizedBooking(ctx, userID, bookingID)
}

func (s *service) ListBookings(ctx context.Context, userID string) ([]Booking, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	var bookings []Booking
	err = s.withStoreRetry(ctx, func() error {
		var e error
		bookings, e = s.repo.GetUserBookings(ctx, uid)
		return e
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *service) GetSeatMap(ctx context.Context, showtimeID string) (*SeatMapResponse, error) {
	stID, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}

	if _, err := s.showtimeRepo.GetByID(ctx, stID); err != nil {
		return nil, err
	}

	var booked []string
	err = s.withStoreRetry(ctx, func() error {
		var e error
		booked, e = s.repo.GetBookedSeats(ctx, stID)
		return e
	})
	if err != nil {
		return nil, err
	}

	grid := seatmap.Availability(booked)

	s.rngMu.Lock()
	hot := seatmap.HotSeats(booked, s.rng)
	s.rngMu.Unlock()
	seatmap.MarkHot(grid, hot)

	return &SeatMapResponse{
		ShowtimeID: showtimeID,
		Grid:       grid,
		HotSeats:   hot,
		Booked:     len(booked),
		Available:  seatmap.TotalSeats - len(booked),
		Legend: map[string]string{
			"booked": "already taken",
			"hot":    "filling fast",
		},
	}, nil
}

func (s *service) GetTicket(ctx context.Context, userID, bookingID string) (*TicketResponse, error) {
	booking, err := s.authorizedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != StatusConfirmed {
		return nil, fmt.Errorf("%w: ticket available only for confirmed bookings", ErrBookingNotFound)
	}

	showtime, err := s.showtimeRepo.GetByID(ctx, booking.ShowtimeID)
	if err != nil {
		return nil, err
	}
	theater, err := s.theaterRepo.GetByID(ctx, showtime.TheaterID)
	if err != nil {
		return nil, err
	}

	return &TicketResponse{
		BookingID:  booking.ID.String(),
		BookingRef: booking.BookingRef,
		MovieTitle: showtime.MovieTitle,
		Theater:    theater.Name,
		Screen:     showtime.ScreenName,
		ShowDate:   showtime.ShowDate,
		ShowTime:   showtime.ShowTime,
		Seats:      booking.SeatLabels(),
		TotalPrice: booking.TotalPrice,
		BookedAt:   booking.CreatedAt,
	}, nil
}

func (s *service) authorizedBooking(ctx context.Context, userID, bookingID string) (*Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}

	var booking *Booking
	err = s.withStoreRetry(ctx, func() error {
		var e error
		booking, e = s.repo.GetBookingByID(ctx, id)
		return e
	})
	if err != nil {
		return nil, err
	}

	if booking.UserID.String() != userID {
		return nil, ErrNotOwner
	}
	return booking, nil
}

func (s *service) transition(ctx context.Context, id uuid.UUID, status Status, transactionID string) (*Booking, error) {
	var booking *Booking
	err := s.withStoreRetry(ctx, func() error {
		var e error
		booking, e = s.repo.UpdateStatus(ctx, id, status, transactionID)
		return e
	})
	return booking, err
}

// withStoreRetry reruns fn while it keeps failing with ErrStoreUnavailable,
// up to the attempt bound. Every other error returns immediately.
func (s *service) withStoreRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= storeRetryAttempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, ErrStoreUnavailable) {
			return err
		}
		if attempt == storeRetryAttempts {
			break
		}

		s.logger.Warn("booking store unavailable, retrying",
			"attempt", attempt, "error", err)
		select {
		case <-time.After(storeRetryBackoff * time.Duration(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (s *service) publish(ctx context.Context, eventType string, booking *Booking) {
	if s.producer == nil {
		return
	}
	event := notifications.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID.String(),
		ShowtimeID: booking.ShowtimeID.String(),
		UserID:     booking.UserID.String(),
		Seats:      booking.SeatLabels(),
		Amount:     booking.TotalPrice,
		Status:     string(booking.Status),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.PublishBookingEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish booking event",
			"type", eventType, "booking_id", event.BookingID, "error", err)
	}
}

func newBookingRef() string {
	return "CG-" + strings.ToUpper(uuid.New().String()[:8])
}
