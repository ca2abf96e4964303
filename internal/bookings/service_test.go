package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cinegold/internal/payments"
	"cinegold/internal/seatmap"
	"cinegold/internal/showtimes"
	"cinegold/internal/theaters"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository with the same exclusivity semantics
// as the Postgres implementation.
type fakeRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*Booking

	// failuresLeft makes the next N calls fail with ErrStoreUnavailable.
	failuresLeft int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[uuid.UUID]*Booking)}
}

func (r *fakeRepo) failNext(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failuresLeft = n
}

func (r *fakeRepo) takeFailure() bool {
	if r.failuresLeft > 0 {
		r.failuresLeft--
		return true
	}
	return false
}

func (r *fakeRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.takeFailure() {
		return nil, ErrStoreUnavailable
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.takeFailure() {
		return nil, ErrStoreUnavailable
	}
	var out []Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetBookedSeats(ctx context.Context, showtimeID uuid.UUID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.takeFailure() {
		return nil, ErrStoreUnavailable
	}
	return r.heldSeatsLocked(showtimeID), nil
}

func (r *fakeRepo) heldSeatsLocked(showtimeID uuid.UUID) []string {
	var held []string
	for _, b := range r.bookings {
		if b.ShowtimeID != showtimeID || b.Status == StatusFailed {
			continue
		}
		for _, s := range b.Seats {
			held = append(held, s.SeatLabel)
		}
	}
	return held
}

func (r *fakeRepo) Reserve(ctx context.Context, booking *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.takeFailure() {
		return ErrStoreUnavailable
	}

	heldSet := make(map[string]bool)
	for _, label := range r.heldSeatsLocked(booking.ShowtimeID) {
		heldSet[label] = true
	}
	for _, s := range booking.Seats {
		if heldSet[s.SeatLabel] {
			return ErrSeatConflict
		}
	}

	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, transactionID string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.takeFailure() {
		return nil, ErrStoreUnavailable
	}

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if !b.Status.CanTransitionTo(status) {
		return nil, ErrAlreadyTerminal
	}

	b.Status = status
	if status == StatusFailed {
		b.Seats = nil
	}
	if b.Payment != nil && transactionID != "" {
		b.Payment.TransactionID = transactionID
	}

	cp := *b
	return &cp, nil
}

type fakeShowtimeRepo struct {
	showtimes map[uuid.UUID]*showtimes.Showtime
}

func (r *fakeShowtimeRepo) Create(ctx context.Context, st *showtimes.Showtime) error { return nil }
func (r *fakeShowtimeRepo) Update(ctx context.Context, st *showtimes.Showtime) error { return nil }
func (r *fakeShowtimeRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (r *fakeShowtimeRepo) GetByID(ctx context.Context, id uuid.UUID) (*showtimes.Showtime, error) {
	st, ok := r.showtimes[id]
	if !ok {
		return nil, showtimes.ErrShowtimeNotFound
	}
	return st, nil
}
func (r *fakeShowtimeRepo) GetByMovie(ctx context.Context, movieID int, showDate string) ([]showtimes.Showtime, error) {
	return nil, nil
}
func (r *fakeShowtimeRepo) GetByTheater(ctx context.Context, theaterID uuid.UUID) ([]showtimes.Showtime, error) {
	return nil, nil
}

type fakeTheaterRepo struct {
	theater *theaters.Theater
}

func (r *fakeTheaterRepo) Create(ctx context.Context, t *theaters.Theater) error { return nil }
func (r *fakeTheaterRepo) Update(ctx context.Context, t *theaters.Theater) error { return nil }
func (r *fakeTheaterRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (r *fakeTheaterRepo) GetAll(ctx context.Context) ([]theaters.Theater, error) {
	return nil, nil
}
func (r *fakeTheaterRepo) GetByLocation(ctx context.Context, location string) ([]theaters.Theater, error) {
	return nil, nil
}
func (r *fakeTheaterRepo) GetByID(ctx context.Context, id uuid.UUID) (*theaters.Theater, error) {
	if r.theater == nil {
		return nil, theaters.ErrTheaterNotFound
	}
	return r.theater, nil
}

type fixture struct {
	service    Service
	repo       *fakeRepo
	stRepo     *fakeShowtimeRepo
	showtimeID uuid.UUID
	userID     uuid.UUID
}

func newFixture(t *testing.T, decline payments.DeclineFunc) *fixture {
	t.Helper()

	showtimeID := uuid.New()
	theaterID := uuid.New()
	repo := newFakeRepo()

	stRepo := &fakeShowtimeRepo{showtimes: map[uuid.UUID]*showtimes.Showtime{
		showtimeID: {
			ID:             showtimeID,
			MovieID:        1,
			MovieTitle:     "Avengers: Endgame",
			TheaterID:      theaterID,
			ScreenName:     "Screen 1",
			ShowDate:       "2026-09-01",
			ShowTime:       "18:30",
			Price:          250,
			AvailableSeats: showtimes.TotalSeats,
		},
	}}
	thRepo := &fakeTheaterRepo{theater: &theaters.Theater{
		ID:   theaterID,
		Name: "Galaxy Cinemas",
	}}

	gateway := payments.NewSimulatedGateway(0, decline)
	svc := NewService(repo, stRepo, thRepo, gateway, nil)

	return &fixture{
		service:    svc,
		repo:       repo,
		stRepo:     stRepo,
		showtimeID: showtimeID,
		userID:     uuid.New(),
	}
}

func (f *fixture) book(t *testing.T, seats ...string) *Booking {
	t.Helper()
	booking, err := f.service.RequestBooking(context.Background(), f.userID.String(), CreateBookingRequest{
		ShowtimeID: f.showtimeID.String(),
		Seats:      seats,
	})
	require.NoError(t, err)
	return booking
}

func TestRequestBooking(t *testing.T) {
	f := newFixture(t, nil)

	booking := f.book(t, "A1", "A2", "A3")

	assert.Equal(t, StatusPending, booking.Status)
	assert.Equal(t, 3, booking.NumTickets)
	assert.Equal(t, 750.0, booking.TotalPrice)
	assert.ElementsMatch(t, []string{"A1", "A2", "A3"}, booking.SeatLabels())
	assert.NotEmpty(t, booking.BookingRef)
	require.NotNil(t, booking.Payment)
	assert.Equal(t, "PENDING", booking.Payment.Status)
}

func TestRequestBookingEmptySelection(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.service.RequestBooking(context.Background(), f.userID.String(), CreateBookingRequest{
		ShowtimeID: f.showtimeID.String(),
		Seats:      []string{},
	})
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestRequestBookingInvalidSeat(t *testing.T) {
	f := newFixture(t, nil)

	for _, seat := range []string{"K1", "A15", "A0", "xx"} {
		_, err := f.service.RequestBooking(context.Background(), f.userID.String(), CreateBookingRequest{
			ShowtimeID: f.showtimeID.String(),
			Seats:      []string{seat},
		})
		assert.ErrorIs(t, err, ErrInvalidSeat, "seat %q", seat)
	}
}

func TestRequestBookingUnknownShowtime(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.service.RequestBooking(context.Background(), f.userID.String(), CreateBookingRequest{
		ShowtimeID: uuid.New().String(),
		Seats:      []string{"A1"},
	})
	assert.ErrorIs(t, err, showtimes.ErrShowtimeNotFound)
}

func TestRequestBookingSeatConflict(t *testing.T) {
	f := newFixture(t, nil)

	f.book(t, "B5", "B6")

	_, err := f.service.RequestBooking(context.Background(), uuid.New().String(), CreateBookingRequest{
		ShowtimeID: f.showtimeID.String(),
		Seats:      []string{"B6", "B7"},
	})
	assert.ErrorIs(t, err, ErrSeatConflict)

	// A failed reservation writes nothing.
	held, err := f.repo.GetBookedSeats(context.Background(), f.showtimeID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B5", "B6"}, held)

	// Non-overlapping seats still book fine.
	_, err = f.service.RequestBooking(context.Background(), uuid.New().String(), CreateBookingRequest{
		ShowtimeID: f.showtimeID.String(),
		Seats:      []string{"B7"},
	})
	assert.NoError(t, err)
}

func TestRequestBookingConcurrentRace(t *testing.T) {
	f := newFixture(t, nil)

	const racers = 20
	var wg sync.WaitGroup
	results := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.RequestBooking(context.Background(), uuid.New().String(), CreateBookingRequest{
				ShowtimeID: f.showtimeID.String(),
				Seats:      []string{"E7", "E8"},
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSeatConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins, "exactly one racer must win the seats")
	assert.Equal(t, racers-1, conflicts)

	held, err := f.repo.GetBookedSeats(context.Background(), f.showtimeID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"E7", "E8"}, held, "final booked set is exactly the winner's")
}

func TestConfirmPayment(t *testing.T) {
	f := newFixture(t, nil)
	booking := f.book(t, "C1", "C2")

	confirmed, err := f.service.ConfirmPayment(context.Background(), f.userID.String(), booking.ID.String(), PayBookingRequest{Method: payments.MethodUPI})
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, confirmed.Status)
	assert.True(t, confirmed.Status.IsTerminal())
	require.NotNil(t, confirmed.Payment)
	assert.NotEmpty(t, confirmed.Payment.TransactionID)
}

func TestConfirmPaymentDeclinedReleasesSeats(t *testing.T) {
	f := newFixture(t, func(req payments.SettleRequest) bool { return true })
	booking := f.book(t, "D1")

	_, err := f.service.ConfirmPayment(context.Background(), f.userID.String(), booking.ID.String(), PayBookingRequest{Method: payments.MethodCredit})
	assert.ErrorIs(t, err, ErrPaymentDeclined)

	failed, err := f.service.GetBooking(context.Background(), f.userID.String(), booking.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, failed.Status)

	// The seat is back on the market.
	held, err := f.repo.GetBookedSeats(context.Background(), f.showtimeID)
	require.NoError(t, err)
	assert.NotContains(t, held, "D1")

	_, err = f.service.RequestBooking(context.Background(), uuid.New().String(), CreateBookingRequest{
		ShowtimeID: f.showtimeID.String(),
		Seats:      []string{"D1"},
	})
	assert.NoError(t, err)
}

func TestConfirmPaymentTerminalBookingRejected(t *testing.T) {
	f := newFixture(t, nil)
	booking := f.book(t, "F1")

	_, err := f.service.ConfirmPayment(context.Background(), f.userID.String(), booking.ID.String(), PayBookingRequest{Method: payments.MethodDebit})
	require.NoError(t, err)

	_, err = f.service.ConfirmPayment(context.Background(), f.userID.String(), booking.ID.String(), PayBookingRequest{Method: payments.MethodDebit})
	assert.ErrorIs(t, err, ErrAlreadyTerminal)
}

func TestBookingOwnership(t *testing.T) {
	f := newFixture(t, nil)
	booking := f.book(t, "G1")

	stranger := uuid.New().String()
	_, err := f.service.GetBooking(context.Background(), stranger, booking.ID.String())
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = f.service.ConfirmPayment(context.Background(), stranger, booking.ID.String(), PayBookingRequest{Method: payments.MethodUPI})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestStoreRetrySucceedsWithinBound(t *testing.T) {
	f := newFixture(t, nil)

	// Two transient failures; the third attempt lands.
	f.repo.failNext(2)
	booking := f.book(t, "H1")
	assert.Equal(t, StatusPending, booking.Status)
}

func TestStoreRetryGivesUp(t *testing.T) {
	f := newFixture(t, nil)

	f.repo.failNext(10)
	_, err := f.service.RequestBooking(context.Background(), f.userID.String(), CreateBookingRequest{
		ShowtimeID: f.showtimeID.String(),
		Seats:      []string{"H2"},
	})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	// Only the bounded attempts were consumed.
	f.repo.mu.Lock()
	remaining := f.repo.failuresLeft
	f.repo.mu.Unlock()
	assert.Equal(t, 7, remaining)
}

func TestSeatConflictIsNotRetried(t *testing.T) {
	f := newFixture(t, nil)
	f.book(t, "J1")

	calls := 0
	wrapped := &countingRepo{fakeRepo: f.repo, calls: &calls}
	svc := NewService(wrapped, f.stRepo, &fakeTheaterRepo{}, payments.NewSimulatedGateway(0, nil), nil)

	_, err := svc.RequestBooking(context.Background(), uuid.New().String(), CreateBookingRequest{
		ShowtimeID: f.showtimeID.String(),
		Seats:      []string{"J1"},
	})
	assert.ErrorIs(t, err, ErrSeatConflict)
	assert.Equal(t, 1, calls, "conflicts must not be retried")
}

func TestGetSeatMap(t *testing.T) {
	f := newFixture(t, nil)
	f.book(t, "A1", "A2")

	seatMap, err := f.service.GetSeatMap(context.Background(), f.showtimeID.String())
	require.NoError(t, err)

	assert.Equal(t, 2, seatMap.Booked)
	assert.Equal(t, seatmap.TotalSeats-2, seatMap.Available)
	require.Len(t, seatMap.Grid, 10)

	assert.True(t, seatMap.Grid[0][0].Booked)
	assert.True(t, seatMap.Grid[0][1].Booked)
	assert.False(t, seatMap.Grid[0][2].Booked)

	available := seatmap.TotalSeats - 2
	assert.GreaterOrEqual(t, len(seatMap.HotSeats), int(float64(available)*0.15))
	assert.LessOrEqual(t, len(seatMap.HotSeats), int(float64(available)*0.25))
	for _, label := range seatMap.HotSeats {
		assert.NotContains(t, []string{"A1", "A2"}, label, "booked seats are never hot")
	}
}

func TestGetTicket(t *testing.T) {
	f := newFixture(t, nil)
	booking := f.book(t, "E5", "E6")

	// No ticket while pending.
	_, err := f.service.GetTicket(context.Background(), f.userID.String(), booking.ID.String())
	assert.Error(t, err)

	_, err = f.service.ConfirmPayment(context.Background(), f.userID.String(), booking.ID.String(), PayBookingRequest{Method: payments.MethodUPI})
	require.NoError(t, err)

	ticket, err := f.service.GetTicket(context.Background(), f.userID.String(), booking.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Avengers: Endgame", ticket.MovieTitle)
	assert.Equal(t, "Galaxy Cinemas", ticket.Theater)
	assert.ElementsMatch(t, []string{"E5", "E6"}, ticket.Seats)
	assert.Equal(t, 500.0, ticket.TotalPrice)
}

// countingRepo counts Reserve calls on top of the fake.
type countingRepo struct {
	*fakeRepo
	calls *int
}

func (r *countingRepo) Reserve(ctx context.Context, booking *Booking) error {
	*r.calls++
	return r.fakeRepo.Reserve(ctx, booking)
}
