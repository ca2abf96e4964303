package showtimes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cinegold/internal/movies"
	"cinegold/internal/theaters"
	"cinegold/pkg/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID    map[uuid.UUID]*Showtime
	byMovie map[int][]Showtime
	created []*Showtime
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[uuid.UUID]*Showtime), byMovie: make(map[int][]Showtime)}
}

func (r *fakeRepo) add(st Showtime) {
	cp := st
	r.byID[st.ID] = &cp
	r.byMovie[st.MovieID] = append(r.byMovie[st.MovieID], st)
}

func (r *fakeRepo) Create(ctx context.Context, st *Showtime) error {
	r.created = append(r.created, st)
	r.add(*st)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	st, ok := r.byID[id]
	if !ok {
		return nil, ErrShowtimeNotFound
	}
	return st, nil
}

func (r *fakeRepo) GetByMovie(ctx context.Context, movieID int, showDate string) ([]Showtime, error) {
	var out []Showtime
	for _, st := range r.byMovie[movieID] {
		if showDate == "" || st.ShowDate == showDate {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByTheater(ctx context.Context, theaterID uuid.UUID) ([]Showtime, error) {
	return nil, nil
}

func (r *fakeRepo) Update(ctx context.Context, st *Showtime) error {
	r.byID[st.ID] = st
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeTheaterRepo struct {
	byID map[uuid.UUID]*theaters.Theater
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
	th, ok := r.byID[id]
	if !ok {
		return nil, theaters.ErrTheaterNotFound
	}
	return th, nil
}

// memCache is a map-backed cache.Service for tests.
type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := c.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memCache) DeletePattern(ctx context.Context, pattern string) error {
	// Tests only use full-prefix patterns ending in *.
	prefix := pattern[:len(pattern)-1]
	for key := range c.data {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.data, key)
		}
	}
	return nil
}

func (c *memCache) Exists(ctx context.Context, key string) bool {
	_, ok := c.data[key]
	return ok
}

func (c *memCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	}
	value, err := fetcher()
	if err != nil {
		return err
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	return c.Get(ctx, key, dest)
}

func (c *memCache) Ping(ctx context.Context) error { return nil }

func newTestService(t *testing.T) (Service, *fakeRepo, *fakeTheaterRepo, *memCache) {
	t.Helper()
	repo := newFakeRepo()
	thRepo := &fakeTheaterRepo{byID: make(map[uuid.UUID]*theaters.Theater)}
	memc := newMemCache()
	svc := NewService(repo, thRepo, movies.NewCatalog(), memc)
	return svc, repo, thRepo, memc
}

func TestCreateShowtime(t *testing.T) {
	svc, _, thRepo, _ := newTestService(t)

	theaterID := uuid.New()
	thRepo.byID[theaterID] = &theaters.Theater{ID: theaterID, Name: "Galaxy Cinemas"}

	st, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:    3,
		TheaterID:  theaterID.String(),
		ScreenName: "Screen 2",
		ShowDate:   "2026-09-05",
		ShowTime:   "20:30",
		Price:      220,
	})
	require.NoError(t, err)

	assert.Equal(t, "Spider-Man: No Way Home", st.MovieTitle)
	assert.Equal(t, TotalSeats, st.AvailableSeats)
}

func TestCreateShowtimeUnknownMovie(t *testing.T) {
	svc, _, thRepo, _ := newTestService(t)

	theaterID := uuid.New()
	thRepo.byID[theaterID] = &theaters.Theater{ID: theaterID}

	_, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:   42,
		TheaterID: theaterID.String(),
		ShowDate:  "2026-09-05",
		ShowTime:  "20:30",
		Price:     220,
	})
	assert.ErrorIs(t, err, ErrUnknownMovie)
}

func TestListByMovieGroupsByTheater(t *testing.T) {
	svc, repo, thRepo, _ := newTestService(t)

	t1, t2 := uuid.New(), uuid.New()
	thRepo.byID[t1] = &theaters.Theater{ID: t1, Name: "Galaxy Cinemas", Location: "Downtown"}
	thRepo.byID[t2] = &theaters.Theater{ID: t2, Name: "Starlight Multiplex", Location: "Westside Mall"}

	repo.add(Showtime{ID: uuid.New(), MovieID: 1, TheaterID: t1, ShowDate: "2026-09-05", ShowTime: "10:00", Price: 200})
	repo.add(Showtime{ID: uuid.New(), MovieID: 1, TheaterID: t2, ShowDate: "2026-09-05", ShowTime: "13:30", Price: 250})
	repo.add(Showtime{ID: uuid.New(), MovieID: 1, TheaterID: t1, ShowDate: "2026-09-05", ShowTime: "17:00", Price: 200})

	grouped, err := svc.ListByMovie(context.Background(), 1, "2026-09-05")
	require.NoError(t, err)

	require.Len(t, grouped, 2)
	assert.Equal(t, "Galaxy Cinemas", grouped[0].TheaterName)
	assert.Len(t, grouped[0].Showtimes, 2)
	assert.Equal(t, "Starlight Multiplex", grouped[1].TheaterName)
	assert.Len(t, grouped[1].Showtimes, 1)
}

func TestListByMovieUsesCache(t *testing.T) {
	svc, repo, thRepo, memc := newTestService(t)

	t1 := uuid.New()
	thRepo.byID[t1] = &theaters.Theater{ID: t1, Name: "Galaxy Cinemas"}
	repo.add(Showtime{ID: uuid.New(), MovieID: 2, TheaterID: t1, ShowDate: "2026-09-06", ShowTime: "10:00"})

	_, err := svc.ListByMovie(context.Background(), 2, "2026-09-06")
	require.NoError(t, err)

	// Second read comes from the cache even after the store changes.
	repo.add(Showtime{ID: uuid.New(), MovieID: 2, TheaterID: t1, ShowDate: "2026-09-06", ShowTime: "13:30"})
	grouped, err := svc.ListByMovie(context.Background(), 2, "2026-09-06")
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	assert.Len(t, grouped[0].Showtimes, 1)
	assert.NotEmpty(t, memc.data)
}

func TestCreateShowtimeInvalidatesListings(t *testing.T) {
	svc, repo, thRepo, _ := newTestService(t)

	t1 := uuid.New()
	thRepo.byID[t1] = &theaters.Theater{ID: t1, Name: "Galaxy Cinemas"}
	repo.add(Showtime{ID: uuid.New(), MovieID: 4, TheaterID: t1, ShowDate: "2026-09-07", ShowTime: "10:00"})

	_, err := svc.ListByMovie(context.Background(), 4, "2026-09-07")
	require.NoError(t, err)

	_, err = svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:    4,
		TheaterID:  t1.String(),
		ScreenName: "Screen 1",
		ShowDate:   "2026-09-07",
		ShowTime:   "13:30",
		Price:      200,
	})
	require.NoError(t, err)

	grouped, err := svc.ListByMovie(context.Background(), 4, "2026-09-07")
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	assert.Len(t, grouped[0].Showtimes, 2)
}
