package showtimes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinegold/internal/movies"
	"cinegold/internal/theaters"
	"cinegold/pkg/cache"
	"cinegold/pkg/logger"

	"github.com/google/uuid"
)

const (
	cacheKeyMovieShowtimes = "cinegold:showtimes:movie:%d:%s"
	listingCacheTTL        = 2 * time.Minute
)

var ErrUnknownMovie = errors.New("unknown movie")

type Service interface {
	CreateShowtime(ctx context.Context, req CreateShowtimeRequest) (*Showtime, error)
	GetShowtime(ctx context.Context, id string) (*Showtime, error)
	ListByMovie(ctx context.Context, movieID int, showDate string) ([]TheaterShowtimes, error)
	UpdateShowtime(ctx context.Context, id string, req UpdateShowtimeRequest) (*Showtime, error)
	DeleteShowtime(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	theaterRepo theaters.Repository
	catalog     movies.Catalog
	cache       cache.Service
}

func NewService(repo Repository, theaterRepo theaters.Repository, catalog movies.Catalog, cacheService cache.Service) Service {
	return &service{
		repo:        repo,
		theaterRepo: theaterRepo,
		catalog:     catalog,
		cache:       cacheService,
	}
}

func (s *service) CreateShowtime(ctx context.Context, req CreateShowtimeRequest) (*Showtime, error) {
	movie, err := s.catalog.FindByID(req.MovieID)
	if err != nil {
		return nil, ErrUnknownMovie
	}

	theaterID, err := uuid.Parse(req.TheaterID)
	if err != nil {
		return nil, fmt.Errorf("invalid theater ID: %w", err)
	}
	if _, err := s.theaterRepo.GetByID(ctx, theaterID); err != nil {
		return nil, err
	}

	showtime := &Showtime{
		ID:             uuid.New(),
		MovieID:        movie.ID,
		MovieTitle:     movie.Title,
		TheaterID:      theaterID,
		ScreenName:     req.ScreenName,
		ShowDate:       req.ShowDate,
		ShowTime:       req.ShowTime,
		Price:          req.Price,
		AvailableSeats: TotalSeats,
	}

	if err := s.repo.Create(ctx, showtime); err != nil {
		return nil, err
	}

	s.invalidateMovieListings(ctx, movie.ID)
	return showtime, nil
}

func (s *service) GetShowtime(ctx context.Context, id string) (*Showtime, error) {
	showtimeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}
	return s.repo.GetByID(ctx, showtimeID)
}

func (s *service) ListByMovie(ctx context.Context, movieID int, showDate string) ([]TheaterShowtimes, error) {
	if _, err := s.catalog.FindByID(movieID); err != nil {
		return nil, ErrUnknownMovie
	}

	var grouped []TheaterShowtimes
	cacheKey := fmt.Sprintf(cacheKeyMovieShowtimes, movieID, showDate)
	err := s.cache.GetOrSet(ctx, cacheKey, listingCacheTTL, func() (interface{}, error) {
		return s.groupByTheater(ctx, movieID, showDate)
	}, &grouped)
	if err != nil {
		return nil, err
	}
	return grouped, nil
}

func (s *service) groupByTheater(ctx context.Context, movieID int, showDate string) ([]TheaterShowtimes, error) {
	showtimes, err := s.repo.GetByMovie(ctx, movieID, showDate)
	if err != nil {
		return nil, err
	}

	// Preserve first-seen theater order so results stay sorted by show time.
	grouped := make([]TheaterShowtimes, 0)
	index := make(map[uuid.UUID]int)
	for _, st := range showtimes {
		i, ok := index[st.TheaterID]
		if !ok {
			theater, err := s.theaterRepo.GetByID(ctx, st.TheaterID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve theater %s: %w", st.TheaterID, err)
			}
			grouped = append(grouped, TheaterShowtimes{
				TheaterID:   theater.ID,
				TheaterName: theater.Name,
				Location:    theater.Location,
				Address:     theater.Address,
			})
			i = len(grouped) - 1
			index[st.TheaterID] = i
		}
		grouped[i].Showtimes = append(grouped[i].Showtimes, st)
	}
	return grouped, nil
}

func (s *service) UpdateShowtime(ctx context.Context, id string, req UpdateShowtimeRequest) (*Showtime, error) {
	showtimeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}

	showtime, err := s.repo.GetByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	if req.ScreenName != nil {
		showtime.ScreenName = *req.ScreenName
	}
	if req.ShowDate != nil {
		showtime.ShowDate = *req.ShowDate
	}
	if req.ShowTime != nil {
		showtime.ShowTime = *req.ShowTime
	}
	if req.Price != nil {
		showtime.Price = *req.Price
	}

	if err := s.repo.Update(ctx, showtime); err != nil {
		return nil, err
	}

	s.invalidateMovieListings(ctx, showtime.MovieID)
	return showtime, nil
}

func (s *service) DeleteShowtime(ctx context.Context, id string) error {
	showtimeID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid showtime ID: %w", err)
	}

	showtime, err := s.repo.GetByID(ctx, showtimeID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, showtimeID); err != nil {
		return err
	}

	s.invalidateMovieListings(ctx, showtime.MovieID)
	return nil
}

func (s *service) invalidateMovieListings(ctx context.Context, movieID int) {
	pattern := fmt.Sprintf("cinegold:showtimes:movie:%d:*", movieID)
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		logger.GetDefault().Warn("failed to invalidate showtime listing cache", "movie_id", movieID, "error", err)
	}
}
