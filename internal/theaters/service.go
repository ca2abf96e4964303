package theaters

import (
	"context"
	"fmt"
	"time"

	"cinegold/pkg/cache"
	"cinegold/pkg/logger"

	"github.com/google/uuid"
)

const (
	cacheKeyAllTheaters = "cinegold:theaters:all"
	cacheKeyTheater     = "cinegold:theaters:id:"
	theaterCacheTTL     = 10 * time.Minute
)

type Service interface {
	CreateTheater(ctx context.Context, req CreateTheaterRequest) (*Theater, error)
	GetTheater(ctx context.Context, id string) (*Theater, error)
	ListTheaters(ctx context.Context, location string) ([]Theater, error)
	UpdateTheater(ctx context.Context, id string, req UpdateTheaterRequest) (*Theater, error)
	DeleteTheater(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *service) CreateTheater(ctx context.Context, req CreateTheaterRequest) (*Theater, error) {
	theater := &Theater{
		ID:          uuid.New(),
		Name:        req.Name,
		Location:    req.Location,
		Address:     req.Address,
		ScreenCount: req.ScreenCount,
	}

	if err := s.repo.Create(ctx, theater); err != nil {
		return nil, fmt.Errorf("failed to create theater: %w", err)
	}

	s.invalidateListings(ctx)
	return theater, nil
}

func (s *service) GetTheater(ctx context.Context, id string) (*Theater, error) {
	theaterID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid theater ID: %w", err)
	}

	var theater Theater
	cacheKey := cacheKeyTheater + id
	err = s.cache.GetOrSet(ctx, cacheKey, theaterCacheTTL, func() (interface{}, error) {
		return s.repo.GetByID(ctx, theaterID)
	}, &theater)
	if err != nil {
		return nil, err
	}
	return &theater, nil
}

func (s *service) ListTheaters(ctx context.Context, location string) ([]Theater, error) {
	// Location-filtered listings skip the cache; the all-theaters listing is
	// the hot path the browse page hits.
	if location != "" {
		return s.repo.GetByLocation(ctx, location)
	}

	var theaters []Theater
	err := s.cache.GetOrSet(ctx, cacheKeyAllTheaters, theaterCacheTTL, func() (interface{}, error) {
		return s.repo.GetAll(ctx)
	}, &theaters)
	if err != nil {
		return nil, err
	}
	return theaters, nil
}

func (s *service) UpdateTheater(ctx context.Context, id string, req UpdateTheaterRequest) (*Theater, error) {
	theaterID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid theater ID: %w", err)
	}

	theater, err := s.repo.GetByID(ctx, theaterID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		theater.Name = *req.Name
	}
	if req.Location != nil {
		theater.Location = *req.Location
	}
	if req.Address != nil {
		theater.Address = *req.Address
	}
	if req.ScreenCount != nil {
		theater.ScreenCount = *req.ScreenCount
	}

	if err := s.repo.Update(ctx, theater); err != nil {
		return nil, fmt.Errorf("failed to update theater: %w", err)
	}

	s.invalidateListings(ctx)
	if err := s.cache.Delete(ctx, cacheKeyTheater+id); err != nil {
		logger.GetDefault().Warn("failed to invalidate theater cache", "theater_id", id, "error", err)
	}
	return theater, nil
}

func (s *service) DeleteTheater(ctx context.Context, id string) error {
	theaterID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid theater ID: %w", err)
	}

	if err := s.repo.Delete(ctx, theaterID); err != nil {
		return err
	}

	s.invalidateListings(ctx)
	if err := s.cache.Delete(ctx, cacheKeyTheater+id); err != nil {
		logger.GetDefault().Warn("failed to invalidate theater cache", "theater_id", id, "error", err)
	}
	return nil
}

func (s *service) invalidateListings(ctx context.Context) {
	if err := s.cache.Delete(ctx, cacheKeyAllTheaters); err != nil {
		logger.GetDefault().Warn("failed to invalidate theater listing cache", "error", err)
	}
}
