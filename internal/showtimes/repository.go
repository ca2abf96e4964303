package showtimes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrShowtimeNotFound = errors.New("showtime not found")

type Repository interface {
	Create(ctx context.Context, showtime *Showtime) error
	GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error)
	GetByMovie(ctx context.Context, movieID int, showDate string) ([]Showtime, error)
	GetByTheater(ctx context.Context, theaterID uuid.UUID) ([]Showtime, error)
	Update(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, showtime *Showtime) error {
	if err := r.db.WithContext(ctx).Create(showtime).Error; err != nil {
		return fmt.Errorf("failed to create showtime: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	var showtime Showtime
	err := r.db.WithContext(ctx).First(&showtime, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, fmt.Errorf("failed to get showtime: %w", err)
	}
	return &showtime, nil
}

func (r *repository) GetByMovie(ctx context.Context, movieID int, showDate string) ([]Showtime, error) {
	query := r.db.WithContext(ctx).Where("movie_id = ?", movieID)
	if showDate != "" {
		query = query.Where("show_date = ?", showDate)
	}

	var showtimes []Showtime
	if err := query.Order("show_date ASC, show_time ASC").Find(&showtimes).Error; err != nil {
		return nil, fmt.Errorf("failed to list showtimes: %w", err)
	}
	return showtimes, nil
}

func (r *repository) GetByTheater(ctx context.Context, theaterID uuid.UUID) ([]Showtime, error) {
	var showtimes []Showtime
	err := r.db.WithContext(ctx).
		Where("theater_id = ?", theaterID).
		Order("show_date ASC, show_time ASC").
		Find(&showtimes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list showtimes by theater: %w", err)
	}
	return showtimes, nil
}

func (r *repository) Update(ctx context.Context, showtime *Showtime) error {
	if err := r.db.WithContext(ctx).Save(showtime).Error; err != nil {
		return fmt.Errorf("failed to update showtime: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Showtime{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete showtime: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrShowtimeNotFound
	}
	return nil
}
