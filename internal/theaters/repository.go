package theaters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTheaterNotFound = errors.New("theater not found")

type Repository interface {
	Create(ctx context.Context, theater *Theater) error
	GetByID(ctx context.Context, id uuid.UUID) (*Theater, error)
	GetAll(ctx context.Context) ([]Theater, error)
	GetByLocation(ctx context.Context, location string) ([]Theater, error)
	Update(ctx context.Context, theater *Theater) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, theater *Theater) error {
	if err := r.db.WithContext(ctx).Create(theater).Error; err != nil {
		return fmt.Errorf("failed to create theater: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Theater, error) {
	var theater Theater
	err := r.db.WithContext(ctx).First(&theater, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTheaterNotFound
		}
		return nil, fmt.Errorf("failed to get theater: %w", err)
	}
	return &theater, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Theater, error) {
	var theaters []Theater
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&theaters).Error; err != nil {
		return nil, fmt.Errorf("failed to list theaters: %w", err)
	}
	return theaters, nil
}

func (r *repository) GetByLocation(ctx context.Context, location string) ([]Theater, error) {
	var theaters []Theater
	err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("name ASC").
		Find(&theaters).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list theaters by location: %w", err)
	}
	return theaters, nil
}

func (r *repository) Update(ctx context.Context, theater *Theater) error {
	if err := r.db.WithContext(ctx).Save(theater).Error; err != nil {
		return fmt.Errorf("failed to update theater: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Theater{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete theater: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTheaterNotFound
	}
	return nil
}
