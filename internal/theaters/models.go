package theaters

import (
	"time"

	"github.com/google/uuid"
)

type Theater struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `json:"name" gorm:"not null"`
	Location    string    `json:"location" gorm:"not null;index"`
	Address     string    `json:"address" gorm:"not null"`
	ScreenCount int       `json:"screen_count" gorm:"not null;default:1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Theater) TableName() string {
	return "theaters"
}

type CreateTheaterRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Location    string `json:"location" validate:"required,min=2,max=120"`
	Address     string `json:"address" validate:"required,min=5,max=255"`
	ScreenCount int    `json:"screen_count" validate:"required,min=1,max=20"`
}

type UpdateTheaterRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Location    *string `json:"location" validate:"omitempty,min=2,max=120"`
	Address     *string `json:"address" validate:"omitempty,min=5,max=255"`
	ScreenCount *int    `json:"screen_count" validate:"omitempty,min=1,max=20"`
}
