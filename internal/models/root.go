package models

import (
	"time"
)

type Root struct {
	ID        string    `json:"id" validate:"uuid4" desc:"A unique identifier" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name" validate:"required" desc:"Display name" example:"John Doe"`
	CreatedAt time.Time `json:"createdAt" desc:"Creation timestamp"`
	UpdatedAt time.Time `json:"updatedAt" desc:"Last update timestamp"`
}
