package models

import (
	"time"

	"gorm.io/datatypes"
)

// Skill represents a skill group shown on the public site
type Skill struct {
	ID          uint                        `json:"id" gorm:"primaryKey"`
	Title       string                      `json:"title" gorm:"not null"`
	Description string                      `json:"description" gorm:"type:text;not null"`
	Icon        string                      `json:"icon" gorm:"not null"` // presentation icon key, resolved client-side
	Items       datatypes.JSONSlice[string] `json:"items"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}
