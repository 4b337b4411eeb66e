package models

import (
	"time"

	"gorm.io/datatypes"
)

// Experience represents a work history entry
type Experience struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Company      string                      `json:"company" gorm:"not null"`
	CompanyLogo  string                      `json:"company_logo" gorm:"default:null"`
	Role         string                      `json:"role" gorm:"not null"`
	Period       string                      `json:"period" gorm:"not null"`
	Desc         string                      `json:"desc" gorm:"type:text;not null"`
	Achievements datatypes.JSONSlice[string] `json:"achievements"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}
