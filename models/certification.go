package models

import "time"

// Certification represents a certification or award entry
type Certification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Org       string    `json:"org" gorm:"not null"`
	Period    string    `json:"period" gorm:"not null"`
	Score     string    `json:"score" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
