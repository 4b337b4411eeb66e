package models

import "time"

// Testimonial represents a client testimonial
type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Role      string    `json:"role" gorm:"not null"`
	Company   string    `json:"company" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Image     string    `json:"image" gorm:"default:null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
