package models

import "time"

// User represents the admin account
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"default:null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never exposed in JSON
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
