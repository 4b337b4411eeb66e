package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectStatus represents project visibility states
type ProjectStatus string

const (
	StatusPublished ProjectStatus = "published"
	StatusDraft     ProjectStatus = "draft"
)

// Project represents a portfolio project entry
type Project struct {
	ID              uint                        `json:"id" gorm:"primaryKey"`
	Slug            string                      `json:"slug" gorm:"uniqueIndex;not null"`
	Title           string                      `json:"title" gorm:"not null"`
	Description     string                      `json:"description" gorm:"type:text;not null"`
	LongDescription string                      `json:"long_description" gorm:"type:text;not null"`
	Image           string                      `json:"image" gorm:"not null"` // public URL under the storage prefix
	Category        string                      `json:"category" gorm:"not null"`
	Year            string                      `json:"year" gorm:"not null"`
	Duration        string                      `json:"duration" gorm:"not null"`
	Client          string                      `json:"client" gorm:"not null"`
	Role            string                      `json:"role" gorm:"not null"`
	Challenges      string                      `json:"challenges" gorm:"type:text;not null"`
	Solution        string                      `json:"solution" gorm:"type:text;not null"`
	Tech            datatypes.JSONSlice[string] `json:"tech"`
	Features        datatypes.JSONSlice[string] `json:"features"`
	Tools           datatypes.JSONSlice[string] `json:"tools"`
	Screenshots     datatypes.JSONSlice[string] `json:"screenshots"` // replaced as a whole batch, never merged
	LiveURL         string                      `json:"live_url" gorm:"default:null"`
	GithubURL       string                      `json:"github_url" gorm:"default:null"`
	Impact          string                      `json:"impact" gorm:"type:text;default:null"`
	Awards          string                      `json:"awards" gorm:"default:null"`
	Featured        bool                        `json:"featured" gorm:"default:false"`
	Status          ProjectStatus               `json:"status" gorm:"type:varchar(10);default:'draft'"`
	ViewsCount      int64                       `json:"views_count" gorm:"default:0"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}
