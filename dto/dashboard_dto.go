package dto

import (
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
)

// ProjectViews is one bar of the dashboard views chart
type ProjectViews struct {
	Title      string `json:"title"`
	ViewsCount int64  `json:"views_count"`
}

// DashboardResponse is the admin overview payload
type DashboardResponse struct {
	TotalViews     int64                     `json:"total_views"`
	TotalMessages  int64                     `json:"total_messages"`
	NewMessages    int64                     `json:"new_messages"`
	ProjectViews   []ProjectViews            `json:"project_views"`
	MessageTrends  []repositories.DailyCount `json:"message_trends"`
	RecentMessages []models.Message          `json:"recent_messages"`
}

// HomeResponse is the public homepage data bundle
type HomeResponse struct {
	Projects       []models.Project       `json:"projects"`
	Experiences    []models.Experience    `json:"experiences"`
	Skills         []models.Skill         `json:"skills"`
	Certifications []models.Certification `json:"certifications"`
	Testimonials   []models.Testimonial   `json:"testimonials"`
	Settings       map[string]string      `json:"settings"`
}
