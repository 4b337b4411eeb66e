package services

import (
	"time"

	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
	"github.com/samber/lo"
)

// DashboardService computes the admin overview statistics. Read-only.
type DashboardService struct {
	projectRepo *repositories.ProjectRepository
	messageRepo *repositories.MessageRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService() *DashboardService {
	return &DashboardService{
		projectRepo: repositories.NewProjectRepository(),
		messageRepo: repositories.NewMessageRepository(),
	}
}

// GetOverview assembles the dashboard payload: totals, the top-5 views
// chart, the trailing 30-day message trend and the latest messages.
func (s *DashboardService) GetOverview() (dto.DashboardResponse, error) {
	var overview dto.DashboardResponse
	now := time.Now()

	totalViews, err := s.projectRepo.SumViews()
	if err != nil {
		return overview, err
	}

	totalMessages, err := s.messageRepo.CountAll()
	if err != nil {
		return overview, err
	}

	newMessages, err := s.messageRepo.CountSince(now.AddDate(0, 0, -7))
	if err != nil {
		return overview, err
	}

	topProjects, err := s.projectRepo.TopByViews(5)
	if err != nil {
		return overview, err
	}

	trend, err := s.messageRepo.TrendSince(now.AddDate(0, 0, -30))
	if err != nil {
		return overview, err
	}

	recent, err := s.messageRepo.FindRecent(5)
	if err != nil {
		return overview, err
	}

	overview = dto.DashboardResponse{
		TotalViews:    totalViews,
		TotalMessages: totalMessages,
		NewMessages:   newMessages,
		ProjectViews: lo.Map(topProjects, func(p models.Project, _ int) dto.ProjectViews {
			return dto.ProjectViews{Title: p.Title, ViewsCount: p.ViewsCount}
		}),
		MessageTrends:  trend,
		RecentMessages: recent,
	}
	return overview, nil
}
