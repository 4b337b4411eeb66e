package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDashboardData(t *testing.T) {
	t.Helper()

	for i := 1; i <= 7; i++ {
		project := models.Project{
			Slug:            fmt.Sprintf("project-%d", i),
			Title:           fmt.Sprintf("Project %d", i),
			Description:     "d",
			LongDescription: "ld",
			Image:           "/storage/projects/p.png",
			Category:        "web",
			Year:            "2025",
			Duration:        "3 months",
			Client:          "c",
			Role:            "r",
			Challenges:      "ch",
			Solution:        "s",
			Status:          models.StatusPublished,
			ViewsCount:      int64(i * 10),
		}
		require.NoError(t, database.DB.Create(&project).Error)
	}

	now := time.Now()
	ages := []time.Duration{0, 0, 48 * time.Hour, 10 * 24 * time.Hour, 40 * 24 * time.Hour}
	for i, age := range ages {
		message := models.Message{
			Name:      "Visitor",
			Email:     "v@example.com",
			Subject:   fmt.Sprintf("Subject %d", i),
			Message:   "m",
			CreatedAt: now.Add(-age),
			UpdatedAt: now.Add(-age),
		}
		require.NoError(t, database.DB.Create(&message).Error)
	}
}

func TestDashboardOverview(t *testing.T) {
	setupTest(t)
	seedDashboardData(t)

	overview, err := NewDashboardService().GetOverview()
	require.NoError(t, err)

	// 10+20+...+70
	assert.Equal(t, int64(280), overview.TotalViews)
	assert.Equal(t, int64(5), overview.TotalMessages)
	// Three of the seeded messages fall inside the trailing week
	assert.Equal(t, int64(3), overview.NewMessages)

	require.Len(t, overview.ProjectViews, 5)
	assert.Equal(t, "Project 7", overview.ProjectViews[0].Title)
	assert.Equal(t, int64(70), overview.ProjectViews[0].ViewsCount)
	assert.Equal(t, "Project 3", overview.ProjectViews[4].Title)

	// The 40-day-old message is outside the 30-day trend window
	var trendTotal int64
	for _, day := range overview.MessageTrends {
		trendTotal += day.Count
	}
	assert.Equal(t, int64(4), trendTotal)

	require.Len(t, overview.RecentMessages, 5)
}

func TestDashboardOverviewEmpty(t *testing.T) {
	setupTest(t)

	overview, err := NewDashboardService().GetOverview()
	require.NoError(t, err)

	assert.Zero(t, overview.TotalViews)
	assert.Zero(t, overview.TotalMessages)
	assert.Zero(t, overview.NewMessages)
	assert.Empty(t, overview.ProjectViews)
	assert.Empty(t, overview.MessageTrends)
	assert.Empty(t, overview.RecentMessages)
}
