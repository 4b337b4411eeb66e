package services

import (
	"testing"

	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/errs"
	"github.com/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHomeExcludesDrafts(t *testing.T) {
	m := setupTest(t)
	projects := NewProjectService(m)

	published := validProjectRequest(t, "live-one")
	published.Status = "published"
	_, err := projects.CreateProject(published)
	require.NoError(t, err)

	draft := validProjectRequest(t, "hidden-one")
	draft.Status = "draft"
	_, err = projects.CreateProject(draft)
	require.NoError(t, err)

	home, err := NewPublicService().GetHome()
	require.NoError(t, err)

	require.Len(t, home.Projects, 1)
	assert.Equal(t, "live-one", home.Projects[0].Slug)

	// The admin listing still shows the draft
	all, err := projects.ListProjects()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetHomeBundlesSettings(t *testing.T) {
	m := setupTest(t)
	require.NoError(t, NewSettingService(m).UpdateSettings(0, dto.SettingsUpdateRequest{
		Settings: map[string]string{models.SettingSiteName: "Portfolio"},
	}))

	home, err := NewPublicService().GetHome()
	require.NoError(t, err)
	assert.Equal(t, "Portfolio", home.Settings[models.SettingSiteName])
}

func TestGetResumeFiltersKeys(t *testing.T) {
	m := setupTest(t)
	require.NoError(t, NewSettingService(m).UpdateSettings(0, dto.SettingsUpdateRequest{
		Settings: map[string]string{
			models.SettingSiteName:     "Portfolio",
			models.SettingEmail:        "me@example.com",
			models.SettingPrimaryColor: "#ff0000",
		},
	}))

	resume, err := NewPublicService().GetResume()
	require.NoError(t, err)

	assert.Equal(t, "me@example.com", resume[models.SettingEmail])
	assert.NotContains(t, resume, models.SettingPrimaryColor)
}

func TestGetProjectBySlugServesDrafts(t *testing.T) {
	// The slug route serves drafts too; only the home listing filters them.
	// Admin preview links rely on this.
	m := setupTest(t)
	projects := NewProjectService(m)

	draft := validProjectRequest(t, "work-in-progress")
	draft.Status = "draft"
	created, err := projects.CreateProject(draft)
	require.NoError(t, err)

	found, err := projects.GetProjectBySlug("work-in-progress")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestGetProjectByUnknownSlug(t *testing.T) {
	m := setupTest(t)
	_, err := NewProjectService(m).GetProjectBySlug("no-such-slug")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
