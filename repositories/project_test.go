package repositories

import (
	"sync"
	"testing"

	"github.com/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, repo *ProjectRepository, slug string, status models.ProjectStatus, views int64) models.Project {
	t.Helper()
	project, err := repo.Create(models.Project{
		Slug:            slug,
		Title:           "Project " + slug,
		Description:     "desc",
		LongDescription: "long desc",
		Image:           "/storage/projects/" + slug + ".png",
		Category:        "web",
		Year:            "2025",
		Duration:        "3 months",
		Client:          "Acme",
		Role:            "Lead",
		Challenges:      "c",
		Solution:        "s",
		Status:          status,
		ViewsCount:      views,
	})
	require.NoError(t, err)
	return project
}

func TestProjectExistsBySlug(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	first := seedProject(t, repo, "agriduck", models.StatusPublished, 0)

	exists, err := repo.ExistsBySlug("agriduck", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// the project's own row is excluded on update
	exists, err = repo.ExistsBySlug("agriduck", first.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsBySlug("other", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateKeepsViewsLandedMidEdit(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	created := seedProject(t, repo, "agriduck", models.StatusPublished, 0)

	// Admin loads the edit form, then a visitor opens the detail page
	// before the admin saves.
	loaded, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.NoError(t, repo.IncrementViews(created.ID))

	loaded.Title = "Agriduck v2"
	require.NoError(t, repo.Update(loaded))

	saved, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Agriduck v2", saved.Title)
	assert.Equal(t, int64(1), saved.ViewsCount, "view landed mid-edit must survive the save")
}

func TestProjectSlugUniqueConstraint(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	seedProject(t, repo, "agriduck", models.StatusPublished, 0)

	_, err := repo.Create(models.Project{
		Slug:            "agriduck",
		Title:           "Duplicate",
		Description:     "d",
		LongDescription: "d",
		Image:           "/storage/projects/d.png",
		Category:        "web",
		Year:            "2025",
		Duration:        "1 month",
		Client:          "Acme",
		Role:            "Dev",
		Challenges:      "c",
		Solution:        "s",
	})
	assert.Error(t, err, "database enforces slug uniqueness as a last line of defense")

	original, err := repo.FindBySlug("agriduck")
	require.NoError(t, err)
	assert.Equal(t, "Project agriduck", original.Title)
}

func TestProjectFindPublishedExcludesDrafts(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	seedProject(t, repo, "live", models.StatusPublished, 0)
	seedProject(t, repo, "wip", models.StatusDraft, 0)

	published, err := repo.FindPublished()
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "live", published[0].Slug)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2, "admin listing includes drafts")
}

func TestProjectIncrementViews(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	project := seedProject(t, repo, "counted", models.StatusPublished, 0)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = repo.IncrementViews(project.ID)
		}()
	}
	wg.Wait()

	reloaded, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), reloaded.ViewsCount, "every concurrent view must land")
}

func TestProjectSumAndTopViews(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	seedProject(t, repo, "a", models.StatusPublished, 10)
	seedProject(t, repo, "b", models.StatusDraft, 30)
	seedProject(t, repo, "c", models.StatusPublished, 20)

	total, err := repo.SumViews()
	require.NoError(t, err)
	assert.Equal(t, int64(60), total, "drafts count toward total views")

	top, err := repo.TopByViews(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Slug)
	assert.Equal(t, "c", top[1].Slug)
}

func TestProjectSumViewsEmptyTable(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	total, err := repo.SumViews()
	require.NoError(t, err)
	assert.Zero(t, total)
}
