package repositories

import (
	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects, newest first. Drafts are included; this is
// the admin listing.
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Order("created_at DESC").Find(&projects)
	return projects, result.Error
}

// FindPublished retrieves only published projects for the public site,
// ordered by year descending.
func (r *ProjectRepository) FindPublished() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("status = ?", models.StatusPublished).Order("year DESC").Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id uint) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, id)
	return project, result.Error
}

// FindBySlug retrieves a project by its slug
func (r *ProjectRepository) FindBySlug(slug string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "slug = ?", slug)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project. The view counter is written only by
// IncrementViews; omitting it here means a view landing between the edit
// form's load and this save is never rolled back.
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Omit("views_count").Save(&project)
	return result.Error
}

// Delete removes a project row permanently
func (r *ProjectRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Project{}, id)
	return result.Error
}

// ExistsBySlug checks slug uniqueness. excludeID skips the project's own row
// so updates do not collide with themselves; pass 0 on create.
func (r *ProjectRepository) ExistsBySlug(slug string, excludeID uint) (bool, error) {
	var count int64
	query := database.DB.Model(&models.Project{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// IncrementViews bumps the view counter with a single atomic UPDATE so
// concurrent detail views never lose an increment.
func (r *ProjectRepository) IncrementViews(id uint) error {
	result := database.DB.Model(&models.Project{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	return result.Error
}

// SumViews totals views_count across all projects, drafts included
func (r *ProjectRepository) SumViews() (int64, error) {
	var total int64
	err := database.DB.Model(&models.Project{}).
		Select("COALESCE(SUM(views_count), 0)").Scan(&total).Error
	return total, err
}

// TopByViews retrieves the most viewed projects, descending
func (r *ProjectRepository) TopByViews(limit int) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Order("views_count DESC").Limit(limit).Find(&projects)
	return projects, result.Error
}
