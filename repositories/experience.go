package repositories

import (
	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/models"
)

// ExperienceRepository handles database operations for experiences
type ExperienceRepository struct{}

// NewExperienceRepository creates a new experience repository instance
func NewExperienceRepository() *ExperienceRepository {
	return &ExperienceRepository{}
}

// FindAll retrieves all experiences, newest first
func (r *ExperienceRepository) FindAll() ([]models.Experience, error) {
	var experiences []models.Experience
	result := database.DB.Order("created_at DESC").Find(&experiences)
	return experiences, result.Error
}

// FindAllByPeriod retrieves all experiences ordered by period descending,
// the ordering the public site uses.
func (r *ExperienceRepository) FindAllByPeriod() ([]models.Experience, error) {
	var experiences []models.Experience
	result := database.DB.Order("period DESC").Find(&experiences)
	return experiences, result.Error
}

// FindByID retrieves an experience by its ID
func (r *ExperienceRepository) FindByID(id uint) (models.Experience, error) {
	var experience models.Experience
	result := database.DB.First(&experience, id)
	return experience, result.Error
}

// Create inserts a new experience into the database
func (r *ExperienceRepository) Create(experience models.Experience) (models.Experience, error) {
	result := database.DB.Create(&experience)
	return experience, result.Error
}

// Update modifies an existing experience
func (r *ExperienceRepository) Update(experience models.Experience) error {
	result := database.DB.Save(&experience)
	return result.Error
}

// Delete removes an experience row permanently
func (r *ExperienceRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Experience{}, id)
	return result.Error
}
