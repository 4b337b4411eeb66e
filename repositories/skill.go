package repositories

import (
	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/models"
)

// SkillRepository handles database operations for skills
type SkillRepository struct{}

// NewSkillRepository creates a new skill repository instance
func NewSkillRepository() *SkillRepository {
	return &SkillRepository{}
}

// FindAll retrieves all skills in natural table order
func (r *SkillRepository) FindAll() ([]models.Skill, error) {
	var skills []models.Skill
	result := database.DB.Find(&skills)
	return skills, result.Error
}

// FindByID retrieves a skill by its ID
func (r *SkillRepository) FindByID(id uint) (models.Skill, error) {
	var skill models.Skill
	result := database.DB.First(&skill, id)
	return skill, result.Error
}

// Create inserts a new skill into the database
func (r *SkillRepository) Create(skill models.Skill) (models.Skill, error) {
	result := database.DB.Create(&skill)
	return skill, result.Error
}

// Update modifies an existing skill
func (r *SkillRepository) Update(skill models.Skill) error {
	result := database.DB.Save(&skill)
	return result.Error
}

// Delete removes a skill row permanently
func (r *SkillRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Skill{}, id)
	return result.Error
}
