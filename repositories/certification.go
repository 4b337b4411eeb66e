package repositories

import (
	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/models"
)

// CertificationRepository handles database operations for certifications
type CertificationRepository struct{}

// NewCertificationRepository creates a new certification repository instance
func NewCertificationRepository() *CertificationRepository {
	return &CertificationRepository{}
}

// FindAll retrieves all certifications in natural table order
func (r *CertificationRepository) FindAll() ([]models.Certification, error) {
	var certifications []models.Certification
	result := database.DB.Find(&certifications)
	return certifications, result.Error
}

// FindByID retrieves a certification by its ID
func (r *CertificationRepository) FindByID(id uint) (models.Certification, error) {
	var certification models.Certification
	result := database.DB.First(&certification, id)
	return certification, result.Error
}

// Create inserts a new certification into the database
func (r *CertificationRepository) Create(certification models.Certification) (models.Certification, error) {
	result := database.DB.Create(&certification)
	return certification, result.Error
}

// Update modifies an existing certification
func (r *CertificationRepository) Update(certification models.Certification) error {
	result := database.DB.Save(&certification)
	return result.Error
}

// Delete removes a certification row permanently
func (r *CertificationRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Certification{}, id)
	return result.Error
}
