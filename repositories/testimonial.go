package repositories

import (
	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/models"
)

// TestimonialRepository handles database operations for testimonials
type TestimonialRepository struct{}

// NewTestimonialRepository creates a new testimonial repository instance
func NewTestimonialRepository() *TestimonialRepository {
	return &TestimonialRepository{}
}

// FindAll retrieves all testimonials in natural table order
func (r *TestimonialRepository) FindAll() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	result := database.DB.Find(&testimonials)
	return testimonials, result.Error
}

// FindByID retrieves a testimonial by its ID
func (r *TestimonialRepository) FindByID(id uint) (models.Testimonial, error) {
	var testimonial models.Testimonial
	result := database.DB.First(&testimonial, id)
	return testimonial, result.Error
}

// Create inserts a new testimonial into the database
func (r *TestimonialRepository) Create(testimonial models.Testimonial) (models.Testimonial, error) {
	result := database.DB.Create(&testimonial)
	return testimonial, result.Error
}

// Update modifies an existing testimonial
func (r *TestimonialRepository) Update(testimonial models.Testimonial) error {
	result := database.DB.Save(&testimonial)
	return result.Error
}

// Delete removes a testimonial row permanently
func (r *TestimonialRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Testimonial{}, id)
	return result.Error
}
