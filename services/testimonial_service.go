package services

import (
	"errors"

	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/errs"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
	"gorm.io/gorm"
)

// TestimonialService handles business logic for testimonials
type TestimonialService struct {
	testimonialRepo *repositories.TestimonialRepository
	uploads         *uploads.Manager
}

// NewTestimonialService creates a new testimonial service instance
func NewTestimonialService(manager *uploads.Manager) *TestimonialService {
	return &TestimonialService{
		testimonialRepo: repositories.NewTestimonialRepository(),
		uploads:         manager,
	}
}

// ListTestimonials retrieves all testimonials
func (s *TestimonialService) ListTestimonials() ([]models.Testimonial, error) {
	return s.testimonialRepo.FindAll()
}

// GetTestimonial retrieves a single testimonial for the edit form
func (s *TestimonialService) GetTestimonial(id uint) (models.Testimonial, error) {
	testimonial, err := s.testimonialRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return testimonial, errs.NewNotFound("testimonial")
	}
	return testimonial, err
}

// CreateTestimonial validates the form and persists a new testimonial,
// storing the portrait when one was uploaded
func (s *TestimonialService) CreateTestimonial(req dto.TestimonialRequest) (models.Testimonial, error) {
	if req.Image != nil {
		if err := uploads.ValidateImage(req.Image); err != nil {
			ve := errs.NewValidationError()
			ve.Add("image", err.Error())
			return models.Testimonial{}, ve
		}
	}

	imageURL := ""
	if req.Image != nil {
		url, err := s.uploads.StoreSingle(req.Image, uploads.FolderTestimonials)
		if err != nil {
			return models.Testimonial{}, errs.NewStorageError("write", err)
		}
		imageURL = url
	}

	testimonial := models.Testimonial{
		Name:    req.Name,
		Role:    req.Role,
		Company: req.Company,
		Content: req.Content,
		Image:   imageURL,
	}

	created, err := s.testimonialRepo.Create(testimonial)
	if err != nil {
		s.uploads.DeleteIfExists(imageURL)
		return models.Testimonial{}, err
	}
	return created, nil
}

// UpdateTestimonial applies the form to an existing testimonial. An absent
// image upload keeps the current portrait and its file untouched.
func (s *TestimonialService) UpdateTestimonial(id uint, req dto.TestimonialRequest) (models.Testimonial, error) {
	testimonial, err := s.testimonialRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return testimonial, errs.NewNotFound("testimonial")
	}
	if err != nil {
		return testimonial, err
	}

	if req.Image != nil {
		if err := uploads.ValidateImage(req.Image); err != nil {
			ve := errs.NewValidationError()
			ve.Add("image", err.Error())
			return models.Testimonial{}, ve
		}
	}

	oldImage := ""
	newImage := ""
	if req.Image != nil {
		url, err := s.uploads.StoreSingle(req.Image, uploads.FolderTestimonials)
		if err != nil {
			return models.Testimonial{}, errs.NewStorageError("write", err)
		}
		oldImage = testimonial.Image
		testimonial.Image = url
		newImage = url
	}

	testimonial.Name = req.Name
	testimonial.Role = req.Role
	testimonial.Company = req.Company
	testimonial.Content = req.Content

	if err := s.testimonialRepo.Update(testimonial); err != nil {
		s.uploads.DeleteIfExists(newImage)
		return models.Testimonial{}, err
	}

	s.uploads.DeleteIfExists(oldImage)
	return testimonial, nil
}

// DeleteTestimonial permanently removes the testimonial row and its portrait file
func (s *TestimonialService) DeleteTestimonial(id uint) error {
	testimonial, err := s.testimonialRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound("testimonial")
	}
	if err != nil {
		return err
	}

	if err := s.testimonialRepo.Delete(id); err != nil {
		return err
	}

	s.uploads.DeleteIfExists(testimonial.Image)
	return nil
}
