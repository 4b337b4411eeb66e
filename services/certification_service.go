package services

import (
	"errors"

	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/errs"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
	"gorm.io/gorm"
)

// CertificationService handles business logic for certifications
type CertificationService struct {
	certificationRepo *repositories.CertificationRepository
}

// NewCertificationService creates a new certification service instance
func NewCertificationService() *CertificationService {
	return &CertificationService{
		certificationRepo: repositories.NewCertificationRepository(),
	}
}

// ListCertifications retrieves all certifications
func (s *CertificationService) ListCertifications() ([]models.Certification, error) {
	return s.certificationRepo.FindAll()
}

// GetCertification retrieves a single certification for the edit form
func (s *CertificationService) GetCertification(id uint) (models.Certification, error) {
	certification, err := s.certificationRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return certification, errs.NewNotFound("certification")
	}
	return certification, err
}

// CreateCertification persists a new certification
func (s *CertificationService) CreateCertification(req dto.CertificationRequest) (models.Certification, error) {
	certification := models.Certification{
		Name:   req.Name,
		Org:    req.Org,
		Period: req.Period,
		Score:  req.Score,
	}
	return s.certificationRepo.Create(certification)
}

// UpdateCertification applies the form to an existing certification
func (s *CertificationService) UpdateCertification(id uint, req dto.CertificationRequest) (models.Certification, error) {
	certification, err := s.certificationRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return certification, errs.NewNotFound("certification")
	}
	if err != nil {
		return certification, err
	}

	certification.Name = req.Name
	certification.Org = req.Org
	certification.Period = req.Period
	certification.Score = req.Score

	if err := s.certificationRepo.Update(certification); err != nil {
		return models.Certification{}, err
	}
	return certification, nil
}

// DeleteCertification permanently removes the certification row
func (s *CertificationService) DeleteCertification(id uint) error {
	if _, err := s.certificationRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("certification")
		}
		return err
	}
	return s.certificationRepo.Delete(id)
}
