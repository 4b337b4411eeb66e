package services

import (
	"errors"

	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/errs"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
	"github.com/portfolio-backend/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExperienceService handles business logic for work experiences
type ExperienceService struct {
	experienceRepo *repositories.ExperienceRepository
	uploads        *uploads.Manager
}

// NewExperienceService creates a new experience service instance
func NewExperienceService(manager *uploads.Manager) *ExperienceService {
	return &ExperienceService{
		experienceRepo: repositories.NewExperienceRepository(),
		uploads:        manager,
	}
}

// ListExperiences retrieves all experiences for the admin panel, newest first
func (s *ExperienceService) ListExperiences() ([]models.Experience, error) {
	return s.experienceRepo.FindAll()
}

// GetExperience retrieves a single experience for the edit form
func (s *ExperienceService) GetExperience(id uint) (models.Experience, error) {
	experience, err := s.experienceRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return experience, errs.NewNotFound("experience")
	}
	return experience, err
}

// CreateExperience validates the form and persists a new experience,
// storing the company logo when one was uploaded
func (s *ExperienceService) CreateExperience(req dto.ExperienceRequest) (models.Experience, error) {
	ve := errs.NewValidationError()

	achievements := utils.ParseLineList(req.Achievements)
	if len(achievements) == 0 {
		ve.Add("achievements", "this field is required")
	}
	if req.CompanyLogo != nil {
		if err := uploads.ValidateImage(req.CompanyLogo); err != nil {
			ve.Add("company_logo", err.Error())
		}
	}
	if ve.HasErrors() {
		return models.Experience{}, ve
	}

	logoURL := ""
	if req.CompanyLogo != nil {
		url, err := s.uploads.StoreSingle(req.CompanyLogo, uploads.FolderCompanies)
		if err != nil {
			return models.Experience{}, errs.NewStorageError("write", err)
		}
		logoURL = url
	}

	experience := models.Experience{
		Company:      req.Company,
		CompanyLogo:  logoURL,
		Role:         req.Role,
		Period:       req.Period,
		Desc:         req.Desc,
		Achievements: datatypes.NewJSONSlice(achievements),
	}

	created, err := s.experienceRepo.Create(experience)
	if err != nil {
		s.uploads.DeleteIfExists(logoURL)
		return models.Experience{}, err
	}
	return created, nil
}

// UpdateExperience applies the form to an existing experience. An absent
// logo upload keeps the current logo and its file untouched.
func (s *ExperienceService) UpdateExperience(id uint, req dto.ExperienceRequest) (models.Experience, error) {
	experience, err := s.experienceRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return experience, errs.NewNotFound("experience")
	}
	if err != nil {
		return experience, err
	}

	ve := errs.NewValidationError()
	achievements := utils.ParseLineList(req.Achievements)
	if len(achievements) == 0 {
		ve.Add("achievements", "this field is required")
	}
	if req.CompanyLogo != nil {
		if err := uploads.ValidateImage(req.CompanyLogo); err != nil {
			ve.Add("company_logo", err.Error())
		}
	}
	if ve.HasErrors() {
		return models.Experience{}, ve
	}

	oldLogo := ""
	newLogo := ""
	if req.CompanyLogo != nil {
		url, err := s.uploads.StoreSingle(req.CompanyLogo, uploads.FolderCompanies)
		if err != nil {
			return models.Experience{}, errs.NewStorageError("write", err)
		}
		oldLogo = experience.CompanyLogo
		experience.CompanyLogo = url
		newLogo = url
	}

	experience.Company = req.Company
	experience.Role = req.Role
	experience.Period = req.Period
	experience.Desc = req.Desc
	experience.Achievements = datatypes.NewJSONSlice(achievements)

	if err := s.experienceRepo.Update(experience); err != nil {
		s.uploads.DeleteIfExists(newLogo)
		return models.Experience{}, err
	}

	s.uploads.DeleteIfExists(oldLogo)
	return experience, nil
}

// DeleteExperience permanently removes the experience row and its logo file
func (s *ExperienceService) DeleteExperience(id uint) error {
	experience, err := s.experienceRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound("experience")
	}
	if err != nil {
		return err
	}

	if err := s.experienceRepo.Delete(id); err != nil {
		return err
	}

	s.uploads.DeleteIfExists(experience.CompanyLogo)
	return nil
}
