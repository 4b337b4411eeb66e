package services

import (
	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
)

// PublicService assembles the read-only bundles the marketing site renders
type PublicService struct {
	projectRepo       *repositories.ProjectRepository
	experienceRepo    *repositories.ExperienceRepository
	skillRepo         *repositories.SkillRepository
	certificationRepo *repositories.CertificationRepository
	testimonialRepo   *repositories.TestimonialRepository
	settingRepo       *repositories.SettingRepository
}

// NewPublicService creates a new public service instance
func NewPublicService() *PublicService {
	return &PublicService{
		projectRepo:       repositories.NewProjectRepository(),
		experienceRepo:    repositories.NewExperienceRepository(),
		skillRepo:         repositories.NewSkillRepository(),
		certificationRepo: repositories.NewCertificationRepository(),
		testimonialRepo:   repositories.NewTestimonialRepository(),
		settingRepo:       repositories.NewSettingRepository(),
	}
}

// GetHome collects everything the homepage renders. Draft projects are
// invisible here; the admin listing is the only place they appear.
func (s *PublicService) GetHome() (dto.HomeResponse, error) {
	var home dto.HomeResponse

	projects, err := s.projectRepo.FindPublished()
	if err != nil {
		return home, err
	}

	experiences, err := s.experienceRepo.FindAllByPeriod()
	if err != nil {
		return home, err
	}

	skills, err := s.skillRepo.FindAll()
	if err != nil {
		return home, err
	}

	certifications, err := s.certificationRepo.FindAll()
	if err != nil {
		return home, err
	}

	testimonials, err := s.testimonialRepo.FindAll()
	if err != nil {
		return home, err
	}

	settings, err := s.settingRepo.FindAll()
	if err != nil {
		return home, err
	}

	home = dto.HomeResponse{
		Projects:       projects,
		Experiences:    experiences,
		Skills:         skills,
		Certifications: certifications,
		Testimonials:   testimonials,
		Settings:       settings,
	}
	return home, nil
}

// GetResume returns the subset of settings the resume page needs
func (s *PublicService) GetResume() (map[string]string, error) {
	settings, err := s.settingRepo.FindAll()
	if err != nil {
		return nil, err
	}

	keys := []string{
		models.SettingSiteName,
		models.SettingEmail,
		models.SettingLocation,
		models.SettingProfilePhoto,
		models.SettingCVFile,
	}
	resume := make(map[string]string, len(keys))
	for _, key := range keys {
		if value, ok := settings[key]; ok {
			resume[key] = value
		}
	}
	return resume, nil
}
