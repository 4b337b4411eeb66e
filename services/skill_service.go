package services

import (
	"errors"

	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/errs"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
	"github.com/portfolio-backend/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SkillService handles business logic for skill groups
type SkillService struct {
	skillRepo *repositories.SkillRepository
}

// NewSkillService creates a new skill service instance
func NewSkillService() *SkillService {
	return &SkillService{
		skillRepo: repositories.NewSkillRepository(),
	}
}

// ListSkills retrieves all skills
func (s *SkillService) ListSkills() ([]models.Skill, error) {
	return s.skillRepo.FindAll()
}

// GetSkill retrieves a single skill for the edit form
func (s *SkillService) GetSkill(id uint) (models.Skill, error) {
	skill, err := s.skillRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return skill, errs.NewNotFound("skill")
	}
	return skill, err
}

// CreateSkill validates the form and persists a new skill
func (s *SkillService) CreateSkill(req dto.SkillRequest) (models.Skill, error) {
	items, err := s.parseItems(req)
	if err != nil {
		return models.Skill{}, err
	}

	skill := models.Skill{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Items:       datatypes.NewJSONSlice(items),
	}
	return s.skillRepo.Create(skill)
}

// UpdateSkill applies the form to an existing skill
func (s *SkillService) UpdateSkill(id uint, req dto.SkillRequest) (models.Skill, error) {
	skill, err := s.skillRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return skill, errs.NewNotFound("skill")
	}
	if err != nil {
		return skill, err
	}

	items, err := s.parseItems(req)
	if err != nil {
		return models.Skill{}, err
	}

	skill.Title = req.Title
	skill.Description = req.Description
	skill.Icon = req.Icon
	skill.Items = datatypes.NewJSONSlice(items)

	if err := s.skillRepo.Update(skill); err != nil {
		return models.Skill{}, err
	}
	return skill, nil
}

// DeleteSkill permanently removes the skill row
func (s *SkillService) DeleteSkill(id uint) error {
	if _, err := s.skillRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("skill")
		}
		return err
	}
	return s.skillRepo.Delete(id)
}

func (s *SkillService) parseItems(req dto.SkillRequest) ([]string, error) {
	items := utils.ParseCommaList(req.Items)
	if len(items) == 0 {
		ve := errs.NewValidationError()
		ve.Add("items", "this field is required")
		return nil, ve
	}
	return items, nil
}
