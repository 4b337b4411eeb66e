package services

import (
	"errors"
	"strings"

	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/errs"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
	"github.com/portfolio-backend/utils"
	"gorm.io/gorm"
)

// fileSettingFolders enumerates which setting keys accept a file upload and
// where that file lands. Uploads under any other key are rejected.
var fileSettingFolders = map[string]string{
	models.SettingProfilePhoto: uploads.FolderSettings,
	models.SettingCVFile:       uploads.FolderSettings,
}

// SettingService handles the settings screen: the key/value bag, the
// file-backed setting keys and the admin account security block.
type SettingService struct {
	settingRepo *repositories.SettingRepository
	userRepo    *repositories.UserRepository
	uploads     *uploads.Manager
}

// NewSettingService creates a new setting service instance
func NewSettingService(manager *uploads.Manager) *SettingService {
	return &SettingService{
		settingRepo: repositories.NewSettingRepository(),
		userRepo:    repositories.NewUserRepository(),
		uploads:     manager,
	}
}

// GetSettings retrieves the full key/value map
func (s *SettingService) GetSettings() (map[string]string, error) {
	return s.settingRepo.FindAll()
}

// UpdateSettings applies one settings request. All blocks are validated
// before any of them is applied, so a bad password never leaves the settings
// half-written and vice versa.
func (s *SettingService) UpdateSettings(userID uint, req dto.SettingsUpdateRequest) error {
	ve := errs.NewValidationError()

	var user models.User
	if req.HasAccountBlock() {
		var err error
		user, err = s.userRepo.FindByID(userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("user")
		}
		if err != nil {
			return err
		}
		s.validateAccountBlock(user, req, ve)
	}

	for key, value := range req.Settings {
		if strings.TrimSpace(key) == "" {
			ve.Add("settings", "setting keys must not be empty")
		}
		_ = value // any value is accepted, including empty to clear a key
	}

	for key, fh := range req.Files {
		if _, ok := fileSettingFolders[key]; !ok {
			ve.Add(key, "this field does not accept a file upload")
			continue
		}
		if err := uploads.ValidateImageOrDocument(fh); err != nil {
			ve.Add(key, err.Error())
		}
	}

	if ve.HasErrors() {
		return ve
	}

	// Apply: account first, then plain settings, then file-backed settings.
	if req.HasAccountBlock() {
		user.Email = req.Email
		user.Name = req.Email
		if req.NewPassword != "" {
			hashed, err := utils.HashPassword(req.NewPassword)
			if err != nil {
				return err
			}
			user.Password = hashed
		}
		if err := s.userRepo.Update(user); err != nil {
			return err
		}
	}

	for key, value := range req.Settings {
		if err := s.settingRepo.Upsert(key, value); err != nil {
			return err
		}
	}

	for key, fh := range req.Files {
		oldValue, err := s.settingRepo.Get(key)
		if err != nil {
			return err
		}
		url, err := s.uploads.StoreSingle(fh, fileSettingFolders[key])
		if err != nil {
			return errs.NewStorageError("write", err)
		}
		if err := s.settingRepo.Upsert(key, url); err != nil {
			s.uploads.DeleteIfExists(url)
			return err
		}
		s.uploads.DeleteIfExists(oldValue)
	}

	return nil
}

func (s *SettingService) validateAccountBlock(user models.User, req dto.SettingsUpdateRequest, ve *errs.ValidationError) {
	if req.Email == "" {
		ve.Add("email", "this field is required")
	} else if !strings.Contains(req.Email, "@") {
		ve.Add("email", "must be a valid email address")
	} else {
		taken, err := s.userRepo.ExistsByEmail(req.Email, user.ID)
		if err != nil {
			ve.Add("email", "could not verify email uniqueness")
		} else if taken {
			ve.Add("email", "this email is already in use")
		}
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < 8 {
			ve.Add("new_password", "must be at least 8 characters")
		}
		if req.ConfirmPassword != req.NewPassword {
			ve.Add("confirm_password", "passwords do not match")
		}
	}
}
