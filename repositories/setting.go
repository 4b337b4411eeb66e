package repositories

import (
	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/models"
	"gorm.io/gorm/clause"
)

// SettingRepository handles database operations for the settings key/value table
type SettingRepository struct{}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository() *SettingRepository {
	return &SettingRepository{}
}

// FindAll retrieves every setting as a key -> value map
func (r *SettingRepository) FindAll() (map[string]string, error) {
	var settings []models.Setting
	if err := database.DB.Find(&settings).Error; err != nil {
		return nil, err
	}
	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	return values, nil
}

// Get retrieves the value for a key; a missing key returns an empty string
func (r *SettingRepository) Get(key string) (string, error) {
	var setting models.Setting
	result := database.DB.Where("key = ?", key).Limit(1).Find(&setting)
	if result.Error != nil {
		return "", result.Error
	}
	return setting.Value, nil
}

// Upsert inserts the key or overwrites its value if it already exists
func (r *SettingRepository) Upsert(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting)
	return result.Error
}
