package repositories

import (
	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/models"
)

// UserRepository handles database operations for the admin account
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// Update modifies an existing user
func (r *UserRepository) Update(user models.User) error {
	result := database.DB.Save(&user)
	return result.Error
}

// ExistsByEmail checks email uniqueness, excluding the user's own row
func (r *UserRepository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	var count int64
	query := database.DB.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
