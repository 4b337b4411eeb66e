package repositories

import (
	"time"

	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/models"
)

// DailyCount is one day of the message trend aggregation
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// MessageRepository handles database operations for contact messages
type MessageRepository struct{}

// NewMessageRepository creates a new message repository instance
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// FindAll retrieves all messages, newest first
func (r *MessageRepository) FindAll() ([]models.Message, error) {
	var messages []models.Message
	result := database.DB.Order("created_at DESC").Find(&messages)
	return messages, result.Error
}

// FindByID retrieves a message by its ID
func (r *MessageRepository) FindByID(id uint) (models.Message, error) {
	var message models.Message
	result := database.DB.First(&message, id)
	return message, result.Error
}

// FindRecent retrieves the most recently created messages, descending
func (r *MessageRepository) FindRecent(limit int) ([]models.Message, error) {
	var messages []models.Message
	result := database.DB.Order("created_at DESC").Limit(limit).Find(&messages)
	return messages, result.Error
}

// Create inserts a new message into the database
func (r *MessageRepository) Create(message models.Message) (models.Message, error) {
	result := database.DB.Create(&message)
	return message, result.Error
}

// MarkRead flags a message as read
func (r *MessageRepository) MarkRead(id uint) error {
	result := database.DB.Model(&models.Message{}).Where("id = ?", id).Update("is_read", true)
	return result.Error
}

// Delete removes a message row permanently
func (r *MessageRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Message{}, id)
	return result.Error
}

// CountAll counts every message ever received
func (r *MessageRepository) CountAll() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Message{}).Count(&count)
	return count, result.Error
}

// CountSince counts messages created at or after the given time
func (r *MessageRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Message{}).Where("created_at >= ?", since).Count(&count)
	return count, result.Error
}

// TrendSince groups message counts by calendar date from the given time,
// ascending. Days with no messages are absent from the result.
func (r *MessageRepository) TrendSince(since time.Time) ([]DailyCount, error) {
	var trend []DailyCount
	result := database.DB.Model(&models.Message{}).
		Select("DATE(created_at) AS date, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&trend)
	return trend, result.Error
}
