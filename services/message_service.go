package services

import (
	"errors"

	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/errs"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
	"gorm.io/gorm"
)

// MessageService handles contact intake and the admin message screens
type MessageService struct {
	messageRepo *repositories.MessageRepository
	mailer      *Mailer
}

// NewMessageService creates a new message service instance
func NewMessageService(mailer *Mailer) *MessageService {
	return &MessageService{
		messageRepo: repositories.NewMessageRepository(),
		mailer:      mailer,
	}
}

// ListMessages retrieves all messages, newest first
func (s *MessageService) ListMessages() ([]models.Message, error) {
	return s.messageRepo.FindAll()
}

// GetMessage retrieves a message and marks it read, the side effect of
// opening it in the admin panel
func (s *MessageService) GetMessage(id uint) (models.Message, error) {
	message, err := s.messageRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return message, errs.NewNotFound("message")
	}
	if err != nil {
		return message, err
	}

	if !message.IsRead {
		if err := s.messageRepo.MarkRead(id); err != nil {
			return message, err
		}
		message.IsRead = true
	}
	return message, nil
}

// CreateMessage stores an inbound contact form submission and fires the
// notification email. Notification failures never fail the request.
func (s *MessageService) CreateMessage(req dto.ContactRequest) (models.Message, error) {
	message := models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	created, err := s.messageRepo.Create(message)
	if err != nil {
		return created, err
	}

	if s.mailer != nil {
		s.mailer.NotifyNewMessage(created)
	}
	return created, nil
}

// DeleteMessage permanently removes a message
func (s *MessageService) DeleteMessage(id uint) error {
	if _, err := s.messageRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("message")
		}
		return err
	}
	return s.messageRepo.Delete(id)
}
