package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// MessageService handles plain contact message CRUD.
type MessageService struct {
	repo repositories.MessageRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(repo repositories.MessageRepository) *MessageService {
	return &MessageService{
		repo: repo,
	}
}

// GetAllMessages retrieves all messages.
func (s *MessageService) GetAllMessages() ([]models.Message, error) {
	return s.repo.GetAll()
}

// GetMessageByID retrieves a single message by its ID.
func (s *MessageService) GetMessageByID(id string) (*models.Message, error) {
	return s.repo.GetByID(id)
}

// CreateMessage stores a new contact message.
func (s *MessageService) CreateMessage(message *models.Message) error {
	return s.repo.Create(message)
}

// DeleteMessage deletes a message by its ID.
func (s *MessageService) DeleteMessage(id string) error {
	return s.repo.Delete(id)
}
