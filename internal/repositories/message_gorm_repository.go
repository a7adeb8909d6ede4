package repositories

import (
	"fmt"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{
		db: db,
	}
}

// GetAll retrieves all messages from the database.
func (r *GORMMessageRepository) GetAll() ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get all messages: %w", err)
	}
	return messages, nil
}

// GetByID retrieves a single message by its ID from the database.
func (r *GORMMessageRepository) GetByID(id string) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("message with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get message by ID %s: %w", id, err)
	}
	return &message, nil
}

// Create creates a new message in the database.
func (r *GORMMessageRepository) Create(message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// Delete deletes a message by its ID from the database.
func (r *GORMMessageRepository) Delete(id string) error {
	res := r.db.Delete(&models.Message{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("message with ID %s not found for deletion", id)
	}
	return nil
}
