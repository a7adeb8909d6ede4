package repositories

import (
	"storefront/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id string) error
}

// MessageRepository defines the interface for contact message data access.
type MessageRepository interface {
	GetAll() ([]models.Message, error)
	GetByID(id string) (*models.Message, error)
	Create(message *models.Message) error
	Delete(id string) error
}
