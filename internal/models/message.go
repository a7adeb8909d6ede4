package models

import "gorm.io/gorm"

// Message is a contact message left by a visitor.
type Message struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Content    string `json:"content" gorm:"type:text" validate:"required,max=2000"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
