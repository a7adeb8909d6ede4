package models

import "gorm.io/gorm"

// Role determines what a user may do. ADMIN users manage the catalog and
// the order lifecycle; USER accounts shop.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents an account of the store.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Telephone  string `json:"telephone" gorm:"type:varchar(30)" validate:"omitempty,max=30"`
	Role       Role   `json:"role" gorm:"type:varchar(10);default:USER" validate:"omitempty,oneof=USER ADMIN"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
