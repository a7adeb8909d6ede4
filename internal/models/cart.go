package models

import "gorm.io/gorm"

// Cart is the mutable pre-purchase basket. Each account owns at most one
// open cart (enforced by the unique index on UserID); checkout empties the
// lines and the cart stays around for the next basket.
type Cart struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)" validate:"required,uuid"`
	Lines      []CartLine `json:"lines" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// CartLine is one product+quantity entry in an open cart. Re-adding the same
// product appends a new line rather than merging quantities.
type CartLine struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID    string `json:"cart_id" gorm:"index;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"type:varchar(36)" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}
