package models

import "gorm.io/gorm"

// OrderStatus is the lifecycle state of an order. PENDING is the only
// initial state; COMPLETED and CANCELED are terminal.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCanceled  OrderStatus = "CANCELED"
)

// Terminal reports whether no further transition is permitted from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Valid reports whether s is a known status value.
func (s OrderStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCanceled
}

// OrderLine is one product entry of a finalized order. UnitPrice is the
// catalog price frozen at checkout time and is never recomputed.
type OrderLine struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is an immutable purchase record produced by checkout. Total equals
// the sum of Quantity*UnitPrice over Lines, computed once at creation.
// InventoryApplied records that stock was already decremented for this
// order, so a completion can never decrement twice.
type Order struct {
	ID               string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID           string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Address          string      `json:"address" gorm:"type:varchar(255)"`
	Lines            []OrderLine `json:"lines" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total            float64     `json:"total"`
	Status           OrderStatus `json:"status" gorm:"type:varchar(10);index"`
	InventoryApplied bool        `json:"inventory_applied"`
	gorm.Model                   // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
