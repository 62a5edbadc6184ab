// internal/models/cart.go
package models

import "time"

// CartItem is one line of a visitor's cart, scoped by the opaque session
// identifier. Uniqueness of (session_id, product_id) is enforced by
// CartService, not by the schema.
type CartItem struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	SessionID string `json:"session_id" gorm:"size:64;not null;index"`
	ProductID uint   `json:"product_id" gorm:"not null"`
	Quantity  int    `json:"quantity" gorm:"not null;default:1"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product Product `json:"product" gorm:"foreignKey:ProductID"`
}

// Subtotal is the line amount at the product's current price. Value receiver
// so templates can call it on ranged items.
func (ci CartItem) Subtotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
