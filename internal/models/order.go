// internal/models/order.go
package models

import "time"

// Order is the immutable record of a completed checkout. TotalAmount and the
// item prices are snapshots taken at commit time; later catalog price changes
// never touch them.
type Order struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	CustomerName  string  `json:"customer_name" gorm:"size:255;not null"`
	CustomerEmail string  `json:"customer_email" gorm:"size:255;not null"`
	CustomerPhone string  `json:"customer_phone" gorm:"size:64;not null"`
	Address       string  `json:"address" gorm:"type:text;not null"`
	TotalAmount   float64 `json:"total_amount" gorm:"type:decimal(10,2);not null"`

	CreatedAt time.Time `json:"created_at"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"type:decimal(10,2);not null"`

	Product Product `json:"product" gorm:"foreignKey:ProductID"`
}
