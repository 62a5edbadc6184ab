// internal/models/product.go
package models

import "time"

// Product is a catalog entry. Rows are seeded once at startup and treated as
// read-only by every request path.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null;check:price >= 0"`
	Stock       int     `json:"stock" gorm:"default:0;check:stock >= 0"`
	Category    string  `json:"category" gorm:"size:100;index"`
	ImageURL    string  `json:"image_url" gorm:"size:512"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
