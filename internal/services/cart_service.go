// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mfadel/shopfront/internal/models"
)

// CartService manages the per-session cart rows. One row exists per
// (session_id, product_id); repeated adds bump the quantity instead of
// inserting duplicates.
type CartService struct {
	db *gorm.DB
}

// CartView is an aggregate of the session's items, each with its Product
// loaded, and the total recomputed from current catalog prices.
type CartView struct {
	Items []models.CartItem
	Total float64
}

func (v *CartView) IsEmpty() bool {
	return len(v.Items) == 0
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Add puts qty units of the product into the session's cart. Returns the
// product for caller-facing messaging, or ErrNotFound when the product does
// not exist. Stock is not checked.
func (s *CartService) Add(sessionID string, productID uint, qty int) (*models.Product, error) {
	if qty < 1 {
		qty = 1
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load product %d: %w", productID, err)
	}

	var item models.CartItem
	err := s.db.Where("session_id = ? AND product_id = ?", sessionID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{SessionID: sessionID, ProductID: productID, Quantity: qty}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart item: %w", err)
		}
		return &product, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}

	item.Quantity += qty
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return &product, nil
}

// List returns the session's cart with the total recomputed from the live
// product prices. Never cached.
func (s *CartService) List(sessionID string) (*CartView, error) {
	var items []models.CartItem
	err := s.db.Preload("Product").
		Where("session_id = ?", sessionID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	view := &CartView{Items: items}
	for i := range items {
		view.Total += items[i].Subtotal()
	}
	return view, nil
}

// UpdateQuantity sets the item's quantity, deleting the row when qty is not
// positive. Note: items are addressed by row ID alone, without a
// session-ownership check.
func (s *CartService) UpdateQuantity(itemID uint, qty int) error {
	var item models.CartItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load cart item %d: %w", itemID, err)
	}

	if qty <= 0 {
		if err := s.db.Delete(&item).Error; err != nil {
			return fmt.Errorf("failed to delete cart item %d: %w", itemID, err)
		}
		return nil
	}

	item.Quantity = qty
	if err := s.db.Save(&item).Error; err != nil {
		return fmt.Errorf("failed to update cart item %d: %w", itemID, err)
	}
	return nil
}

// Remove deletes the item unconditionally.
func (s *CartService) Remove(itemID uint) error {
	var item models.CartItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load cart item %d: %w", itemID, err)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("failed to delete cart item %d: %w", itemID, err)
	}
	return nil
}
