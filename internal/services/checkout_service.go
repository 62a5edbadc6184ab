// internal/services/checkout_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mfadel/shopfront/internal/database"
	"github.com/mfadel/shopfront/internal/models"
	"github.com/mfadel/shopfront/internal/utils"
)

// CheckoutService converts a session's cart into an order. The commit step is
// a single transaction: order row, item snapshots, and cart cleanup either
// all land or none do.
type CheckoutService struct {
	db *gorm.DB
}

// CheckoutRequest carries the customer contact fields from the checkout form.
// All fields are mandatory; the email must be RFC-shaped.
type CheckoutRequest struct {
	CustomerName  string `form:"customer_name" validate:"required,max=255"`
	CustomerEmail string `form:"customer_email" validate:"required,email"`
	CustomerPhone string `form:"customer_phone" validate:"required,max=64"`
	Address       string `form:"address" validate:"required"`
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{db: db}
}

// PlaceOrder commits the session's cart as a new order. Prices are read from
// the live Product rows at commit time, not from any earlier snapshot.
// Returns ErrEmptyCart when the session has no cart rows.
func (s *CheckoutService) PlaceOrder(sessionID string, req *CheckoutRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order *models.Order
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var items []models.CartItem
		err := tx.Preload("Product").
			Where("session_id = ?", sessionID).
			Order("id asc").
			Find(&items).Error
		if err != nil {
			return fmt.Errorf("failed to load cart items: %w", err)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))
		for i := range items {
			total += items[i].Subtotal()
			orderItems = append(orderItems, models.OrderItem{
				ProductID: items[i].ProductID,
				Quantity:  items[i].Quantity,
				Price:     items[i].Product.Price,
			})
		}

		order = &models.Order{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Address:       req.Address,
			TotalAmount:   total,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		order.Items = orderItems

		if err := tx.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder loads an order with its line items for the confirmation view.
func (s *CheckoutService) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Preload("Items.Product").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}
	return &order, nil
}
