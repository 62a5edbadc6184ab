// internal/services/errors.go
package services

import "errors"

var (
	// ErrNotFound covers missing products, cart items, and orders.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart is returned when checkout is attempted with no cart rows.
	ErrEmptyCart = errors.New("cart is empty")
)
