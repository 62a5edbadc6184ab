// internal/services/checkout_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfadel/shopfront/internal/models"
)

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := testDB(t)
	svc := NewCheckoutService(db)

	_, err := svc.PlaceOrder("sess-1", validCheckout())
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderCommitsCartAsOrder(t *testing.T) {
	db := testDB(t)
	cart := NewCartService(db)
	svc := NewCheckoutService(db)

	laptop := seedProduct(t, db, "Laptop", 999.99)
	shirt := seedProduct(t, db, "T-Shirt", 29.99)

	_, err := cart.Add("sess-1", laptop.ID, 1)
	require.NoError(t, err)
	_, err = cart.Add("sess-1", shirt.ID, 2)
	require.NoError(t, err)

	order, err := svc.PlaceOrder("sess-1", validCheckout())
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	assert.InDelta(t, 1059.97, order.TotalAmount, 0.001)
	assert.Equal(t, "Jordan Blake", order.CustomerName)

	require.Len(t, order.Items, 2)
	assert.Equal(t, laptop.ID, order.Items[0].ProductID)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.InDelta(t, 999.99, order.Items[0].Price, 0.001)
	assert.Equal(t, shirt.ID, order.Items[1].ProductID)
	assert.Equal(t, 2, order.Items[1].Quantity)
	assert.InDelta(t, 29.99, order.Items[1].Price, 0.001)

	// exactly one order, cart fully cleared
	var orderCount, cartCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.CartItem{}).Where("session_id = ?", "sess-1").Count(&cartCount).Error)
	assert.EqualValues(t, 1, orderCount)
	assert.Zero(t, cartCount)

	view, err := NewCartService(db).List("sess-1")
	require.NoError(t, err)
	assert.True(t, view.IsEmpty())
	assert.Zero(t, view.Total)
}

func TestPlaceOrderChargesLivePrice(t *testing.T) {
	db := testDB(t)
	cart := NewCartService(db)
	svc := NewCheckoutService(db)

	laptop := seedProduct(t, db, "Laptop", 999.99)
	_, err := cart.Add("sess-1", laptop.ID, 1)
	require.NoError(t, err)

	// price changes after the add but before the commit: the latest price wins
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", laptop.ID).Update("price", 1099.99).Error)

	order, err := svc.PlaceOrder("sess-1", validCheckout())
	require.NoError(t, err)
	assert.InDelta(t, 1099.99, order.TotalAmount, 0.001)
	assert.InDelta(t, 1099.99, order.Items[0].Price, 0.001)
}

func TestOrderItemPriceIsSnapshot(t *testing.T) {
	db := testDB(t)
	cart := NewCartService(db)
	svc := NewCheckoutService(db)

	laptop := seedProduct(t, db, "Laptop", 999.99)
	_, err := cart.Add("sess-1", laptop.ID, 1)
	require.NoError(t, err)

	order, err := svc.PlaceOrder("sess-1", validCheckout())
	require.NoError(t, err)

	// a catalog price change after checkout never touches the order
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", laptop.ID).Update("price", 1.00).Error)

	reloaded, err := svc.GetOrder(order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 999.99, reloaded.TotalAmount, 0.001)
	require.Len(t, reloaded.Items, 1)
	assert.InDelta(t, 999.99, reloaded.Items[0].Price, 0.001)
}

func TestPlaceOrderRejectsInvalidForm(t *testing.T) {
	db := testDB(t)
	cart := NewCartService(db)
	svc := NewCheckoutService(db)

	laptop := seedProduct(t, db, "Laptop", 999.99)
	_, err := cart.Add("sess-1", laptop.ID, 1)
	require.NoError(t, err)

	req := validCheckout()
	req.CustomerEmail = "not-an-email"

	_, err = svc.PlaceOrder("sess-1", req)
	require.Error(t, err)

	// no partial state: cart intact, no order rows
	var orderCount, cartCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&cartCount).Error)
	assert.Zero(t, orderCount)
	assert.EqualValues(t, 1, cartCount)
}

func TestPlaceOrderLeavesOtherSessionsAlone(t *testing.T) {
	db := testDB(t)
	cart := NewCartService(db)
	svc := NewCheckoutService(db)

	laptop := seedProduct(t, db, "Laptop", 999.99)
	_, err := cart.Add("sess-1", laptop.ID, 1)
	require.NoError(t, err)
	_, err = cart.Add("sess-2", laptop.ID, 2)
	require.NoError(t, err)

	_, err = svc.PlaceOrder("sess-1", validCheckout())
	require.NoError(t, err)

	other, err := cart.List("sess-2")
	require.NoError(t, err)
	require.Len(t, other.Items, 1)
	assert.Equal(t, 2, other.Items[0].Quantity)
}

func TestGetOrderUnknown(t *testing.T) {
	db := testDB(t)
	svc := NewCheckoutService(db)

	_, err := svc.GetOrder(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
