// internal/services/service_test.go
package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mfadel/shopfront/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Stock:       10,
		Category:    "Test",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func validCheckout() *CheckoutRequest {
	return &CheckoutRequest{
		CustomerName:  "Jordan Blake",
		CustomerEmail: "jordan@example.com",
		CustomerPhone: "+1 555 0100",
		Address:       "12 Harbor Street, Springfield",
	}
}
