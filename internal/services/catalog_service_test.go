// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsInsertionOrder(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)

	seedProduct(t, db, "Laptop", 999.99)
	seedProduct(t, db, "T-Shirt", 29.99)

	products, err := svc.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Laptop", products[0].Name)
	assert.Equal(t, "T-Shirt", products[1].Name)
}

func TestGetProduct(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)

	laptop := seedProduct(t, db, "Laptop", 999.99)

	product, err := svc.GetProduct(laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", product.Name)

	_, err = svc.GetProduct(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
