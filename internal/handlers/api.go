// internal/handlers/api.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mfadel/shopfront/internal/services"
	"github.com/mfadel/shopfront/internal/session"
	"github.com/mfadel/shopfront/internal/utils"
)

// APIHandler exposes the catalog and the session's cart as read-only JSON for
// browser clients on other origins.
type APIHandler struct {
	catalogService *services.CatalogService
	cartService    *services.CartService
}

func NewAPIHandler(catalogService *services.CatalogService, cartService *services.CartService) *APIHandler {
	return &APIHandler{
		catalogService: catalogService,
		cartService:    cartService,
	}
}

// GET /api/products
func (h *APIHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, products)
}

// GET /api/products/:id
func (h *APIHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.NotFoundResponse(c, "product")
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, product)
}

// GET /api/cart
func (h *APIHandler) GetCart(c *gin.Context) {
	sid := session.FromContext(c)
	cart, err := h.cartService.List(sid)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": cart.Items,
		"total": cart.Total,
	})
}
