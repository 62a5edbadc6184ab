// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mfadel/shopfront/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /
func (h *CatalogHandler) Index(c *gin.Context) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":    "Products",
		"Flashes":  takeFlash(c),
		"Products": products,
	})
}

// GET /product/:id
func (h *CatalogHandler) ProductDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c, "Product not found")
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderNotFound(c, "Product not found")
			return
		}
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "product.html", gin.H{
		"Title":   product.Name,
		"Flashes": takeFlash(c),
		"Product": product,
	})
}

// parseID reads a positive integer path parameter. A malformed value is
// treated the same as a missing row.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func renderNotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"Title":   "Not Found",
		"Message": message,
	})
}

func renderError(c *gin.Context, err error) {
	c.Error(err)
	c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
}
