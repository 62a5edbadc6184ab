// internal/handlers/cart.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mfadel/shopfront/internal/services"
	"github.com/mfadel/shopfront/internal/session"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /add_to_cart/:id
func (h *CartHandler) AddToCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c, "Product not found")
		return
	}

	sid := session.FromContext(c)
	product, err := h.cartService.Add(sid, id, 1)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderNotFound(c, "Product not found")
			return
		}
		renderError(c, err)
		return
	}

	setFlash(c, "success", fmt.Sprintf("%s added to cart!", product.Name))
	c.Redirect(http.StatusFound, "/")
}

// GET /cart
func (h *CartHandler) ViewCart(c *gin.Context) {
	sid := session.FromContext(c)
	cart, err := h.cartService.List(sid)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Title":   "Shopping Cart",
		"Flashes": takeFlash(c),
		"Cart":    cart,
	})
}

// GET /remove_from_cart/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c, "Cart item not found")
		return
	}

	if err := h.cartService.Remove(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderNotFound(c, "Cart item not found")
			return
		}
		renderError(c, err)
		return
	}

	setFlash(c, "success", "Item removed from cart!")
	c.Redirect(http.StatusFound, "/cart")
}

// POST /update_cart/:id
func (h *CartHandler) UpdateCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c, "Cart item not found")
		return
	}

	quantity := 1
	if raw := c.PostForm("quantity"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			quantity = parsed
		}
	}

	if err := h.cartService.UpdateQuantity(id, quantity); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderNotFound(c, "Cart item not found")
			return
		}
		renderError(c, err)
		return
	}

	if quantity > 0 {
		setFlash(c, "success", "Cart updated!")
	} else {
		setFlash(c, "success", "Item removed from cart!")
	}
	c.Redirect(http.StatusFound, "/cart")
}
