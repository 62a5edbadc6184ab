// internal/handlers/checkout.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfadel/shopfront/internal/services"
	"github.com/mfadel/shopfront/internal/session"
	"github.com/mfadel/shopfront/internal/utils"
)

type CheckoutHandler struct {
	cartService     *services.CartService
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(cartService *services.CartService, checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

// GET /checkout
func (h *CheckoutHandler) ShowCheckout(c *gin.Context) {
	sid := session.FromContext(c)
	cart, err := h.cartService.List(sid)
	if err != nil {
		renderError(c, err)
		return
	}
	if cart.IsEmpty() {
		setFlash(c, "warning", "Your cart is empty!")
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	h.renderForm(c, cart, &services.CheckoutRequest{}, nil)
}

// POST /checkout
func (h *CheckoutHandler) SubmitCheckout(c *gin.Context) {
	sid := session.FromContext(c)
	cart, err := h.cartService.List(sid)
	if err != nil {
		renderError(c, err)
		return
	}
	if cart.IsEmpty() {
		setFlash(c, "warning", "Your cart is empty!")
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, err)
		return
	}

	// Validation failures re-render the form with inline messages and leave
	// the cart untouched; the visitor resubmits from scratch.
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		h.renderForm(c, cart, &req, validationErrors)
		return
	}

	order, err := h.checkoutService.PlaceOrder(sid, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			setFlash(c, "warning", "Your cart is empty!")
			c.Redirect(http.StatusFound, "/cart")
			return
		}
		renderError(c, err)
		return
	}

	setFlash(c, "success", fmt.Sprintf("Order #%d placed successfully!", order.ID))
	c.Redirect(http.StatusFound, fmt.Sprintf("/order_success/%d", order.ID))
}

// GET /order_success/:id
func (h *CheckoutHandler) OrderSuccess(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c, "Order not found")
		return
	}

	order, err := h.checkoutService.GetOrder(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderNotFound(c, "Order not found")
			return
		}
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "order_success.html", gin.H{
		"Title":   "Order Confirmation",
		"Flashes": takeFlash(c),
		"Order":   order,
	})
}

func (h *CheckoutHandler) renderForm(c *gin.Context, cart *services.CartView, form *services.CheckoutRequest, validationErrors []utils.ValidationError) {
	fieldErrors := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		if _, taken := fieldErrors[ve.Field]; !taken {
			fieldErrors[ve.Field] = ve.Message
		}
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Title":   "Checkout",
		"Flashes": takeFlash(c),
		"Cart":    cart,
		"Form":    form,
		"Errors":  fieldErrors,
	})
}
