// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mfadel/shopfront/internal/config"
	"github.com/mfadel/shopfront/internal/handlers"
	"github.com/mfadel/shopfront/internal/middleware"
	"github.com/mfadel/shopfront/internal/services"
	"github.com/mfadel/shopfront/internal/session"
	"github.com/mfadel/shopfront/internal/templates"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(db)
	cartService := services.NewCartService(db)
	checkoutService := services.NewCheckoutService(db)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(cartService, checkoutService)
	apiHandler := handlers.NewAPIHandler(catalogService, cartService)

	sessionManager := session.NewManager(cfg.Session)

	// Initialize Gin router
	r := gin.New()
	r.SetHTMLTemplate(templates.Load())
	r.MaxMultipartMemory = int64(cfg.Upload.MaxSizeMB) << 20

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())
	r.Use(sessionManager.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Storefront pages
	r.GET("/", catalogHandler.Index)
	r.GET("/product/:id", catalogHandler.ProductDetail)
	r.GET("/add_to_cart/:id", cartHandler.AddToCart)
	r.GET("/cart", cartHandler.ViewCart)
	r.GET("/remove_from_cart/:id", cartHandler.RemoveFromCart)
	r.POST("/update_cart/:id", cartHandler.UpdateCart)
	r.GET("/checkout", checkoutHandler.ShowCheckout)
	r.POST("/checkout", middleware.CheckoutRateLimit(), checkoutHandler.SubmitCheckout)
	r.GET("/order_success/:id", checkoutHandler.OrderSuccess)

	// Read-only JSON API
	api := r.Group("/api")
	{
		api.GET("/products", apiHandler.ListProducts)
		api.GET("/products/:id", apiHandler.GetProduct)
		api.GET("/cart", apiHandler.GetCart)
	}

	return r
}
