package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/api/handlers"
	"github.com/jafarshop/storefront/internal/api/middleware"
	"github.com/jafarshop/storefront/internal/checkout"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/identity"
	"github.com/jafarshop/storefront/internal/repository"
	"github.com/jafarshop/storefront/internal/store"
	"github.com/jafarshop/storefront/internal/wallet"
)

// Deps bundles the services the router wires into handlers
type Deps struct {
	Identity identity.Provider
	Stores   *store.Manager
	Checkout *checkout.Service
	Wallet   *wallet.Service
	Orders   repository.OrderRepository
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Public catalog
		v1.GET("/home", handlers.HandleHome())
		v1.GET("/products", handlers.HandleListProducts())
		v1.GET("/products/:id", handlers.HandleGetProduct())
		v1.GET("/categories", handlers.HandleListCategories())
		v1.GET("/categories/:slug", handlers.HandleGetCategory())
		v1.GET("/sellers", handlers.HandleListSellers())
		v1.GET("/sellers/:slug", handlers.HandleGetSeller())
		v1.GET("/offers", handlers.HandleListOffers())
		v1.GET("/offers/:id", handlers.HandleGetOffer())

		// Auth
		v1.POST("/auth/login", handlers.HandleLogin(deps.Identity, logger))
		v1.POST("/auth/register", handlers.HandleRegister(deps.Identity, logger))

		// Authenticated routes
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(deps.Identity, logger))
		{
			authed.POST("/auth/logout", handlers.HandleLogout(deps.Identity, logger))
			authed.GET("/auth/me", handlers.HandleMe())

			authed.GET("/cart", handlers.HandleGetCart(deps.Stores))
			authed.POST("/cart/items", handlers.HandleAddToCart(deps.Stores, logger))
			authed.PUT("/cart/items/:id", handlers.HandleUpdateCartItem(deps.Stores))
			authed.DELETE("/cart/items/:id", handlers.HandleRemoveCartItem(deps.Stores))
			authed.DELETE("/cart", handlers.HandleClearCart(deps.Stores))

			authed.GET("/wishlist", handlers.HandleGetWishlist(deps.Stores))
			authed.POST("/wishlist/items", handlers.HandleAddToWishlist(deps.Stores))
			authed.POST("/wishlist/toggle", handlers.HandleToggleWishlist(deps.Stores))
			authed.DELETE("/wishlist/items/:id", handlers.HandleRemoveWishlistItem(deps.Stores))
			authed.DELETE("/wishlist", handlers.HandleClearWishlist(deps.Stores))

			authed.POST("/checkout", handlers.HandleBeginCheckout(deps.Checkout, logger))
			authed.GET("/checkout", handlers.HandleGetCheckout(deps.Checkout, logger))
			authed.POST("/checkout/address", handlers.HandleSubmitAddress(deps.Checkout, logger))
			authed.POST("/checkout/back", handlers.HandleCheckoutBack(deps.Checkout, logger))
			authed.POST("/checkout/payment", handlers.HandleSubmitPayment(deps.Checkout, logger))
			authed.DELETE("/checkout", handlers.HandleResetCheckout(deps.Checkout))

			authed.GET("/wallet", handlers.HandleGetWallet(deps.Wallet))
			authed.POST("/wallet/recharge", handlers.HandleRecharge(deps.Wallet, logger))

			authed.GET("/orders", handlers.HandleListOrders(deps.Orders, logger))
			authed.GET("/orders/:id", handlers.HandleGetOrder(deps.Orders, logger))
		}

		// Admin routes
		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(middleware.AuthMiddleware(deps.Identity, logger))
		adminRoutes.Use(middleware.RequireAdmin(cfg.AdminEmail, logger))
		{
			adminRoutes.GET("/orders", handlers.HandleAdminListOrders(deps.Orders, logger))
			adminRoutes.GET("/orders/:id", handlers.HandleAdminGetOrder(deps.Orders, logger))
			adminRoutes.GET("/stats", handlers.HandleAdminStats(deps.Orders, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
