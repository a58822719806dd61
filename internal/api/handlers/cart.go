package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/api/middleware"
	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/store"
)

// AddToCartRequest adds a product to the cart by id. Display fields are
// denormalized from the catalog at add time.
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest sets a line's quantity. Zero or less removes the
// line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func cartPayload(cart *store.Cart) gin.H {
	return gin.H{
		"items":       cart.Lines(),
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
	}
}

// cartLine builds a cart line from a catalog product. Lines whose stock
// sits under the default cap carry the stock as their cap.
func cartLine(p domain.Product) domain.CartLine {
	line := domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		SellerID:  p.SellerID,
	}
	if len(p.Images) > 0 {
		line.Image = p.Images[0]
	}
	if p.Stock > 0 && p.Stock < domain.DefaultMaxQuantity {
		line.MaxQuantity = p.Stock
	}
	return line
}

func HandleGetCart(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, cartPayload(stores.Cart(user.ID)))
	}
}

func HandleAddToCart(stores *store.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, found := catalog.ProductByID(req.ProductID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		cart := stores.Cart(user.ID)
		line := cartLine(product)
		clamped := cart.Add(line, req.Quantity)

		body := cartPayload(cart)
		body["clamped"] = clamped
		if clamped {
			body["message"] = fmt.Sprintf("الحد الأقصى للكمية هو %d", line.Cap())
		} else {
			body["message"] = "تم إضافة المنتج إلى السلة"
		}
		logger.Debug("Cart add",
			zap.String("user_id", user.ID),
			zap.String("product_id", req.ProductID),
			zap.Bool("clamped", clamped),
		)
		c.JSON(http.StatusOK, body)
	}
}

func HandleUpdateCartItem(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		cart := stores.Cart(user.ID)
		clamped := cart.SetQuantity(c.Param("id"), req.Quantity)

		body := cartPayload(cart)
		body["clamped"] = clamped
		c.JSON(http.StatusOK, body)
	}
}

func HandleRemoveCartItem(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		cart := stores.Cart(user.ID)
		cart.Remove(c.Param("id"))
		c.JSON(http.StatusOK, cartPayload(cart))
	}
}

func HandleClearCart(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		cart := stores.Cart(user.ID)
		cart.Clear()
		c.JSON(http.StatusOK, cartPayload(cart))
	}
}
