package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jafarshop/storefront/internal/api/middleware"
	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/store"
)

// WishlistItemRequest identifies the product to save
type WishlistItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func wishlistPayload(w *store.Wishlist) gin.H {
	return gin.H{
		"items":       w.Entries(),
		"total_items": w.TotalItems(),
	}
}

func wishlistEntry(p domain.Product) domain.WishlistEntry {
	entry := domain.WishlistEntry{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		SellerID:  p.SellerID,
	}
	if len(p.Images) > 0 {
		entry.Image = p.Images[0]
	}
	return entry
}

func HandleGetWishlist(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, wishlistPayload(stores.Wishlist(user.ID)))
	}
}

func HandleAddToWishlist(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req WishlistItemRequest
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

		wishlist := stores.Wishlist(user.ID)
		wishlist.Add(wishlistEntry(product))
		c.JSON(http.StatusOK, wishlistPayload(wishlist))
	}
}

// HandleToggleWishlist adds the product when absent, removes it when
// present. The response reports the resulting membership.
func HandleToggleWishlist(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req WishlistItemRequest
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

		wishlist := stores.Wishlist(user.ID)
		wishlist.Toggle(wishlistEntry(product))

		body := wishlistPayload(wishlist)
		body["in_wishlist"] = wishlist.Contains(req.ProductID)
		c.JSON(http.StatusOK, body)
	}
}

func HandleRemoveWishlistItem(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		wishlist := stores.Wishlist(user.ID)
		wishlist.Remove(c.Param("id"))
		c.JSON(http.StatusOK, wishlistPayload(wishlist))
	}
}

func HandleClearWishlist(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		wishlist := stores.Wishlist(user.ID)
		wishlist.Clear()
		c.JSON(http.StatusOK, wishlistPayload(wishlist))
	}
}
