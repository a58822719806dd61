package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jafarshop/storefront/internal/catalog"
)

// HandleListProducts serves catalog search. Query parameters: q, category,
// seller, brand, min_price, max_price, rating, in_stock, sort.
func HandleListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := catalog.Filters{
			Category: c.Query("category"),
			SellerID: c.Query("seller"),
			Brand:    c.Query("brand"),
		}
		if v := c.Query("min_price"); v != "" {
			filters.MinPrice, _ = strconv.ParseFloat(v, 64)
		}
		if v := c.Query("max_price"); v != "" {
			filters.MaxPrice, _ = strconv.ParseFloat(v, 64)
		}
		if v := c.Query("rating"); v != "" {
			filters.Rating, _ = strconv.ParseFloat(v, 64)
		}
		filters.InStock = c.Query("in_stock") == "true"

		if v := c.Query("sort"); v != "" {
			sortOrder := catalog.SortOrder(v)
			if !sortOrder.IsValid() {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown sort order: " + v})
				return
			}
			filters.Sort = sortOrder
		}

		products := catalog.Search(c.Query("q"), filters)
		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"count":    len(products),
		})
	}
}

// HandleGetProduct resolves a product by id, falling back to slug
func HandleGetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("id")
		product, found := catalog.ProductByID(key)
		if !found {
			product, found = catalog.ProductBySlug(key)
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"product": product,
			"related": catalog.RelatedProducts(product.ID, 4),
		})
	}
}

func HandleListCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
	}
}

func HandleGetCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		category, found := catalog.CategoryBySlug(c.Param("slug"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"category": category,
			"products": catalog.ProductsByCategory(category.Slug),
		})
	}
}

func HandleListSellers() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sellers": catalog.Sellers()})
	}
}

func HandleGetSeller() gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, found := catalog.SellerBySlug(c.Param("slug"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "seller not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"seller":   seller,
			"products": catalog.ProductsBySeller(seller.ID),
		})
	}
}

// HandleListOffers serves the currently valid offers
func HandleListOffers() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"offers": catalog.ActiveOffers(time.Now())})
	}
}

// HandleGetOffer serves one offer by id, with its current validity
func HandleGetOffer() gin.HandlerFunc {
	return func(c *gin.Context) {
		offer, found := catalog.OfferByID(c.Param("id"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"offer":  offer,
			"active": offer.ActiveAt(time.Now()),
		})
	}
}

// HandleHome serves the storefront landing payload in one round trip
func HandleHome() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"featured":     catalog.FeaturedProducts(),
			"best_selling": catalog.BestSelling(4),
			"new_arrivals": catalog.NewArrivals(4),
			"top_sellers":  catalog.TopSellers(3),
			"categories":   catalog.Categories(),
			"offers":       catalog.ActiveOffers(time.Now()),
		})
	}
}
