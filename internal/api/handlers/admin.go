package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/repository"
)

// HandleAdminListOrders serves all orders across users
func HandleAdminListOrders(orders repository.OrderRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c)
		list, err := orders.ListAll(c.Request.Context(), limit, offset)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orders": list,
			"count":  len(list),
		})
	}
}

// HandleAdminGetOrder serves any order by id
func HandleAdminGetOrder(orders repository.OrderRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		order, err := orders.GetByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// HandleAdminStats serves the dashboard summary: catalog quick stats plus
// order volume and revenue
func HandleAdminStats(orders repository.OrderRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := orders.ListAll(c.Request.Context(), 0, 0)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		revenue := 0.0
		for _, o := range all {
			revenue += o.Total
		}

		c.JSON(http.StatusOK, gin.H{
			"catalog":       catalog.QuickStats(),
			"total_orders":  len(all),
			"total_revenue": revenue,
		})
	}
}
