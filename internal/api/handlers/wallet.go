package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/api/middleware"
	"github.com/jafarshop/storefront/internal/format"
	"github.com/jafarshop/storefront/internal/wallet"
)

// RechargeRequest credits the wallet
type RechargeRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

func HandleGetWallet(svc *wallet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		balance := svc.Balance(user.ID)
		c.JSON(http.StatusOK, gin.H{
			"balance":           balance,
			"balance_formatted": format.Price(balance),
			"transactions":      svc.Transactions(user.ID),
		})
	}
}

func HandleRecharge(svc *wallet.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req RechargeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if req.Method == "" {
			req.Method = "cash"
		}

		tx, err := svc.Recharge(c.Request.Context(), user.ID, req.Amount, req.Method)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"transaction": tx,
			"balance":     svc.Balance(user.ID),
			"message":     "تم شحن المحفظة بنجاح",
		})
	}
}
