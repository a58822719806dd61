package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/checkout"
	"github.com/jafarshop/storefront/pkg/errors"
)

// writeError maps service errors onto HTTP responses. Unknown errors are
// logged and reported as 500 without leaking detail.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrValidation:
		body := gin.H{"error": e.Message}
		if len(e.Fields) > 0 {
			body["fields"] = e.Fields
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	case *errors.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": e.Message})
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrInvalidStateTransition:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	default:
		switch err {
		case checkout.ErrCartEmpty:
			c.JSON(http.StatusConflict, gin.H{"error": "cart is empty", "redirect": "/cart"})
		case checkout.ErrNoFlow:
			c.JSON(http.StatusNotFound, gin.H{"error": "no checkout in progress"})
		default:
			logger.Error("Request failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
	}
}
