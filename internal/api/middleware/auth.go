package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/identity"
)

const (
	userContextKey  = "user"
	tokenContextKey = "token"
)

// AuthMiddleware resolves the bearer token against the identity provider
// and stores the user in the request context
func AuthMiddleware(provider identity.Provider, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}
		token := parts[1]

		user, err := provider.CurrentUser(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Authentication failed", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// RequireAdmin gates a route group to the configured admin account. Runs
// after AuthMiddleware.
func RequireAdmin(adminEmail string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		if !strings.EqualFold(user.Email, adminEmail) {
			logger.Warn("Admin access denied", zap.String("email", user.Email))
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserFromContext retrieves the authenticated user from the gin context
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	val, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// GetTokenFromContext retrieves the session token from the gin context
func GetTokenFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(tokenContextKey)
	if !exists {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}
