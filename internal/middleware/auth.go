package middleware

import (
	"errors"
	"net/http"
	"strings"

	"asset-inventory-dashboard/internal/config"
	appErrors "asset-inventory-dashboard/pkg/errors"
	"asset-inventory-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey = "userID"
	RoleKey   = "role"
)

// AuthMiddleware accepts bearer tokens signed with the configured secret.
// Tokens are issued elsewhere; a non-empty issuer setting must match the token's.
func AuthMiddleware(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.Secret)
		if err != nil {
			message := "Invalid or expired token"
			if errors.Is(err, appErrors.ErrTokenExpired) {
				message = appErrors.ErrTokenExpired.Error()
			}
			utils.ErrorResponse(c, http.StatusUnauthorized, message)
			c.Abort()
			return
		}

		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)

		c.Next()
	}
}
