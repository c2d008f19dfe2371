package middleware

import (
	"net/http"

	"asset-inventory-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(RoleKey)
		if !exists {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		userRole, ok := role.(string)
		if !ok {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

// DashboardReaders admits every role allowed to read inventory data.
func DashboardReaders() gin.HandlerFunc {
	return RoleMiddleware(RoleViewer, RoleAdmin)
}
