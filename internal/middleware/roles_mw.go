package middleware

import (
	"net/http"

	"jogging_tracker/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
				Kind:    model.KindAuthorization,
				Message: "role not found in token, ensure JWT middleware runs first",
			})
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
				Kind:    model.KindAuthorization,
				Message: "invalid role type in token",
			})
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
				Kind:    model.KindAuthorization,
				Message: "you do not have permission to access this resource",
			})
			return
		}

		c.Next()
	}
}

// StaffMiddleware allows managers and admins, the roles that manage user
// accounts. Regular users are always denied.
func StaffMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleManager, model.RoleAdmin)
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}
