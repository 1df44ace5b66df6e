package middleware

import (
	"net/http"
	"strings"

	"jogging_tracker/internal/model"
	"jogging_tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey  = "authUser"
	AuthEmailKey = "authEmail"
	AuthRoleKey  = "authRole"
	AuthTokenKey = "authToken"
)

// JWTAuthMiddleware authenticates requests from a bearer token. The three
// failure modes are kept observably distinct: no token at all (401),
// a revoked token (403), and an invalid or expired token (403).
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil, blacklist *utils.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Kind:    model.KindAuthentication,
				Message: "access denied, token missing",
			})
			return
		}

		// Revocation is checked before signature so an explicitly revoked
		// token never reads as merely invalid.
		if blacklist.IsRevoked(tokenString) {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
				Kind:    model.KindAuthentication,
				Message: "token is blacklisted, please log in again",
			})
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
				Kind:    model.KindAuthentication,
				Message: "invalid or expired token",
			})
			return
		}

		// Set user information in context
		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthEmailKey, claims.Email)
		c.Set(AuthRoleKey, claims.Role)
		c.Set(AuthTokenKey, tokenString)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}
