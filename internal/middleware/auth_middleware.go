package middleware

import (
	"net/http"
	"strings"

	"pulse/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
)

// JWTAuth verifies the Authorization header and stores the caller's
// identity in the gin context.
func JWTAuth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization header is required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := tm.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated caller holds one of
// the allowed roles. Must run after JWTAuth.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(UserRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
			})
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Forbidden: Insufficient permissions",
		})
	}
}

// CallerID returns the authenticated user's ID, or nil when the request is
// unauthenticated (health checks).
func CallerID(c *gin.Context) *uint {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}

// CallerRole returns the authenticated user's role, or "" when absent.
func CallerRole(c *gin.Context) string {
	v, exists := c.Get(UserRoleKey)
	if !exists {
		return ""
	}
	role, _ := v.(string)
	return role
}
