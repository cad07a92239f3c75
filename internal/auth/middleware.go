package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// validates the access token and adds user info to context.
// The token comes from the access-token cookie set by the callback
// handler, or from a bearer Authorization header for API clients.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		claims, err := ValidateAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		setPrincipal(c, claims)
		c.Next()
	}
}

// validates the access token if present but doesn't require it
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		if token != "" {
			claims, err := ValidateAccessToken(token)

			if err == nil {
				setPrincipal(c, claims)
			}
		}

		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")

	if !exists {
		return "", false
	}

	return userID.(string), true
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")

	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

func setPrincipal(c *gin.Context, claims *AccessClaims) {
	c.Set("user_id", claims.Subject)
	c.Set("google_sub", claims.GoogleSub)
	c.Set("user_email", claims.Email)
	c.Set("user_handle", claims.Handle)
}
