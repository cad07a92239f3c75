package auth

import (
	"codeberg.org/clipcast/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes. The login flow lives at the
// router root so the callback path matches the redirect URI registered
// with Google; profile routes live under the API group.
func RegisterRoutes(router *gin.Engine, api *gin.RouterGroup, h *Handlers, rateLimiter gin.HandlerFunc) {
	router.GET("/login", rateLimiter, h.LoginHandler())
	router.GET("/callback", rateLimiter, h.CallbackHandler())
	router.POST("/logout", auth.OptionalAuthMiddleware(), h.LogoutHandler())

	authGroup := api.Group("/auth")
	{
		authGroup.GET("/me", auth.AuthMiddleware(), h.CurrentUserHandler())
	}
}
