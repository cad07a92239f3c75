package main

import (
	"codeberg.org/clipcast/server/api/rest/auth"
	"codeberg.org/clipcast/server/api/rest/health"
	"codeberg.org/clipcast/server/api/rest/users"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config))
	router.GET("/health", health.Handler)

	rateLimiter := RateLimitMiddleware()

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(router, v1, server.authHandlers, rateLimiter)
		users.RegisterRoutes(v1, server.userRepo)
	}
}
