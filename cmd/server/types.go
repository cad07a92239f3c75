package main

import (
	restauth "codeberg.org/clipcast/server/api/rest/auth"
	"codeberg.org/clipcast/server/clipcast/login"
	"codeberg.org/clipcast/server/clipcast/tokens"
	"codeberg.org/clipcast/server/clipcast/users"
	"codeberg.org/clipcast/server/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db             *pgxpool.Pool
	config         *config.Config
	userRepo       users.Repository
	tokenRepo      tokens.Repository
	loginService   *login.Service
	authHandlers   *restauth.Handlers
	cleanupService *tokens.CleanupService
	router         *gin.Engine
}
