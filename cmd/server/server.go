package main

import (
	"context"
	"fmt"
	"time"

	restauth "codeberg.org/clipcast/server/api/rest/auth"
	"codeberg.org/clipcast/server/clipcast/login"
	"codeberg.org/clipcast/server/clipcast/tokens"
	"codeberg.org/clipcast/server/clipcast/users"
	"codeberg.org/clipcast/server/internal/config"
	"codeberg.org/clipcast/server/internal/images"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// per-request timeout for fetching a profile image from Google
	imageFetchTimeout = 10 * time.Second

	// how often expired refresh tokens are purged from the store
	tokenCleanupInterval = 1 * time.Hour
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small; the auth flow is short bursts of tiny queries
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	tokenRepo := tokens.NewRepository(db)

	fetcher := images.NewFetcher(imageFetchTimeout)
	loginService := login.NewService(userRepo, tokenRepo, fetcher)
	authHandlers := restauth.NewHandlers(loginService, userRepo, cfg.ClientAddress)

	// purge expired refresh tokens in the background
	cleanupService := tokens.NewCleanupService(tokenRepo, tokenCleanupInterval)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:             db,
		config:         cfg,
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		loginService:   loginService,
		authHandlers:   authHandlers,
		cleanupService: cleanupService,
		router:         router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
