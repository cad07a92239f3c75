package main

import (
	"time"

	"codeberg.org/clipcast/server/internal/config"
	"codeberg.org/clipcast/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// allows the client application to send credentialed cross-site
// requests; the token cookies are SameSite=None
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientAddress},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// rate limits the login and callback endpoints per client IP
func RateLimitMiddleware() gin.HandlerFunc {
	loginRate, err := limiter.NewRateFromFormatted("30-M")
	if err != nil {
		logger.FatalErr(err, "failed to parse rate limit")
	}

	store := memorystore.NewStore()

	return mgin.NewMiddleware(limiter.New(store, loginRate))
}
