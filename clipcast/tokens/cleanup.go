package tokens

import (
	"context"
	"time"

	"codeberg.org/clipcast/server/internal/logger"
)

// handles periodic removal of expired refresh tokens so the revocation
// store does not grow without bound
type CleanupService struct {
	repo          Repository
	checkInterval time.Duration
}

// creates a new cleanup service
func NewCleanupService(repo Repository, checkInterval time.Duration) *CleanupService {
	return &CleanupService{
		repo:          repo,
		checkInterval: checkInterval,
	}
}

// begins the cleanup service background loop
func (s *CleanupService) Start(ctx context.Context) {
	logger.Info("starting refresh token cleanup service",
		"check_interval", s.checkInterval,
	)

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("refresh token cleanup service stopped")
			return
		case <-ticker.C:
			s.purgeExpired(ctx)
		}
	}
}

func (s *CleanupService) purgeExpired(ctx context.Context) {
	removed, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		logger.ErrorErr(err, "failed to purge expired refresh tokens")
		return
	}

	if removed > 0 {
		logger.Info("purged expired refresh tokens", "count", removed)
	}
}
