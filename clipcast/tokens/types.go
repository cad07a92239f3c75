package tokens

import (
	"context"
	"time"
)

// repository interface for the refresh-token revocation store
type Repository interface {
	// Create records a newly issued refresh token so it can later be revoked
	Create(ctx context.Context, token *RefreshToken) error

	// Revoke marks the token as revoked. Revoking an unknown or
	// already-revoked token is not an error; the returned bool reports
	// whether a live token was actually revoked.
	Revoke(ctx context.Context, tokenID string) (bool, error)

	// IsRevoked reports whether the token may no longer be honored.
	// Unknown tokens count as revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// DeleteExpired purges tokens past their expiry and returns how many
	// rows were removed
	DeleteExpired(ctx context.Context) (int64, error)
}

// represents a stored refresh token record
type RefreshToken struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	Revoked   bool       `json:"revoked"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
