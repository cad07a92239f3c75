package users

import (
	"context"
	"errors"
	"time"
)

// sentinel errors returned by the repository
var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("user already exists")
)

// repository interface for user database operations
type Repository interface {
	// FindByGoogleSub looks up a user by their Google subject identifier.
	// The lookup is exact-match. Returns ErrNotFound if no user exists.
	FindByGoogleSub(ctx context.Context, googleSub string) (*User, error)
	FindByID(ctx context.Context, userID string) (*User, error)

	// Create inserts a new user record. Returns ErrDuplicate if a user
	// with the same Google subject identifier already exists, so the
	// loser of a concurrent first-login race can re-fetch instead.
	Create(ctx context.Context, req *CreateUserRequest) (*User, error)

	// SetVerified marks the user's email as verified
	SetVerified(ctx context.Context, userID string) (*User, error)

	// profile image operations
	AttachProfileImage(ctx context.Context, userID, fileName, contentType string, data []byte) error
	GetProfileImage(ctx context.Context, handle string) (*ProfileImage, error)
}

// represents a locally known identity provisioned through Google login
type User struct {
	ID           string    `json:"id"`
	GoogleSub    string    `json:"-"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Handle       string    `json:"handle"`
	Email        string    `json:"email"`
	Verified     bool      `json:"verified"`
	Active       bool      `json:"active"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// contains the fields required to provision a new user
type CreateUserRequest struct {
	GoogleSub string `validate:"required"`
	Username  string `validate:"required,max=150"`
	FirstName string `validate:"required,max=150"`
	LastName  string `validate:"max=150"`
	Handle    string `validate:"required,max=100"`
	Email     string `validate:"required,email"`
}

// a stored profile image with its metadata
type ProfileImage struct {
	FileName    string
	ContentType string
	Data        []byte
}
