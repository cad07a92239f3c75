package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// cookie names for the issued token pair
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// token lifetimes; cookie max-ages mirror these
const (
	AccessTokenTTL  = 3 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// AccessClaims are the identity claims embedded in access tokens
type AccessClaims struct {
	GoogleSub string `json:"google_sub"`
	Email     string `json:"email"`
	Handle    string `json:"handle"`
	jwt.RegisteredClaims
}

// RefreshClaims are the claims embedded in refresh tokens. The token ID
// (jti) is recorded in the revocation store when the token is issued.
type RefreshClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
