package auth

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"codeberg.org/clipcast/server/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

// sets up the Google OAuth provider using goth
func InitializeProviders(cfg *config.Config) error {
	if cfg.SessionSecret == "" {
		return fmt.Errorf("session secret must be set")
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	isHTTPS := strings.HasPrefix(cfg.BaseURL, "https://")

	// cookie backing the OAuth state handshake between /login and /callback
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300, // 5 minutes, enough for OAuth flow
		HttpOnly: true,
		Secure:   isHTTPS,
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return fmt.Errorf("google client id and secret must be set")
	}

	provider := google.New(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.BaseURL+"/callback",
		"openid", "email", "profile",
	)

	// request a refresh-capable grant from Google
	provider.SetAccessType("offline")

	goth.UseProviders(provider)

	return nil
}

// creates a signed access token embedding the user's identity claims
func GenerateAccessToken(userID, googleSub, email, handle string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := time.Now()

	claims := AccessClaims{
		GoogleSub: googleSub,
		Email:     email,
		Handle:    handle,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// creates a signed refresh token for the user. The returned token ID is
// what the revocation store tracks.
func GenerateRefreshToken(userID string) (token string, tokenID string, expiresAt time.Time, err error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", "", time.Time{}, fmt.Errorf("JWT_SECRET not set")
	}

	now := time.Now()
	tokenID = uuid.NewString()
	expiresAt = now.Add(RefreshTokenTTL)

	claims := RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", "", time.Time{}, err
	}

	return signed, tokenID, expiresAt, nil
}

// validates an access token and returns its claims
func ValidateAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	if err := parseToken(tokenString, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// parses a refresh token and returns its claims. Signature and expiry
// errors pass through from golang-jwt so callers can match on
// jwt.ErrTokenExpired and friends.
func ParseRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}

	if err := parseToken(tokenString, claims); err != nil {
		return nil, err
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("refresh token has no token ID")
	}

	return claims, nil
}

func parseToken(tokenString string, claims jwt.Claims) error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})

	if err != nil {
		return err
	}

	if !token.Valid {
		return fmt.Errorf("invalid token")
	}

	return nil
}
