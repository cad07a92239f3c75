package auth

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := GenerateAccessToken("user-123", "g-sub-123", "test@example.com", "ann.lee-x1y2")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have 3 parts")
}

func TestGenerateAccessToken_MissingSecret(t *testing.T) {
	os.Unsetenv("JWT_SECRET") //nolint:errcheck // test fixture

	_, err := GenerateAccessToken("user-123", "g-sub-123", "test@example.com", "handle")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET not set")
}

func TestValidateAccessToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := GenerateAccessToken("user-123", "g-sub-123", "test@example.com", "ann.lee-x1y2")
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token)

	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "g-sub-123", claims.GoogleSub)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "ann.lee-x1y2", claims.Handle)
}

func TestValidateAccessToken_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	// create an expired token
	claims := AccessClaims{
		GoogleSub: "g-sub-123",
		Email:     "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-key-for-testing"))
	require.NoError(t, err)

	_, err = ValidateAccessToken(tokenString)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := GenerateAccessToken("user-123", "g-sub-123", "test@example.com", "handle")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "a-different-secret")

	_, err = ValidateAccessToken(token)

	assert.Error(t, err)
}

func TestGenerateRefreshToken_CarriesTokenID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, tokenID, expiresAt, err := GenerateRefreshToken("user-123")

	require.NoError(t, err)
	assert.NotEmpty(t, tokenID)
	assert.WithinDuration(t, time.Now().Add(RefreshTokenTTL), expiresAt, time.Minute)

	claims, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, claims.ID)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseRefreshToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	claims := RefreshClaims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "token-id-1",
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-key-for-testing"))
	require.NoError(t, err)

	_, err = ParseRefreshToken(tokenString)

	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseRefreshToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	_, err := ParseRefreshToken("not-a-jwt")

	assert.Error(t, err)
}
