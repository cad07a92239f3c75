package login

import (
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func googleUser() goth.User {
	return goth.User{
		Provider:  "google",
		UserID:    "g1",
		Email:     "a@x.com",
		FirstName: "Ann",
		LastName:  "Lee",
		AvatarURL: "https://lh3.example.com/photo.jpg",
		RawData: map[string]any{
			"email_verified": true,
		},
	}
}

func TestClaimsFromProvider_Complete(t *testing.T) {
	claims, err := ClaimsFromProvider(googleUser())

	require.NoError(t, err)
	assert.Equal(t, "g1", claims.Sub)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.True(t, claims.EmailVerified)
	assert.Equal(t, "Ann", claims.GivenName)
	assert.Equal(t, "Lee", claims.FamilyName)
	assert.Equal(t, "https://lh3.example.com/photo.jpg", claims.Picture)
}

func TestClaimsFromProvider_MissingSubject(t *testing.T) {
	gu := googleUser()
	gu.UserID = ""

	_, err := ClaimsFromProvider(gu)

	assert.Error(t, err)
}

func TestClaimsFromProvider_MissingEmail(t *testing.T) {
	gu := googleUser()
	gu.Email = ""

	_, err := ClaimsFromProvider(gu)

	assert.Error(t, err)
}

func TestClaimsFromProvider_VerifiedKeyVariants(t *testing.T) {
	tests := []struct {
		name    string
		rawData map[string]any
		want    bool
	}{
		{"v3 bool", map[string]any{"email_verified": true}, true},
		{"v3 string", map[string]any{"email_verified": "true"}, true},
		{"v2 bool", map[string]any{"verified_email": true}, true},
		{"v2 false", map[string]any{"verified_email": false}, false},
		{"absent", map[string]any{}, false},
		{"garbage string", map[string]any{"email_verified": "yes?"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gu := googleUser()
			gu.RawData = tt.rawData

			claims, err := ClaimsFromProvider(gu)

			require.NoError(t, err)
			assert.Equal(t, tt.want, claims.EmailVerified)
		})
	}
}

func TestClaimsFromProvider_NameFallbackToRawData(t *testing.T) {
	gu := googleUser()
	gu.FirstName = ""
	gu.LastName = ""
	gu.RawData["given_name"] = "Ann"
	gu.RawData["family_name"] = "Lee"

	claims, err := ClaimsFromProvider(gu)

	require.NoError(t, err)
	assert.Equal(t, "Ann", claims.GivenName)
	assert.Equal(t, "Lee", claims.FamilyName)
}
