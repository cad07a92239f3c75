package login

import (
	"fmt"
	"strconv"

	"github.com/markbates/goth"
)

// Claims is the validated identity returned by the Google code exchange.
// The provider's raw claim map is converted to this struct immediately
// after the exchange; nothing downstream touches dynamic claim data.
type Claims struct {
	Sub           string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
	Picture       string
}

// converts a goth user into validated claims. Returns an error when a
// required claim is missing, which callers treat as a malformed exchange
// response.
func ClaimsFromProvider(gu goth.User) (*Claims, error) {
	if gu.UserID == "" {
		return nil, fmt.Errorf("claims missing subject identifier")
	}

	if gu.Email == "" {
		return nil, fmt.Errorf("claims missing email")
	}

	return &Claims{
		Sub:           gu.UserID,
		Email:         gu.Email,
		EmailVerified: emailVerified(gu.RawData),
		GivenName:     firstNonEmpty(gu.FirstName, rawString(gu.RawData, "given_name")),
		FamilyName:    firstNonEmpty(gu.LastName, rawString(gu.RawData, "family_name")),
		Picture:       firstNonEmpty(gu.AvatarURL, rawString(gu.RawData, "picture")),
	}, nil
}

// Google's v3 userinfo endpoint reports "email_verified" while v2 uses
// "verified_email"; both appear as bool or string depending on transport.
func emailVerified(raw map[string]any) bool {
	for _, key := range []string{"email_verified", "verified_email"} {
		v, ok := raw[key]
		if !ok {
			continue
		}

		switch value := v.(type) {
		case bool:
			return value
		case string:
			parsed, err := strconv.ParseBool(value)
			return err == nil && parsed
		}
	}

	return false
}

func rawString(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}

	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
