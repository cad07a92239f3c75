package login

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const fallbackHandleBase = "creator"

// derives a public handle from the user's name parts. The base is
// deterministic (lowercased names joined with a dot, non-alphanumerics
// stripped); a short random suffix keeps concurrent signups with the
// same name from colliding.
func GenerateHandle(firstName, lastName string) string {
	first := sanitizeHandlePart(firstName)
	last := sanitizeHandlePart(lastName)

	base := first
	if last != "" {
		if base != "" {
			base += "."
		}
		base += last
	}

	if base == "" {
		base = fallbackHandleBase
	}

	return base + "-" + randomSuffix()
}

func sanitizeHandlePart(part string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(strings.TrimSpace(part)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func randomSuffix() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}

	return hex.EncodeToString(buf)
}
