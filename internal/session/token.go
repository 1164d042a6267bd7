package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the expiry claim from an access token without
// verifying its signature.
//
// The client never validates tokens (the backend does); this exists only so
// `auth status` can warn about an expired session before a request fails.
func TokenExpiry(token string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token has no expiry claim")
	}

	return exp.Time, nil
}

// TokenExpired reports whether the token carries an expiry claim in the past.
// Tokens without a parseable expiry are treated as unexpired.
func TokenExpired(token string) bool {
	exp, err := TokenExpiry(token)
	if err != nil {
		return false
	}
	return exp.Before(time.Now())
}
