package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTTL is the lifetime of every issued token.
	TokenTTL = time.Hour

	// Leeway is the clock skew tolerated when checking expiry.
	Leeway = 60 * time.Second
)

// Claims is the token payload. Subject and expiry are the only claims we
// write; the embedded RegisteredClaims leaves the rest empty and omitted.
type Claims struct {
	jwt.RegisteredClaims
}

// NewClaims builds the claims for subject issued at now.
func NewClaims(subject string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
}

// Expiry returns the exp claim, or the zero time when absent.
func (c Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
