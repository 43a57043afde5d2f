package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrBadSignature = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrEmptySecret  = errors.New("jwtx: empty signing secret")
)

// Issuer mints signed tokens.
type Issuer interface {
	Issue(subject string, now time.Time) (string, error)
}

// Verifier validates a token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string, now time.Time) (Claims, error)
}

// Codec issues and verifies HS256 tokens with one shared secret. It holds
// no mutable state and is safe for concurrent use.
type Codec struct {
	secret []byte
}

var (
	_ Issuer   = (*Codec)(nil)
	_ Verifier = (*Codec)(nil)
)

// NewCodec returns a Codec keyed by secret. The secret is copied.
func NewCodec(secret []byte) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &Codec{secret: append([]byte(nil), secret...)}, nil
}

// Alg is the only algorithm this codec signs with or accepts.
func (c *Codec) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Issue signs a token for subject that expires TokenTTL after now.
func (c *Codec) Issue(subject string, now time.Time) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrMalformed)
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, NewClaims(subject, now))
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature first, then expiry against now. A token is
// expired only once now is strictly later than exp plus Leeway.
// Errors are always one of ErrMalformed, ErrBadSignature or ErrExpired.
func (c *Codec) Verify(token string, now time.Time) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(Leeway),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		// golang-jwt treats exp+leeway itself as expired. Stepping the clock
		// back by 1ns makes that instant still valid.
		jwt.WithTimeFunc(func() time.Time { return now.Add(-time.Nanosecond) }),
	)

	var claims Claims
	parsed, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		// WithValidMethods already pins the alg name, this pins the type.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}
	if !parsed.Valid {
		return Claims{}, ErrBadSignature
	}

	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrMalformed)
	}

	return claims, nil
}

// classify folds golang-jwt's error tree into our three kinds. The order
// matters: signature problems win over claim problems.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrBadSignature),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrBadSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	default:
		// ErrTokenMalformed, ErrTokenRequiredClaimMissing, bad claim types.
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
}
