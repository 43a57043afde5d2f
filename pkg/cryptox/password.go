package cryptox

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashing reports that the hash function itself failed (bad cost,
// entropy failure). Plaintext content never produces it.
var ErrHashing = errors.New("cryptox: password hashing failed")

// PasswordHasher turns plaintext passwords into bcrypt digests and checks
// them again later. It is safe for concurrent use.
//
// The plaintext is reduced to base64(HMAC-SHA256(pepper, plaintext)) before
// it reaches bcrypt, which keeps every input well under bcrypt's 72 byte
// limit and means a leaked database alone is not enough to brute force.
type PasswordHasher struct {
	pepper []byte
	cost   int

	dummyOnce sync.Once
	dummy     string
}

// HasherOption configures a PasswordHasher.
type HasherOption func(*PasswordHasher)

// WithCost sets the bcrypt cost. Out of range values are kept as given and
// surface as ErrHashing on the first Hash call.
func WithCost(cost int) HasherOption {
	return func(h *PasswordHasher) { h.cost = cost }
}

// NewPasswordHasher returns a hasher keyed by pepper. The pepper is copied.
func NewPasswordHasher(pepper []byte, opts ...HasherOption) *PasswordHasher {
	h := &PasswordHasher{
		pepper: append([]byte(nil), pepper...),
		cost:   bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Cost returns the configured bcrypt cost.
func (h *PasswordHasher) Cost() int { return h.cost }

// Hash returns a salted bcrypt digest of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	// bcrypt silently raises costs below MinCost to DefaultCost, we would
	// rather hear about it.
	if h.cost < bcrypt.MinCost || h.cost > bcrypt.MaxCost {
		return "", fmt.Errorf("%w: cost %d outside [%d, %d]", ErrHashing, h.cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	digest, err := bcrypt.GenerateFromPassword(h.prehash(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashing, err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. Malformed digests never
// match.
func (h *PasswordHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), h.prehash(password)) == nil
}

// DummyDigest returns a digest of random bytes at the hasher's cost. Verify
// against it when there is no real digest to check, so that the unknown
// identity path costs the same as a wrong password.
func (h *PasswordHasher) DummyDigest() string {
	h.dummyOnce.Do(func() {
		buf := make([]byte, TokenSize256)
		_, _ = rand.Read(buf)

		cost := h.cost
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		digest, err := bcrypt.GenerateFromPassword(h.prehash(string(buf)), cost)
		if err != nil {
			return
		}
		h.dummy = string(digest)
	})
	return h.dummy
}

func (h *PasswordHasher) prehash(password string) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(password))
	sum := mac.Sum(nil)

	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum)
	return out
}
