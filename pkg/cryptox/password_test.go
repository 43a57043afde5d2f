package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *PasswordHasher {
	return NewPasswordHasher([]byte("test-pepper"), WithCost(bcrypt.MinCost))
}

func TestHashPassword(t *testing.T) {
	h := newTestHasher()

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
		{"nul bytes", "abc\x00def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(digest, "$2a$"), "digest should be bcrypt modular crypt format")

			cost, err := bcrypt.Cost([]byte(digest))
			require.NoError(t, err)
			require.Equal(t, bcrypt.MinCost, cost)

			require.True(t, h.Verify(tt.password, digest))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h := newTestHasher()
	password := "samepassword"

	hash1, err := h.Hash(password)
	require.NoError(t, err)
	hash2, err := h.Hash(password)
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.True(t, h.Verify(password, hash1))
	require.True(t, h.Verify(password, hash2))
}

func TestHashPassword_DefaultCost(t *testing.T) {
	h := NewPasswordHasher([]byte("pepper"))
	require.Equal(t, bcrypt.DefaultCost, h.Cost())
}

func TestHashPassword_InvalidCost(t *testing.T) {
	for _, cost := range []int{bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
		h := NewPasswordHasher([]byte("pepper"), WithCost(cost))
		digest, err := h.Hash("password")
		require.ErrorIs(t, err, ErrHashing)
		require.Empty(t, digest)
	}
}

func TestHashPassword_NoTruncation(t *testing.T) {
	h := newTestHasher()

	// Raw bcrypt only looks at the first 72 bytes; these two differ after that.
	prefix := strings.Repeat("x", 80)
	digest, err := h.Hash(prefix + "a")
	require.NoError(t, err)

	require.True(t, h.Verify(prefix+"a", digest))
	require.False(t, h.Verify(prefix+"b", digest))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	h := newTestHasher()
	digest, err := h.Hash("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{
		"wrong-password",
		"Correct-Password",
		"correct-password ",
		"",
		"correct-passwor",
		strings.Repeat("x", 10000),
	} {
		require.False(t, h.Verify(wrong, digest), "password %q should not verify", wrong)
	}
}

func TestVerifyPassword_InvalidDigest(t *testing.T) {
	h := newTestHasher()

	for _, digest := range []string{
		"",
		"not-a-digest",
		"$2a$04$short",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	} {
		require.False(t, h.Verify("password", digest), "digest %q should not verify", digest)
	}
}

func TestVerifyPassword_PepperMatters(t *testing.T) {
	a := NewPasswordHasher([]byte("pepper-a"), WithCost(bcrypt.MinCost))
	b := NewPasswordHasher([]byte("pepper-b"), WithCost(bcrypt.MinCost))

	digest, err := a.Hash("password")
	require.NoError(t, err)

	require.True(t, a.Verify("password", digest))
	require.False(t, b.Verify("password", digest))
}

func TestDummyDigest(t *testing.T) {
	h := newTestHasher()

	dummy := h.DummyDigest()
	require.NotEmpty(t, dummy)
	require.Equal(t, dummy, h.DummyDigest(), "dummy digest is computed once")

	cost, err := bcrypt.Cost([]byte(dummy))
	require.NoError(t, err)
	require.Equal(t, h.Cost(), cost, "dummy verify should cost the same as a real one")

	require.False(t, h.Verify("", dummy))
	require.False(t, h.Verify("password", dummy))
}
