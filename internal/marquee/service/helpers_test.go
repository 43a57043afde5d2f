package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/marquee/internal/marquee/domain"
	"github.com/aussiebroadwan/marquee/internal/marquee/store/drivers/sqlite"
	"github.com/aussiebroadwan/marquee/pkg/cryptox"
	"github.com/aussiebroadwan/marquee/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Unix(1_700_000_000, 0)

func newSQLiteStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(sqlite.DSN(":memory:"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func newCodec(t *testing.T) *jwtx.Codec {
	t.Helper()
	c, err := jwtx.NewCodec([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return c
}

func newCredentialService(t *testing.T) (*CredentialService, *jwtx.Codec) {
	t.Helper()
	codec := newCodec(t)
	return &CredentialService{
		Clients: newSQLiteStore(t).Clients(),
		Hasher:  cryptox.NewPasswordHasher([]byte("pepper"), cryptox.WithCost(bcrypt.MinCost)),
		Tokens:  codec,
		Now:     func() time.Time { return fixedNow },
	}, codec
}

// fakeClients lets tests inject storage failures.
type fakeClients struct {
	createErr error
	getErr    error
	digest    string
}

func (f *fakeClients) CreateClient(context.Context, string, string) error { return f.createErr }

func (f *fakeClients) GetEncryptedPassword(context.Context, string) (string, error) {
	return f.digest, f.getErr
}

func (f *fakeClients) GetClient(_ context.Context, name string) (domain.Client, error) {
	if f.getErr != nil {
		return domain.Client{}, f.getErr
	}
	return domain.Client{ID: 1, Name: name, EncryptedPassword: f.digest, CreatedAt: fixedNow}, nil
}

// recordingHasher counts calls and remembers the digests it was asked about.
type recordingHasher struct {
	mu       sync.Mutex
	hashErr  error
	verified []string
	dummy    string
}

func (h *recordingHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "digest:" + password, nil
}

func (h *recordingHasher) Verify(password, digest string) bool {
	h.mu.Lock()
	h.verified = append(h.verified, digest)
	h.mu.Unlock()
	return digest == "digest:"+password
}

func (h *recordingHasher) DummyDigest() string { return h.dummy }

type failingIssuer struct{ err error }

func (f failingIssuer) Issue(string, time.Time) (string, error) { return "", f.err }
