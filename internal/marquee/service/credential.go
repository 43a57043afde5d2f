package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/marquee/internal/marquee/domain"
	"github.com/aussiebroadwan/marquee/internal/marquee/store"
	"github.com/aussiebroadwan/marquee/pkg/slogx"
)

// PasswordHasher is satisfied by *cryptox.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool

	// DummyDigest is verified against when the client does not exist so an
	// unknown name costs the same as a wrong password.
	DummyDigest() string
}

// TokenIssuer is satisfied by *jwtx.Codec.
type TokenIssuer interface {
	Issue(subject string, now time.Time) (string, error)
}

// Credentials is the register and login request body.
type Credentials struct {
	ClientName string `json:"client_name" validate:"required,min=1,max=64,printable"`
	Password   string `json:"password" validate:"required,max=1024"`
}

// LogValue keeps the password out of logs even if the struct is logged whole.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(slog.String("client_name", c.ClientName))
}

// CredentialService registers clients and exchanges credentials for tokens.
type CredentialService struct {
	Clients store.Clients
	Hasher  PasswordHasher
	Tokens  TokenIssuer

	// Now defaults to time.Now.
	Now func() time.Time

	// OnOutcome, when set, is told the result of every register and login.
	OnOutcome func(op string, err error)
}

func (s *CredentialService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *CredentialService) report(op string, err error) {
	if s.OnOutcome != nil {
		s.OnOutcome(op, err)
	}
}

// Register creates the client and returns a token for it.
func (s *CredentialService) Register(ctx context.Context, creds Credentials) (token string, err error) {
	defer func() { s.report("register", err) }()

	log := slogx.FromContext(ctx).With("client_name", creds.ClientName)

	if err := validateStruct(creds); err != nil {
		return "", err
	}

	// bcrypt cannot be interrupted, so bail before starting it.
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	digest, err := s.Hasher.Hash(creds.Password)
	if err != nil {
		log.Error("password hashing failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	if err := s.Clients.CreateClient(ctx, creds.ClientName, digest); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("register rejected, name taken")
			return "", ErrUsernameTaken
		}
		log.Error("create client failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	token, err = s.issue(creds.ClientName)
	if err != nil {
		log.Error("token issuance failed after register", "error", err)
		return "", err
	}

	log.Info("client registered")
	return token, nil
}

// Login checks the password and returns a fresh token.
func (s *CredentialService) Login(ctx context.Context, creds Credentials) (token string, err error) {
	defer func() { s.report("login", err) }()

	log := slogx.FromContext(ctx).With("client_name", creds.ClientName)

	if err := validateStruct(creds); err != nil {
		return "", err
	}

	digest, err := s.Clients.GetEncryptedPassword(ctx, creds.ClientName)
	switch {
	case errors.Is(err, store.ErrNotFound):
		_ = s.Hasher.Verify(creds.Password, s.Hasher.DummyDigest())
		log.Info("login rejected")
		return "", ErrInvalidCredentials
	case err != nil:
		log.Error("lookup client failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if !s.Hasher.Verify(creds.Password, digest) {
		log.Info("login rejected")
		return "", ErrInvalidCredentials
	}

	token, err = s.issue(creds.ClientName)
	if err != nil {
		log.Error("token issuance failed after login", "error", err)
		return "", err
	}

	log.Debug("client logged in")
	return token, nil
}

// Describe returns the stored record for an authenticated client.
func (s *CredentialService) Describe(ctx context.Context, name string) (domain.Client, error) {
	c, err := s.Clients.GetClient(ctx, name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Client{}, ErrNotFound
	case err != nil:
		return domain.Client{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	c.EncryptedPassword = ""
	return c, nil
}

func (s *CredentialService) issue(subject string) (string, error) {
	token, err := s.Tokens.Issue(subject, s.now())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenIssuance, err)
	}
	return token, nil
}
