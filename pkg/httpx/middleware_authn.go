package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/marquee/pkg/jwtx"
	"github.com/aussiebroadwan/marquee/pkg/slogx"
)

const bearerPrefix = "Bearer "

var (
	// ErrUnauthenticated means no usable credential was presented: the
	// header is missing or the token failed verification.
	ErrUnauthenticated = errors.New("httpx: unauthenticated")

	// ErrMalformedCredential means an Authorization header was present but
	// not a "Bearer <token>" credential.
	ErrMalformedCredential = errors.New("httpx: malformed credential")
)

// Authenticate decides whether an Authorization header value authenticates
// the request. present distinguishes a missing header from an empty one.
//
// The scheme match is case-sensitive on purpose, "bearer x" is malformed.
func Authenticate(header string, present bool, v jwtx.Verifier, now time.Time) (Identity, error) {
	if !present {
		return Identity{}, ErrUnauthenticated
	}

	raw, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return Identity{}, ErrMalformedCredential
	}

	claims, err := v.Verify(raw, now)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return Identity{Subject: claims.Subject}, nil
}

type authnOptions struct {
	now      func() time.Time
	onReject func(*http.Request, error)
}

// AuthnOption configures AuthnMiddleware.
type AuthnOption func(*authnOptions)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) AuthnOption {
	return func(o *authnOptions) { o.now = now }
}

// WithRejectHook is called for every rejected request with the reason, after
// the response has been written.
func WithRejectHook(fn func(*http.Request, error)) AuthnOption {
	return func(o *authnOptions) { o.onReject = fn }
}

// AuthnMiddleware is the gate in front of protected routes. It verifies the
// bearer token, attaches the Identity to the request context and never
// touches the request body.
func AuthnMiddleware(v jwtx.Verifier, opts ...AuthnOption) Middleware {
	o := authnOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			values, present := r.Header[http.CanonicalHeaderKey("Authorization")]
			header := ""
			if len(values) > 0 {
				header = values[0]
			}

			id, err := Authenticate(header, present, v, o.now())
			if err != nil {
				switch {
				case errors.Is(err, ErrMalformedCredential):
					writeBearerError(w, "invalid_request", "expected Bearer credential")
				case !present:
					writeBearerChallenge(w)
				default:
					// The token error kind stays in the logs only.
					writeBearerError(w, "invalid_token", "token verification failed")
				}
				log.Warn("authentication rejected", "reason", err)

				if o.onReject != nil {
					o.onReject(r, err)
				}
				return
			}

			ctx = slogx.With(ContextWithIdentity(ctx, id), "client", id.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750 section 3: no error code when no credentials were sent.
func writeBearerChallenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="marquee"`)
	w.WriteHeader(http.StatusUnauthorized)
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, code, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="marquee", error="`+code+`", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
