package httpx_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/marquee/pkg/httpx"
	"github.com/aussiebroadwan/marquee/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var now = time.Unix(1_700_000_000, 0)

func newCodec(t *testing.T) *jwtx.Codec {
	t.Helper()
	c, err := jwtx.NewCodec([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return c
}

func issue(t *testing.T, c *jwtx.Codec, subject string) string {
	t.Helper()
	token, err := c.Issue(subject, now)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	c := newCodec(t)
	valid := issue(t, c, "alice")

	tests := []struct {
		name    string
		header  string
		present bool
		wantErr error
		subject string
	}{
		{name: "valid bearer", header: "Bearer " + valid, present: true, subject: "alice"},
		{name: "absent", present: false, wantErr: httpx.ErrUnauthenticated},
		{name: "empty", header: "", present: true, wantErr: httpx.ErrMalformedCredential},
		{name: "no scheme", header: valid, present: true, wantErr: httpx.ErrMalformedCredential},
		{name: "lowercase scheme", header: "bearer " + valid, present: true, wantErr: httpx.ErrMalformedCredential},
		{name: "basic scheme", header: "Basic YWxpY2U6cHc=", present: true, wantErr: httpx.ErrMalformedCredential},
		{name: "scheme only", header: "Bearer", present: true, wantErr: httpx.ErrMalformedCredential},
		{name: "empty token", header: "Bearer ", present: true, wantErr: httpx.ErrUnauthenticated},
		{name: "garbage token", header: "Bearer nope", present: true, wantErr: httpx.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := httpx.Authenticate(tt.header, tt.present, c, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, id.Subject)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.subject, id.Subject)
		})
	}
}

func TestAuthenticate_WrapsTokenError(t *testing.T) {
	c := newCodec(t)
	token := issue(t, c, "alice")

	_, err := httpx.Authenticate("Bearer "+token, true, c, now.Add(2*time.Hour))
	require.ErrorIs(t, err, httpx.ErrUnauthenticated)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestAuthnMiddleware(t *testing.T) {
	c := newCodec(t)
	valid := issue(t, c, "alice")

	var reached bool
	var gotSubject string
	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		id, ok := httpx.IdentityFromContext(r.Context())
		require.True(t, ok)
		gotSubject = id.Subject
		w.WriteHeader(http.StatusNoContent)
	})

	h := httpx.Chain(protected, httpx.AuthnMiddleware(c, httpx.WithClock(func() time.Time { return now })))

	tests := []struct {
		name      string
		header    *string
		status    int
		challenge string
	}{
		{name: "valid", header: ptr("Bearer " + valid), status: http.StatusNoContent},
		{name: "absent", status: http.StatusUnauthorized, challenge: `Bearer realm="marquee"`},
		{name: "empty", header: ptr(""), status: http.StatusUnauthorized, challenge: `error="invalid_request"`},
		{name: "missing scheme", header: ptr(valid), status: http.StatusUnauthorized, challenge: `error="invalid_request"`},
		{name: "bad token", header: ptr("Bearer " + valid + "x"), status: http.StatusUnauthorized, challenge: `error="invalid_token"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached, gotSubject = false, ""

			req := httptest.NewRequest(http.MethodGet, "/v1/catalog/", nil)
			if tt.header != nil {
				req.Header["Authorization"] = []string{*tt.header}
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusNoContent {
				require.True(t, reached)
				require.Equal(t, "alice", gotSubject)
				return
			}

			require.False(t, reached, "handler must not run on rejection")
			require.Contains(t, rec.Header().Get("WWW-Authenticate"), tt.challenge)
		})
	}
}

func TestAuthnMiddleware_AbsentHasNoErrorCode(t *testing.T) {
	h := httpx.AuthnMiddleware(newCodec(t))(http.NotFoundHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotContains(t, rec.Header().Get("WWW-Authenticate"), "error=")
}

func TestAuthnMiddleware_DoesNotEchoTokenErrorKind(t *testing.T) {
	c := newCodec(t)
	expired := issue(t, c, "alice")

	h := httpx.AuthnMiddleware(c, httpx.WithClock(func() time.Time {
		return now.Add(3 * time.Hour)
	}))(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotContains(t, strings.ToLower(rec.Header().Get("WWW-Authenticate")), "expired")
}

func TestAuthnMiddleware_RejectHook(t *testing.T) {
	var reasons []error
	h := httpx.AuthnMiddleware(newCodec(t), httpx.WithRejectHook(func(_ *http.Request, err error) {
		reasons = append(reasons, err)
	}))(http.NotFoundHandler())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, reasons, 2)
	require.True(t, errors.Is(reasons[0], httpx.ErrUnauthenticated))
	require.True(t, errors.Is(reasons[1], httpx.ErrMalformedCredential))
}

func TestAuthnMiddleware_LeavesBodyUntouched(t *testing.T) {
	c := newCodec(t)
	const body = `{"name":"Drama"}`

	var got string
	h := httpx.AuthnMiddleware(c, httpx.WithClock(func() time.Time { return now }))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			got = string(b)
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+issue(t, c, "alice"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, body, got)
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func ptr(s string) *string { return &s }
