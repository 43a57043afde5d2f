package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/marquee/pkg/marqueesdk"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRegister_ReturnsUsableToken(t *testing.T) {
	env := newTestEnv(t)

	session := env.register(t, "alice")

	claims, err := env.codec.Verify(session.Token(), time.Now())
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)

	health, err := session.CatalogHealth(t.Context())
	require.NoError(t, err)
	require.Equal(t, "alice", health.ClientName)
	require.False(t, health.RegisteredAt.IsZero())
}

func TestRegister_Response(t *testing.T) {
	env := newTestEnv(t)

	resp := postJSON(t, env.srv.URL+"/v1/user/register", `{"client_name":"alice","password":"pw"}`)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1, "only the token is returned")
	require.NotEmpty(t, body["token"])
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	session, err := env.client.Login(t.Context(), "alice", testPassword)
	require.NoError(t, err)

	claims, err := env.codec.Verify(session.Token(), time.Now())
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)

	resp := postJSON(t, env.srv.URL+"/v1/user/login", `{"client_name":"alice","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}

func TestRegister_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	_, err := env.client.Register(t.Context(), "alice", "another password")
	requireAPIError(t, err, http.StatusConflict, marqueesdk.ErrorCodeUsernameTaken)

	// The original password still works.
	_, err = env.client.Login(t.Context(), "alice", testPassword)
	require.NoError(t, err)
}

func TestRegister_ConcurrentSameName(t *testing.T) {
	env := newTestEnv(t)

	const n = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		ok     int
		taken  int
		others []error
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.client.Register(t.Context(), "racer", testPassword)

			mu.Lock()
			defer mu.Unlock()
			var apiErr *marqueesdk.APIError
			switch {
			case err == nil:
				ok++
			case errors.As(err, &apiErr) && apiErr.Code == marqueesdk.ErrorCodeUsernameTaken:
				taken++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, others)
	require.Equal(t, 1, ok)
	require.Equal(t, n-1, taken)
}

func TestLogin_Rejections(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	_, err := env.client.Login(t.Context(), "alice", "wrong password")
	requireAPIError(t, err, http.StatusUnauthorized, marqueesdk.ErrorCodeInvalidCredentials)

	_, unknownErr := env.client.Login(t.Context(), "nobody", "wrong password")
	requireAPIError(t, unknownErr, http.StatusUnauthorized, marqueesdk.ErrorCodeInvalidCredentials)

	require.Equal(t, err.Error(), unknownErr.Error(), "unknown name and wrong password look the same")
}

func TestCredentials_BadRequests(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"not json", "/v1/user/register", `client_name=alice`},
		{"truncated json", "/v1/user/login", `{"client_name":"alice"`},
		{"missing name", "/v1/user/register", `{"password":"pw"}`},
		{"empty name", "/v1/user/register", `{"client_name":"","password":"pw"}`},
		{"missing password", "/v1/user/login", `{"client_name":"alice"}`},
		{"name too long", "/v1/user/register", `{"client_name":"` + strings.Repeat("a", 65) + `","password":"pw"}`},
		{"control char in name", "/v1/user/register", `{"client_name":"al\u0000ice","password":"pw"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, env.srv.URL+tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body marqueesdk.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, marqueesdk.ErrorCodeInvalidRequest, body.Error)
		})
	}
}

func TestCredentials_ErrorBodyDoesNotEchoPassword(t *testing.T) {
	env := newTestEnv(t)

	secret := "hunter2-" + strings.Repeat("x", 2000)
	resp := postJSON(t, env.srv.URL+"/v1/user/register", `{"client_name":"alice","password":"`+secret+`"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.False(t, bytes.Contains(body, []byte("hunter2")))
}

func TestCredentials_WrongMethod(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.srv.URL + "/v1/user/login")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
