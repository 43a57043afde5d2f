package http_test

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/marquee/pkg/marqueesdk"
	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	expired, err := env.codec.Issue("alice", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	valid, err := env.codec.Issue("alice", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     []string
		wantStatus int
		wantError  string
	}{
		{"no header", nil, http.StatusUnauthorized, ""},
		{"wrong scheme", []string{"Basic YWxpY2U6cHc="}, http.StatusUnauthorized, `error="invalid_request"`},
		{"lowercase scheme", []string{"bearer " + valid}, http.StatusUnauthorized, `error="invalid_request"`},
		{"empty header", []string{""}, http.StatusUnauthorized, `error="invalid_request"`},
		{"garbage token", []string{"Bearer not.a.token"}, http.StatusUnauthorized, `error="invalid_token"`},
		{"expired token", []string{"Bearer " + expired}, http.StatusUnauthorized, `error="invalid_token"`},
		{"valid token", []string{"Bearer " + valid}, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, env.srv.URL+"/v1/catalog/", nil)
			require.NoError(t, err)
			for _, v := range tt.header {
				req.Header.Add("Authorization", v)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus != http.StatusUnauthorized {
				return
			}

			challenge := resp.Header.Get("WWW-Authenticate")
			require.True(t, strings.HasPrefix(challenge, "Bearer "), challenge)
			if tt.wantError == "" {
				require.NotContains(t, challenge, "error=")
			} else {
				require.Contains(t, challenge, tt.wantError)
			}
		})
	}
}

func TestGate_CoversEveryCatalogRoute(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/v1/catalog/"},
		{http.MethodGet, "/v1/catalog/genre"},
		{http.MethodGet, "/v1/catalog/genre/1"},
		{http.MethodPost, "/v1/catalog/genre"},
		{http.MethodGet, "/v1/catalog/movie/page/0/10"},
		{http.MethodGet, "/v1/catalog/basic_data_movie/page/0/10"},
		{http.MethodGet, "/v1/catalog/movie/1"},
		{http.MethodPost, "/v1/catalog/movie"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req, err := http.NewRequestWithContext(t.Context(), rt.method, env.srv.URL+rt.path, strings.NewReader(`{}`))
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestCatalogHealth_UnknownSubject(t *testing.T) {
	env := newTestEnv(t)

	// A validly signed token for a client that was never registered.
	token, err := env.codec.Issue("ghost", time.Now())
	require.NoError(t, err)

	_, err = env.client.NewSessionFromToken("ghost", token).CatalogHealth(t.Context())
	requireAPIError(t, err, http.StatusNotFound, marqueesdk.ErrorCodeNotFound)
}

func TestLookups(t *testing.T) {
	env := newTestEnv(t)
	s := env.register(t, "alice")

	for _, kind := range []string{"genre", "country", "language", "classification"} {
		t.Run(kind, func(t *testing.T) {
			list, err := s.ListLookups(t.Context(), kind)
			require.NoError(t, err)
			require.Empty(t, list)

			created, err := s.CreateLookup(t.Context(), kind, "First "+kind)
			require.NoError(t, err)
			require.Equal(t, kind, created.Kind)
			require.NotZero(t, created.ID)

			got, err := s.GetLookup(t.Context(), kind, created.ID)
			require.NoError(t, err)
			require.Equal(t, created, got)

			_, err = s.CreateLookup(t.Context(), kind, "First "+kind)
			requireAPIError(t, err, http.StatusConflict, marqueesdk.ErrorCodeAlreadyExists)

			list, err = s.ListLookups(t.Context(), kind)
			require.NoError(t, err)
			require.Equal(t, []marqueesdk.Lookup{*created}, list)

			_, err = s.GetLookup(t.Context(), kind, created.ID+1000)
			requireAPIError(t, err, http.StatusNotFound, marqueesdk.ErrorCodeNotFound)
		})
	}
}

func TestLookups_WireShape(t *testing.T) {
	env := newTestEnv(t)
	s := env.register(t, "alice")

	_, err := s.CreateLookup(t.Context(), "genre", "Drama")
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, env.srv.URL+"/v1/catalog/genre", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+s.Token())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `[{"genre_id":1,"genre_name":"Drama"}]`, string(body))
}

func TestLookups_BadPaths(t *testing.T) {
	env := newTestEnv(t)
	s := env.register(t, "alice")

	_, err := s.ListLookups(t.Context(), "director")
	requireAPIError(t, err, http.StatusNotFound, marqueesdk.ErrorCodeNotFound)

	_, err = s.CreateLookup(t.Context(), "director", "Someone")
	requireAPIError(t, err, http.StatusNotFound, marqueesdk.ErrorCodeNotFound)

	_, err = s.CreateLookup(t.Context(), "genre", "")
	requireAPIError(t, err, http.StatusBadRequest, marqueesdk.ErrorCodeInvalidRequest)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, env.srv.URL+"/v1/catalog/genre/abc", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+s.Token())
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovies(t *testing.T) {
	env := newTestEnv(t)
	s := env.register(t, "alice")
	seedCatalog(t, s)

	created, err := s.CreateMovie(t.Context(), movieRequest("Nueve Reinas"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "Spanish", created.OriginalLanguage)
	require.Equal(t, "PG-13", created.Classification)
	require.NotNil(t, created.Summary)

	got, err := s.GetMovie(t.Context(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = s.GetMovie(t.Context(), created.ID+1000)
	requireAPIError(t, err, http.StatusNotFound, marqueesdk.ErrorCodeNotFound)
}

func TestMovies_UnknownReference(t *testing.T) {
	env := newTestEnv(t)
	s := env.register(t, "alice")
	seedCatalog(t, s)

	req := movieRequest("Nueve Reinas")
	req.Genre = "Western"

	_, err := s.CreateMovie(t.Context(), req)
	requireAPIError(t, err, http.StatusBadRequest, marqueesdk.ErrorCodeInvalidRequest)

	page, err := s.MoviePage(t.Context(), 0, 10)
	require.NoError(t, err)
	require.Empty(t, page, "nothing is written when a reference is unknown")
}

func TestMovies_Pages(t *testing.T) {
	env := newTestEnv(t)
	s := env.register(t, "alice")
	seedCatalog(t, s)

	titles := []string{"a", "b", "c", "d", "e"}
	for _, title := range titles {
		_, err := s.CreateMovie(t.Context(), movieRequest(title))
		require.NoError(t, err)
	}

	first, err := s.MoviePage(t.Context(), 0, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, "a", first[0].DistributionTitle)

	last, err := s.BasicMoviePage(t.Context(), 2, 2)
	require.NoError(t, err)
	require.Len(t, last, 1)
	require.Equal(t, "e", last[0].DistributionTitle)
	require.Equal(t, "https://img.example.com/e.jpg", last[0].ImageURL)

	beyond, err := s.BasicMoviePage(t.Context(), 10, 2)
	require.NoError(t, err)
	require.NotNil(t, beyond)
	require.Empty(t, beyond)
}

func TestMovies_InvalidPage(t *testing.T) {
	env := newTestEnv(t)
	s := env.register(t, "alice")

	for _, tc := range []struct{ page, quantity int64 }{
		{-1, 10},
		{0, 0},
		{0, 101},
	} {
		_, err := s.MoviePage(t.Context(), tc.page, tc.quantity)
		requireAPIError(t, err, http.StatusBadRequest, marqueesdk.ErrorCodeInvalidPage)

		_, err = s.BasicMoviePage(t.Context(), tc.page, tc.quantity)
		requireAPIError(t, err, http.StatusBadRequest, marqueesdk.ErrorCodeInvalidPage)
	}
}
