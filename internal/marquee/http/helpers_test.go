package http_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	marqueehttp "github.com/aussiebroadwan/marquee/internal/marquee/http"
	"github.com/aussiebroadwan/marquee/internal/marquee/service"
	"github.com/aussiebroadwan/marquee/internal/marquee/store/drivers/sqlite"
	"github.com/aussiebroadwan/marquee/internal/marquee/telemetry"
	"github.com/aussiebroadwan/marquee/pkg/cryptox"
	"github.com/aussiebroadwan/marquee/pkg/jwtx"
	"github.com/aussiebroadwan/marquee/pkg/marqueesdk"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct horse battery staple"

type testEnv struct {
	srv     *httptest.Server
	client  *marqueesdk.SDKClient
	codec   *jwtx.Codec
	store   *sqlite.Store
	metrics *telemetry.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(":memory:"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewCodec([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	metrics := telemetry.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := marqueehttp.NewRouter(codec, codec, "test", st, logger)
	r.CredentialService = &service.CredentialService{
		Clients:   st.Clients(),
		Hasher:    cryptox.NewPasswordHasher([]byte("pepper"), cryptox.WithCost(bcrypt.MinCost)),
		Tokens:    codec,
		OnOutcome: metrics.RecordCredentialOutcome,
	}
	r.CatalogService = &service.CatalogService{Store: st}
	r.Metrics = metrics
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{
		srv:     srv,
		client:  marqueesdk.NewSDKClient(srv.URL),
		codec:   codec,
		store:   st,
		metrics: metrics,
	}
}

// register creates a client and returns its session.
func (e *testEnv) register(t *testing.T, name string) *marqueesdk.Session {
	t.Helper()
	s, err := e.client.Register(t.Context(), name, testPassword)
	require.NoError(t, err)
	return s
}

// requireAPIError asserts err is an *APIError with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *marqueesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Error())
	require.Equal(t, code, apiErr.Code)
}

// seedCatalog creates one of each lookup the movie fixtures reference.
func seedCatalog(t *testing.T, s *marqueesdk.Session) {
	t.Helper()
	for kind, name := range map[string]string{
		"genre":          "Drama",
		"country":        "Argentina",
		"language":       "Spanish",
		"classification": "PG-13",
	} {
		_, err := s.CreateLookup(t.Context(), kind, name)
		require.NoError(t, err)
	}
}

func movieRequest(title string) marqueesdk.CreateMovieRequest {
	summary := "A quiet film."
	return marqueesdk.CreateMovieRequest{
		DistributionTitle: title,
		OriginalTitle:     title,
		OriginalLanguage:  "Spanish",
		ProductionYear:    2009,
		ImageURL:          "https://img.example.com/" + title + ".jpg",
		DurationHours:     2,
		Summary:           &summary,
		Classification:    "PG-13",
		OriginCountry:     "Argentina",
		Genre:             "Drama",
	}
}
