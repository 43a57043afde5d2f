//go:build e2e

package marquee_test

import (
	"testing"

	"github.com/aussiebroadwan/marquee/pkg/marqueesdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupMarquee(t)
	defer cleanup()

	client := marqueesdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies readiness against a live Postgres.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupMarquee(t)
	defer cleanup()

	client := marqueesdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}
