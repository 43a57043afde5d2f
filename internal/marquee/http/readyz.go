package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/marquee/internal/marquee/store"
	"github.com/aussiebroadwan/marquee/pkg/httpx"
	"github.com/aussiebroadwan/marquee/pkg/jwtx"
	"github.com/aussiebroadwan/marquee/pkg/marqueesdk"
	"github.com/aussiebroadwan/marquee/pkg/slogx"
)

const readyzProbeSubject = "readyz"

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and the token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	marqueesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	marqueesdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	issuer jwtx.Issuer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := slogx.FromContext(r.Context())

		checks := &marqueesdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			log.Warn("readiness: database ping failed", "error", err)
			checks.Database = "error: unreachable"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// The probe token is thrown away.
		if issuer == nil {
			checks.Signer = "error: no signer configured"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		} else if _, err := issuer.Issue(readyzProbeSubject, time.Now()); err != nil {
			log.Warn("readiness: signer failed", "error", err)
			checks.Signer = "error: cannot sign"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := marqueesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
