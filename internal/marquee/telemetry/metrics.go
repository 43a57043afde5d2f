// Package telemetry exposes Prometheus metrics for the trust subsystem.
package telemetry

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/marquee/internal/marquee/service"
	"github.com/aussiebroadwan/marquee/pkg/httpx"
	"github.com/aussiebroadwan/marquee/pkg/jwtx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so tests and multiple instances do not collide
// on the global one.
type Metrics struct {
	reg *prometheus.Registry

	credentialOutcomes *prometheus.CounterVec
	gateRejections     *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		credentialOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "marquee_credential_requests_total",
			Help: "Register and login attempts by outcome",
		}, []string{"op", "result"}),
		gateRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "marquee_gate_rejections_total",
			Help: "Requests rejected by the authentication gate",
		}, []string{"reason"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// RecordCredentialOutcome matches service.CredentialService.OnOutcome.
func (m *Metrics) RecordCredentialOutcome(op string, err error) {
	m.credentialOutcomes.WithLabelValues(op, credentialResult(err)).Inc()
}

// RecordGateRejection matches httpx.WithRejectHook.
func (m *Metrics) RecordGateRejection(_ *http.Request, err error) {
	m.gateRejections.WithLabelValues(gateReason(err)).Inc()
}

func credentialResult(err error) string {
	if err == nil {
		return "ok"
	}
	for _, sentinel := range service.Errors {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "error"
}

func gateReason(err error) string {
	switch {
	case errors.Is(err, httpx.ErrMalformedCredential):
		return "malformed_credential"
	case errors.Is(err, jwtx.ErrExpired):
		return "expired"
	case errors.Is(err, jwtx.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, jwtx.ErrMalformed):
		return "malformed_token"
	default:
		return "missing"
	}
}
