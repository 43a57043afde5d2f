package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/marquee/internal/marquee/service"
	"github.com/aussiebroadwan/marquee/internal/marquee/store"
	"github.com/aussiebroadwan/marquee/internal/marquee/telemetry"
	"github.com/aussiebroadwan/marquee/pkg/httpx"
	"github.com/aussiebroadwan/marquee/pkg/jwtx"
	"github.com/aussiebroadwan/marquee/pkg/slogx"

	_ "github.com/aussiebroadwan/marquee/api/marquee" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	issuer       jwtx.Issuer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	CredentialService *service.CredentialService
	CatalogService    *service.CatalogService

	// Metrics is optional. When set, /metrics is served and gate
	// rejections are counted.
	Metrics *telemetry.Metrics
}

func NewRouter(
	verifier jwtx.Verifier,
	issuer jwtx.Issuer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUser()
	r.registerCatalog()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Marquee Catalog Service API
//	@version		0.1.0
//	@description	Movie catalog with client registration, login and bearer-token protected catalog routes.
//	@description
//	@description				Tokens are HS256 JWTs valid for one hour. There is no refresh, log in again.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/marquee
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// gate puts the authentication gate in front of h.
func (r *Router) gate(h http.HandlerFunc) http.Handler {
	opts := []httpx.AuthnOption{}
	if r.Metrics != nil {
		opts = append(opts, httpx.WithRejectHook(r.Metrics.RecordGateRejection))
	}
	return httpx.Chain(h, httpx.AuthnMiddleware(r.verifier, opts...))
}

func (r *Router) registerUser() {
	h := &CredentialsHandler{CredentialService: r.CredentialService}

	r.Mux.HandleFunc("POST /v1/user/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /v1/user/login", h.HandleLogin)
}

func (r *Router) registerCatalog() {
	h := &CatalogHandler{
		CatalogService:    r.CatalogService,
		CredentialService: r.CredentialService,
	}

	r.Mux.Handle("GET /v1/catalog/{$}", r.gate(h.HandleHealth))

	// Literal movie segments win over {kind} in ServeMux precedence.
	r.Mux.Handle("GET /v1/catalog/movie/page/{page}/{quantity}", r.gate(h.HandleMoviePage))
	r.Mux.Handle("GET /v1/catalog/basic_data_movie/page/{page}/{quantity}", r.gate(h.HandleBasicMoviePage))
	r.Mux.Handle("GET /v1/catalog/movie/{id}", r.gate(h.HandleGetMovie))
	r.Mux.Handle("POST /v1/catalog/movie", r.gate(h.HandleCreateMovie))

	r.Mux.Handle("GET /v1/catalog/{kind}", r.gate(h.HandleListLookups))
	r.Mux.Handle("GET /v1/catalog/{kind}/{id}", r.gate(h.HandleGetLookup))
	r.Mux.Handle("POST /v1/catalog/{kind}", r.gate(h.HandleCreateLookup))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.issuer))

	if r.Metrics != nil {
		r.Mux.Handle("GET /metrics", r.Metrics.Handler())
	}
}
