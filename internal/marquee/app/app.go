package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/marquee/internal/marquee/http"
	"github.com/aussiebroadwan/marquee/internal/marquee/service"
	"github.com/aussiebroadwan/marquee/internal/marquee/store"
	"github.com/aussiebroadwan/marquee/internal/marquee/store/drivers/postgres"
	"github.com/aussiebroadwan/marquee/internal/marquee/store/drivers/sqlite"
	"github.com/aussiebroadwan/marquee/internal/marquee/telemetry"
	"github.com/aussiebroadwan/marquee/pkg/cryptox"
	"github.com/aussiebroadwan/marquee/pkg/jwtx"
	"github.com/aussiebroadwan/marquee/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the marquee service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	codec   *jwtx.Codec
	metrics *telemetry.Metrics

	// Services
	credentialService *service.CredentialService
	catalogService    *service.CatalogService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New validates cfg and builds every dependency. On error nothing is left
// open.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "marquee",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			Output:  cfg.LogOutput,
		}),
		metrics: telemetry.New(),
	}

	if err := app.initSigner(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("marquee starting", "port", app.cfg.Port, "driver", app.cfg.DatabaseDriver)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down marquee...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("marquee stopped")
	return nil
}

// initSigner builds the token codec. In dev a missing secret is replaced by
// a random one, so tokens do not survive a restart.
func (app *Application) initSigner() error {
	secret := app.cfg.JWTSecret
	if secret == "" && app.cfg.IsDev() {
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate ephemeral JWT secret: %w", err)
		}
		secret = generated
		app.logger.Warn("JWT_SECRET not set, using an ephemeral secret; tokens will not survive a restart")
	}

	codec, err := jwtx.NewCodec([]byte(secret))
	if err != nil {
		return fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.codec = codec
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL, int32(app.cfg.DBMaxConns))
	default:
		db, err = sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile), app.cfg.DBMaxConns)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	pepper, err := cryptox.LoadOrGeneratePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	app.credentialService = &service.CredentialService{
		Clients:   app.db.Clients(),
		Hasher:    cryptox.NewPasswordHasher(pepper, cryptox.WithCost(app.cfg.BcryptCost)),
		Tokens:    app.codec,
		Now:       time.Now,
		OnOutcome: app.metrics.RecordCredentialOutcome,
	}
	app.catalogService = &service.CatalogService{Store: app.db}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		app.codec,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.CredentialService = app.credentialService
	router.CatalogService = app.catalogService
	router.Metrics = app.metrics
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
