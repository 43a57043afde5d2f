package marqueesdk

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	// Error is the error code (e.g., "invalid_request", "username_taken")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Credential Types
// ============================================================================

// CredentialsRequest is the body of POST /v1/user/register and /v1/user/login.
type CredentialsRequest struct {
	ClientName string `json:"client_name"`
	Password   string `json:"password"`
}

// TokenResponse is returned by register (201) and login (200).
type TokenResponse struct {
	// Token is a compact HS256 JWS whose subject is the client name
	Token string `json:"token"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status ("ok" or "degraded")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates whether tokens can be issued
	Signer string `json:"signer"`
}

// CatalogHealthResponse is returned by GET /v1/catalog/ to an authenticated
// client.
type CatalogHealthResponse struct {
	Status       string    `json:"status"`
	ClientName   string    `json:"client_name"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ============================================================================
// Catalog Types
// ============================================================================

// Lookup is one genre, country, language or classification. On the wire the
// keys carry the kind, e.g. {"genre_id":1,"genre_name":"Drama"}.
type Lookup struct {
	Kind string `json:"-"`
	ID   int64  `json:"-"`
	Name string `json:"-"`
}

func (l Lookup) MarshalJSON() ([]byte, error) {
	if l.Kind == "" {
		return nil, fmt.Errorf("marqueesdk: lookup has no kind")
	}
	return json.Marshal(map[string]any{
		l.Kind + "_id":   l.ID,
		l.Kind + "_name": l.Name,
	})
}

func (l *Lookup) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, value := range raw {
		kind, ok := strings.CutSuffix(key, "_id")
		if !ok {
			continue
		}
		name, ok := raw[kind+"_name"]
		if !ok {
			continue
		}

		var out Lookup
		out.Kind = kind
		if err := json.Unmarshal(value, &out.ID); err != nil {
			return fmt.Errorf("marqueesdk: lookup id: %w", err)
		}
		if err := json.Unmarshal(name, &out.Name); err != nil {
			return fmt.Errorf("marqueesdk: lookup name: %w", err)
		}
		*l = out
		return nil
	}
	return fmt.Errorf("marqueesdk: not a lookup object")
}

// CreateLookupRequest is the body of POST /v1/catalog/{kind}.
type CreateLookupRequest struct {
	Name string `json:"name"`
}

// Movie is the full movie view with references rendered by name.
type Movie struct {
	ID                  int64   `json:"movie_id"`
	DistributionTitle   string  `json:"distribution_title"`
	OriginalTitle       string  `json:"original_title"`
	OriginalLanguage    string  `json:"original_language"`
	HasSpanishSubtitles bool    `json:"has_spanish_subtitles"`
	ProductionYear      int     `json:"production_year"`
	WebsiteURL          string  `json:"website_url"`
	ImageURL            string  `json:"image_url"`
	DurationHours       int     `json:"duration_hours"`
	Summary             *string `json:"summary"`
	Classification      string  `json:"classification"`
}

// BasicMovie is the card view returned by basic_data_movie pages.
type BasicMovie struct {
	ID                int64  `json:"movie_id"`
	DistributionTitle string `json:"distribution_title"`
	ImageURL          string `json:"image_url"`
}

// CreateMovieRequest is the body of POST /v1/catalog/movie. Language,
// country, genre and classification are names that must already exist.
type CreateMovieRequest struct {
	DistributionTitle   string  `json:"distribution_title"`
	OriginalTitle       string  `json:"original_title"`
	OriginalLanguage    string  `json:"original_language"`
	HasSpanishSubtitles bool    `json:"has_spanish_subtitles"`
	ProductionYear      int     `json:"production_year"`
	WebsiteURL          string  `json:"website_url,omitempty"`
	ImageURL            string  `json:"image_url,omitempty"`
	DurationHours       int     `json:"duration_hours"`
	Summary             *string `json:"summary,omitempty"`
	Classification      string  `json:"classification"`
	OriginCountry       string  `json:"origin_country"`
	Genre               string  `json:"genre"`
}
