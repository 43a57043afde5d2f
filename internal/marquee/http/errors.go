package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/marquee/internal/marquee/service"
	"github.com/aussiebroadwan/marquee/pkg/marqueesdk"
	"github.com/aussiebroadwan/marquee/pkg/slogx"
)

// serviceErrors is the one place a service error becomes a response. It is
// matched in order with errors.Is.
var serviceErrors = []struct {
	err  error
	resp *marqueesdk.APIError
}{
	{service.ErrInvalidRequest, marqueesdk.NewAPIError(http.StatusBadRequest, marqueesdk.ErrorCodeInvalidRequest, "the request is malformed or missing required fields")},
	{service.ErrInvalidPage, marqueesdk.NewAPIError(http.StatusBadRequest, marqueesdk.ErrorCodeInvalidPage, "page must be >= 0 and quantity between 1 and 100")},
	{service.ErrUsernameTaken, marqueesdk.NewAPIError(http.StatusConflict, marqueesdk.ErrorCodeUsernameTaken, "client name already registered")},
	{service.ErrInvalidCredentials, marqueesdk.NewAPIError(http.StatusUnauthorized, marqueesdk.ErrorCodeInvalidCredentials, "invalid client name or password")},
	{service.ErrNotFound, marqueesdk.NewAPIError(http.StatusNotFound, marqueesdk.ErrorCodeNotFound, "resource not found")},
	{service.ErrAlreadyExists, marqueesdk.NewAPIError(http.StatusConflict, marqueesdk.ErrorCodeAlreadyExists, "resource already exists")},
	{service.ErrRegistrationFailed, marqueesdk.NewAPIError(http.StatusInternalServerError, marqueesdk.ErrorCodeRegistrationFailed, "registration failed")},
	{service.ErrTokenIssuance, marqueesdk.NewAPIError(http.StatusInternalServerError, marqueesdk.ErrorCodeTokenIssuance, "token could not be issued")},
	{service.ErrStorageUnavailable, marqueesdk.NewAPIError(http.StatusServiceUnavailable, marqueesdk.ErrorCodeStorageUnavailable, "storage is unavailable, try again later")},
}

// apiError finds the response for err, falling back to a 500.
func apiError(err error) *marqueesdk.APIError {
	for _, e := range serviceErrors {
		if errors.Is(err, e.err) {
			return e.resp
		}
	}
	return marqueesdk.ErrServerError
}

// writeServiceError renders err. Only the fixed description goes to the
// client, the detail stays in the logs.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	resp := apiError(err)

	log := slogx.FromContext(r.Context())
	if resp.StatusCode >= http.StatusInternalServerError {
		log.Error("request failed", "error", err, "code", resp.Code)
	} else {
		log.Info("request rejected", "error", err, "code", resp.Code)
	}

	resp.WriteError(w)
}
