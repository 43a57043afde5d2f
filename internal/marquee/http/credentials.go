package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/marquee/internal/marquee/service"
	"github.com/aussiebroadwan/marquee/pkg/httpx"
	"github.com/aussiebroadwan/marquee/pkg/marqueesdk"
	"github.com/aussiebroadwan/marquee/pkg/slogx"
)

// CredentialsHandler serves registration and login.
type CredentialsHandler struct {
	CredentialService *service.CredentialService
}

// HandleRegister handles POST /v1/user/register
//
//	@Summary		Register Client
//	@Description	Creates a client with the given name and password and returns a token for it.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marqueesdk.CredentialsRequest	true	"client_name and password"
//	@Success		201		{object}	marqueesdk.TokenResponse		"token"
//	@Failure		400		{object}	marqueesdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	marqueesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	marqueesdk.ErrorResponse		"error, error_description"
//	@Failure		503		{object}	marqueesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/user/register [post].
func (h *CredentialsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, http.StatusCreated, h.CredentialService.Register)
}

// HandleLogin handles POST /v1/user/login
//
//	@Summary		Login
//	@Description	Exchanges a client name and password for a token valid for one hour.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marqueesdk.CredentialsRequest	true	"client_name and password"
//	@Success		200		{object}	marqueesdk.TokenResponse		"token"
//	@Failure		400		{object}	marqueesdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	marqueesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	marqueesdk.ErrorResponse		"error, error_description"
//	@Failure		503		{object}	marqueesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/user/login [post].
func (h *CredentialsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, http.StatusOK, h.CredentialService.Login)
}

func (h *CredentialsHandler) handle(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	op func(context.Context, service.Credentials) (string, error),
) {
	ctx := r.Context()

	var req marqueesdk.CredentialsRequest
	if err := decodeBody(w, r, &req); err != nil {
		slogx.FromContext(ctx).Info("credentials body rejected", "error", err)
		marqueesdk.ErrMalformedBody.WriteError(w)
		return
	}

	token, err := op(ctx, service.Credentials{
		ClientName: req.ClientName,
		Password:   req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// WriteJSON sets Cache-Control: no-store.
	httpx.WriteJSON(w, status, marqueesdk.TokenResponse{Token: token})
}
