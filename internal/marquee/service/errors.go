package service

import "errors"

// Every error a service returns to the HTTP layer is, or wraps, one of these.
var (
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrRegistrationFailed = errors.New("registration_failed")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrStorageUnavailable = errors.New("storage_unavailable")
	ErrTokenIssuance      = errors.New("token_issuance_failed")
	ErrNotFound           = errors.New("not_found")
	ErrInvalidPage        = errors.New("invalid_page")
	ErrAlreadyExists      = errors.New("already_exists")
)

// Errors lists the exported sentinels. The HTTP error table is checked
// against it.
var Errors = []error{
	ErrInvalidRequest,
	ErrRegistrationFailed,
	ErrUsernameTaken,
	ErrInvalidCredentials,
	ErrStorageUnavailable,
	ErrTokenIssuance,
	ErrNotFound,
	ErrInvalidPage,
	ErrAlreadyExists,
}
