package adapter

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

var (
	// ErrBadRequest is returned for HTTP 400 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned for HTTP 401 responses: the identity token
	// or the vault credentials were rejected.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden is returned for HTTP 403 responses.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned for HTTP 409 responses.
	ErrConflict = errors.New("conflict")
	// ErrInternalServerError is returned for HTTP 500 responses.
	ErrInternalServerError = errors.New("internal server error")
	// ErrBadGateway is returned for HTTP 502 responses.
	ErrBadGateway = errors.New("bad gateway")

	// ErrVersionConflict marks a 409 caused by a stale vault version. It is
	// always reported together with ErrConflict.
	ErrVersionConflict = errors.New(app.MsgVersionConflict)
	// ErrAlreadyRegistered marks a 409 answering a registration of a user
	// that already has an account.
	ErrAlreadyRegistered = errors.New(app.MsgAlreadyRegistered)
	// ErrVaultLimitExceeded marks a 403 answering a vault creation that would
	// exceed the vaults-per-profile entitlement.
	ErrVaultLimitExceeded = errors.New(app.MsgVaultLimitExceeded)

	// ErrEmptyToken is returned when the identity token is blank.
	ErrEmptyToken = errors.New("identity token is empty")
)
