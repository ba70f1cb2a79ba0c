package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponseMap lists the service and store errors a client can act on.
// The message is written as the response body; the client adapter matches
// some of them to tell apart failures sharing a status code.
var errorResponseMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrInvalidVaultCredentials: {http.StatusUnauthorized, app.MsgInvalidVaultCredentials},
	service.ErrNotRegistered:           {http.StatusNotFound, app.MsgNotRegistered},
	service.ErrAlreadyRegistered:       {http.StatusConflict, app.MsgAlreadyRegistered},
	service.ErrVaultNotFound:           {http.StatusNotFound, app.MsgVaultNotFound},
	service.ErrProfileNotFound:         {http.StatusNotFound, app.MsgProfileNotFound},
	service.ErrVaultVersionConflict:    {http.StatusConflict, app.MsgVersionConflict},
	service.ErrInvalidOwnershipProof:   {http.StatusForbidden, app.MsgInvalidOwnershipProof},
	service.ErrVaultLimitExceeded:      {http.StatusForbidden, app.MsgVaultLimitExceeded},

	store.ErrVersionConflict: {http.StatusConflict, app.MsgVersionConflict},
	store.ErrVaultNotFound:   {http.StatusNotFound, app.MsgVaultNotFound},
	store.ErrNoUserWasFound:  {http.StatusNotFound, app.MsgNotRegistered},
}

func responseFromError(err error) errorResponse {
	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			return response
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and answers with the status and message it maps to.
// Internal failures are logged at error level, client mistakes at warn.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	response := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if response.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", response.status).Send()

	http.Error(w, response.message, response.status)
}
