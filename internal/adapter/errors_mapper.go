package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// messageErrors tell apart failures sharing a status code by the message
// the service wrote into the body.
var messageErrors = map[string]error{
	app.MsgVersionConflict:    ErrVersionConflict,
	app.MsgAlreadyRegistered:  ErrAlreadyRegistered,
	app.MsgVaultLimitExceeded: ErrVaultLimitExceeded,
}

// mapHTTPError turns a non-2xx response into an error wrapping the sentinel
// of its status and, when the body is a known message, the sentinel of that
// message too.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	statusErr, ok := statusErrors[status]
	if !ok {
		if body == "" {
			body = http.StatusText(status)
		}
		return fmt.Errorf("http %d: %s", status, body)
	}

	if messageErr, ok := messageErrors[body]; ok {
		return fmt.Errorf("%w: %w", statusErr, messageErr)
	}
	return fmt.Errorf("%w: %s", statusErr, body)
}
