package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of a failed response ends up in the error text.
const maxErrorBody = 256

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrUnavailable,
	http.StatusGatewayTimeout:        ErrUnavailable,
}

// mapHTTPError turns a non-2xx response into a [*ResponseError].
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}
	return statusError(code, string(resp.Body()))
}

// statusError is mapHTTPError for responses read as a raw stream.
func statusError(code int, body string) error {
	body = strings.TrimSpace(body)
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	if body == "" {
		body = http.StatusText(code)
	}

	return NewResponseError(code, body)
}

// NewResponseError builds the error for a status and its message as the
// server sent it.
func NewResponseError(status int, message string) *ResponseError {
	return &ResponseError{Status: status, Message: message, kind: statusErrors[status]}
}
