package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("server unavailable")

	ErrStreamClosed = errors.New("change stream closed")
)

// ResponseError is a non-2xx answer from the server. It unwraps to the
// sentinel matching its status, if there is one.
type ResponseError struct {
	Status int
	// Message is the plain-text body, trimmed and capped.
	Message string
	kind    error
}

func (e *ResponseError) Error() string {
	if e.kind == nil {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return e.kind.Error() + ": " + e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
