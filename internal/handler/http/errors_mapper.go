package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-policy-desk/internal/app"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrSelfShare:               http.StatusBadRequest,
	service.ErrUnknownTable:            http.StatusBadRequest,
	service.ErrNoIdentity:              http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAdminRequired:           http.StatusForbidden,
	service.ErrNotPolicyOwner:          http.StatusNotFound,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrPolicyNotFound:       http.StatusNotFound,
	store.ErrNotificationNotFound: http.StatusNotFound,
	store.ErrProfileNotFound:      http.StatusNotFound,
	store.ErrDuplicateGrant:       http.StatusConflict,
	store.ErrInvalidBlobPath:      http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingFormData:     http.StatusInternalServerError,
	store.ErrUploadingBlob:        http.StatusInternalServerError,
	store.ErrSubscribing:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is checked in order: the first match wins. The client maps
// these bodies back to its own sentinels.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrInvalidEmail, app.MsgInvalidEmail},
	{service.ErrSelfShare, app.MsgSelfShare},
	{service.ErrUnknownTable, app.MsgInvalidTable},
	{service.ErrNoIdentity, app.MsgNoIdentity},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrAdminRequired, app.MsgAdminRequired},
	{service.ErrNotPolicyOwner, app.MsgPolicyNotFound},
	{service.ErrVersionIsNotSpecified, app.MsgVersionIsNotSpecified},
	{store.ErrPolicyNotFound, app.MsgPolicyNotFound},
	{store.ErrNotificationNotFound, app.MsgNotificationNotFound},
	{store.ErrProfileNotFound, app.MsgProfileNotFound},
	{store.ErrDuplicateGrant, app.MsgDuplicateGrant},
	{store.ErrInvalidBlobPath, app.MsgInvalidBlobPath},
}

// messageFromError returns the response body for err. Validation failures
// keep their text so the caller sees which fields are missing.
func messageFromError(err error) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return app.MsgPayloadTooLarge
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	if errors.Is(err, service.ErrValidation) {
		return err.Error()
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with its status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	http.Error(w, messageFromError(err), status)
}
