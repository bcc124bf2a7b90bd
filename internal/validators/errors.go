package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-policy-desk/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField      = errors.New("required field is empty")
	ErrAppointeeRequired  = errors.New("appointee is required for a minor nominee")
	ErrPendingAttachments = errors.New("attachments are not uploaded")
	ErrInvalidStatus      = errors.New("invalid policy status")
	ErrInvalidScope       = errors.New("invalid list scope")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidRole        = errors.New("invalid role")
)

// ValidationError lists every required field a form is missing.
type ValidationError struct {
	Missing           []models.FieldPath
	AppointeeRequired bool
}

func (e *ValidationError) Error() string {
	paths := make([]string, 0, len(e.Missing))
	for _, p := range e.Missing {
		paths = append(paths, string(p))
	}

	msg := ErrRequiredField.Error() + ": " + strings.Join(paths, ", ")
	if e.AppointeeRequired {
		msg = ErrAppointeeRequired.Error() + "; " + msg
	}
	return msg
}

// Is matches ErrRequiredField, and ErrAppointeeRequired when the appointee
// rule failed.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrRequiredField:
		return len(e.Missing) > 0
	case ErrAppointeeRequired:
		return e.AppointeeRequired
	}
	return false
}
