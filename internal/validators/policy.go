package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/go-policy-desk/models"
)

// Field name constants used to scope validation to a subset of the rules.
const (
	// FieldPersonal requires first name, last name and date of birth.
	FieldPersonal = "personal"

	// FieldAddress requires address line 1, city, pincode and phone.
	FieldAddress = "address"

	// FieldNominee requires the nominee's name and date of birth.
	FieldNominee = "nominee"

	// FieldAppointee requires appointee name and relation when the nominee
	// is a minor.
	FieldAppointee = "appointee"

	// FieldDocuments requires every attachment to hold a durable reference.
	FieldDocuments = "documents"

	// FieldStatus requires a known policy status.
	FieldStatus = "status"

	// FieldScope requires a known list scope, or none.
	FieldScope = "scope"

	// FieldEmail requires a well-formed recipient email.
	FieldEmail = "email"

	// FieldRole requires a known role.
	FieldRole = "role"
)

// submitFields are the checks a form must pass before submission.
var submitFields = []string{FieldPersonal, FieldAddress, FieldNominee, FieldAppointee}

var requiredPaths = map[string][]models.FieldPath{
	FieldPersonal: {
		models.Field(models.SectionPersonal, "firstName"),
		models.Field(models.SectionPersonal, "lastName"),
		models.Field(models.SectionPersonal, "dob"),
	},
	FieldAddress: {
		models.Field(models.SectionAddress, "addressLine1"),
		models.Field(models.SectionAddress, "city"),
		models.Field(models.SectionAddress, "pincode"),
		models.Field(models.SectionAddress, "phone"),
	},
	FieldNominee: {
		models.Field(models.SectionNominee, "name"),
		models.Field(models.SectionNominee, "dob"),
	},
	FieldAppointee: {
		models.Field(models.SectionAppointee, "name"),
		models.Field(models.SectionAppointee, "relation"),
	},
}

// PolicyValidator enforces the application rules. The clock decides the
// nominee's age.
type PolicyValidator struct {
	now func() time.Time
}

// NewPolicyValidator returns a validator using now as its clock, or
// time.Now when now is nil.
func NewPolicyValidator(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return &PolicyValidator{now: now}
}

func (v *PolicyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FormData:
		return v.validateForm(value, fields...)
	case *models.FormData:
		return v.validateForm(*value, fields...)

	case models.PolicyWrite:
		return v.validateWrite(value)
	case *models.PolicyWrite:
		return v.validateWrite(*value)

	case models.PolicyFilter:
		return v.validateFilter(value)

	case models.ShareRequest:
		return validateEmail(value.Email)
	case *models.ShareRequest:
		return validateEmail(value.Email)

	case models.RoleUpdate:
		if !value.Role.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidRole, value.Role)
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// validateForm collects every missing field of the requested groups rather
// than stopping at the first one.
func (v *PolicyValidator) validateForm(form models.FormData, fields ...string) error {
	if len(fields) == 0 {
		fields = submitFields
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldPersonal, FieldAddress, FieldNominee:
			verr.Missing = append(verr.Missing, missing(&form, requiredPaths[f])...)
		case FieldAppointee:
			if !form.Nominee.IsMinorAt(v.now()) {
				continue
			}
			if m := missing(&form, requiredPaths[f]); len(m) > 0 {
				verr.Missing = append(verr.Missing, m...)
				verr.AppointeeRequired = true
			}
		case FieldDocuments:
			if n := form.Documents.Pending(); n > 0 {
				return fmt.Errorf("%w: %d pending", ErrPendingAttachments, n)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(verr.Missing) > 0 {
		return verr
	}
	return nil
}

// validateWrite checks the status, and for a submission the full form with
// every attachment already uploaded.
func (v *PolicyValidator) validateWrite(write models.PolicyWrite) error {
	if !write.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, write.Status)
	}
	if write.Status == models.StatusDraft {
		return nil
	}

	return v.validateForm(write.FormData, append(submitFields, FieldDocuments)...)
}

func (v *PolicyValidator) validateFilter(filter models.PolicyFilter) error {
	if filter.Status != "" && !filter.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, filter.Status)
	}
	if filter.Scope != "" && !filter.Scope.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidScope, filter.Scope)
	}
	return nil
}

func missing(form *models.FormData, paths []models.FieldPath) []models.FieldPath {
	var out []models.FieldPath
	for _, p := range paths {
		value, err := form.Get(p)
		if err != nil || strings.TrimSpace(value) == "" {
			out = append(out, p)
		}
	}
	return out
}

// validateEmail accepts a bare address only, after normalization.
func validateEmail(email string) error {
	normalized := models.NormalizeEmail(email)
	if normalized == "" {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized || addr.Name != "" {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}
