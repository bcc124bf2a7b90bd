// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var fixedNow = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func newTestValidator() Validator {
	return NewPolicyValidator(func() time.Time { return fixedNow })
}

func completeForm() models.FormData {
	form := models.NewFormData()
	form.Personal.FirstName = "Asha"
	form.Personal.LastName = "Rao"
	form.Personal.DOB = "1990-04-02"
	form.Address.AddressLine1 = "12 MG Road"
	form.Address.City = "Pune"
	form.Address.Pincode = "411001"
	form.Address.Phone = "9800000000"
	form.Nominee.Name = "Ravi Rao"
	form.Nominee.DOB = "1988-01-01"
	return form
}

// ---------------------------------------------------------------------------
// Form
// ---------------------------------------------------------------------------

func TestValidateForm_Complete(t *testing.T) {
	assert.NoError(t, newTestValidator().Validate(context.Background(), completeForm()))
}

func TestValidateForm_ListsEveryMissingField(t *testing.T) {
	form := completeForm()
	form.Personal.FirstName = ""
	form.Address.City = "   "

	err := newTestValidator().Validate(context.Background(), &form)
	require.ErrorIs(t, err, ErrRequiredField)
	assert.NotErrorIs(t, err, ErrAppointeeRequired)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []models.FieldPath{"personal.firstName", "address.city"}, verr.Missing)
}

func TestValidateForm_MinorNomineeNeedsAppointee(t *testing.T) {
	form := completeForm()
	form.Nominee.DOB = "2012-03-03"

	err := newTestValidator().Validate(context.Background(), form)
	require.ErrorIs(t, err, ErrAppointeeRequired)
	require.ErrorIs(t, err, ErrRequiredField)

	form.Appointee = models.Appointee{Name: "Meera Rao", Relation: "Aunt"}
	assert.NoError(t, newTestValidator().Validate(context.Background(), form))
}

func TestValidateForm_AdultNomineeIgnoresAppointee(t *testing.T) {
	form := completeForm()
	form.Nominee.DOB = "2008-06-15"

	assert.NoError(t, newTestValidator().Validate(context.Background(), form))
}

func TestValidateForm_ScopedFields(t *testing.T) {
	form := models.NewFormData()
	form.Personal = models.Personal{FirstName: "A", LastName: "B", DOB: "2000-01-01"}

	v := newTestValidator()
	assert.NoError(t, v.Validate(context.Background(), form, FieldPersonal))
	assert.ErrorIs(t, v.Validate(context.Background(), form, FieldAddress), ErrRequiredField)
	assert.ErrorIs(t, v.Validate(context.Background(), form, "bogus"), ErrUnknownField)
}

func TestValidateForm_PendingDocuments(t *testing.T) {
	form := completeForm()
	form.Documents = models.Documents{models.NewFileDocument("id.pdf", "application/pdf", []byte("x"))}

	err := newTestValidator().Validate(context.Background(), form, FieldDocuments)
	assert.ErrorIs(t, err, ErrPendingAttachments)

	form.Documents[0] = form.Documents[0].WithRemoteRef("http://blobs/id.pdf")
	assert.NoError(t, newTestValidator().Validate(context.Background(), form, FieldDocuments))
}

// ---------------------------------------------------------------------------
// Writes, filters, shares, roles
// ---------------------------------------------------------------------------

func TestValidateWrite(t *testing.T) {
	local := completeForm()
	local.Documents = models.Documents{models.NewFileDocument("a.txt", "text/plain", []byte("a"))}

	tests := []struct {
		name    string
		write   models.PolicyWrite
		wantErr error
	}{
		{name: "empty draft", write: models.PolicyWrite{Status: models.StatusDraft, FormData: models.NewFormData()}},
		{name: "draft with local payloads", write: models.PolicyWrite{Status: models.StatusDraft, FormData: local}},
		{name: "complete submission", write: models.PolicyWrite{Status: models.StatusSubmitted, FormData: completeForm()}},
		{name: "incomplete submission", write: models.PolicyWrite{Status: models.StatusSubmitted, FormData: models.NewFormData()}, wantErr: ErrRequiredField},
		{name: "submission with local payloads", write: models.PolicyWrite{Status: models.StatusSubmitted, FormData: local}, wantErr: ErrPendingAttachments},
		{name: "unknown status", write: models.PolicyWrite{Status: "ARCHIVED"}, wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestValidator().Validate(context.Background(), tt.write)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateFilter(t *testing.T) {
	v := newTestValidator()
	assert.NoError(t, v.Validate(context.Background(), models.PolicyFilter{}))
	assert.NoError(t, v.Validate(context.Background(), models.PolicyFilter{Status: models.StatusDraft, Scope: models.ScopeShared}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.PolicyFilter{Status: "x"}), ErrInvalidStatus)
	assert.ErrorIs(t, v.Validate(context.Background(), models.PolicyFilter{Scope: "x"}), ErrInvalidScope)
}

func TestValidateShareRequest(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{email: "agent2@example.com"},
		{email: " Agent2@Example.com "},
		{email: "", wantErr: true},
		{email: "not-an-email", wantErr: true},
		{email: "Ravi <ravi@example.com>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := newTestValidator().Validate(context.Background(), models.ShareRequest{Email: tt.email})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateRoleUpdate(t *testing.T) {
	v := newTestValidator()
	assert.NoError(t, v.Validate(context.Background(), models.RoleUpdate{Role: models.RoleAdmin}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.RoleUpdate{Role: "owner"}), ErrInvalidRole)
}

func TestValidate_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, newTestValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
