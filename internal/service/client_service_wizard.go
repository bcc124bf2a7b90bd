package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/internal/validators"
	"github.com/MKhiriev/go-policy-desk/models"
)

// WizardDeps are the collaborators shared by every wizard session.
// Snapshots is optional; without it sessions are not autosaved.
type WizardDeps struct {
	Writer     PolicyWriter
	Reconciler AttachmentReconciler
	Snapshots  store.SnapshotRepository
	Now        func() time.Time
	Logger     *logger.Logger
}

// Wizard is one editing session of a policy application.
//
// The form, the persistence reference and the status only change through
// the setters below or from a record returned by the server. A session whose
// record was submitted is terminal; Reopen starts a new one.
type Wizard struct {
	deps      WizardDeps
	validator validators.Validator

	mu        sync.Mutex
	form      models.FormData
	ref       models.PolicyRef
	status    models.PolicyStatus
	step      models.Step
	readOnly  bool
	owned     bool
	busy      bool
	submitted bool
}

// NewWizard seeds a session from existing, or from the form defaults when
// existing is nil. An invalid startStep means the first step. An editable
// session is taken to belong to the caller; use [Wizard.MarkOwned] for a
// read-only view of the caller's own record.
func NewWizard(deps WizardDeps, existing *models.PolicyRecord, startStep models.Step, readOnly bool) *Wizard {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if !startStep.Valid() {
		startStep = models.FirstStep
	}

	w := &Wizard{
		deps:      deps,
		validator: validators.NewPolicyValidator(deps.Now),
		form:      models.NewFormData(),
		ref:       models.NotPersisted(),
		status:    models.StatusDraft,
		step:      startStep,
		readOnly:  readOnly,
		owned:     !readOnly,
	}
	if existing != nil {
		w.form = existing.FormData.Clone()
		w.ref = existing.Ref()
		w.status = existing.Status
		w.submitted = existing.Status == models.StatusSubmitted
	}
	return w
}

// RestoreWizard rebuilds a session from an autosaved snapshot.
func RestoreWizard(deps WizardDeps, snapshot models.WizardSnapshot) *Wizard {
	w := NewWizard(deps, nil, snapshot.Step, snapshot.ReadOnly)
	w.form = snapshot.FormData.Clone()
	w.ref = snapshot.Ref
	if snapshot.Status.Valid() {
		w.status = snapshot.Status
	}
	return w
}

func (w *Wizard) Step() models.Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Ref() models.PolicyRef {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ref
}

func (w *Wizard) Status() models.PolicyStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *Wizard) ReadOnly() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.readOnly
}

// Owned reports whether the signed-in agent owns the record, which lets a
// read-only session be reopened for edits.
func (w *Wizard) Owned() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.owned
}

// MarkOwned records that the viewer owns the record.
func (w *Wizard) MarkOwned() {
	w.mu.Lock()
	w.owned = true
	w.mu.Unlock()
}

// Busy reports whether a save or submission is in flight.
func (w *Wizard) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// Submitted reports whether the session reached its terminal state.
func (w *Wizard) Submitted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitted
}

// FormData returns a copy of the current form.
func (w *Wizard) FormData() models.FormData {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form.Clone()
}

// Section returns the content of the current step over a copy of the form.
func (w *Wizard) Section() (models.StepSection, error) {
	w.mu.Lock()
	form := w.form.Clone()
	step := w.step
	w.mu.Unlock()

	return form.SectionAt(step)
}

// Advance moves one step forward. It is a no-op on the last step and for a
// read-only session.
func (w *Wizard) Advance() models.Step {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.readOnly && w.step < models.LastStep {
		w.step++
	}
	return w.step
}

// Retreat moves one step back. It is a no-op on the first step and for a
// read-only session.
func (w *Wizard) Retreat() models.Step {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.readOnly && w.step > models.FirstStep {
		w.step--
	}
	return w.step
}

// JumpTo opens step directly, as the summary's edit links do.
func (w *Wizard) JumpTo(step models.Step) error {
	if !step.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.readOnly {
		return ErrWizardReadOnly
	}
	w.step = step
	return nil
}

// IsNomineeMinor reports whether the nominee is younger than 18 at now.
// A blank or unparsable date of birth counts as a minor.
func (w *Wizard) IsNomineeMinor(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form.Nominee.IsMinorAt(now)
}

// UpdateField sets the field addressed by path. Only that section changes.
func (w *Wizard) UpdateField(path models.FieldPath, value string) error {
	return w.mutate(func(form *models.FormData) error {
		return form.Set(path, value)
	})
}

func (w *Wizard) AddFamilyMember() error {
	return w.mutate(func(form *models.FormData) error {
		form.FamilyHistory = append(form.FamilyHistory, models.NewFamilyMember())
		return nil
	})
}

func (w *Wizard) RemoveFamilyMember(row int) error {
	return w.mutate(func(form *models.FormData) error {
		if row < 0 || row >= len(form.FamilyHistory) {
			return fmt.Errorf("%w: %d", models.ErrRowOutOfRange, row)
		}
		form.FamilyHistory = append(form.FamilyHistory[:row:row], form.FamilyHistory[row+1:]...)
		return nil
	})
}

func (w *Wizard) AddPreviousPolicy() error {
	return w.mutate(func(form *models.FormData) error {
		form.PreviousPolicies = append(form.PreviousPolicies, models.PreviousPolicy{})
		return nil
	})
}

func (w *Wizard) RemovePreviousPolicy(row int) error {
	return w.mutate(func(form *models.FormData) error {
		if row < 0 || row >= len(form.PreviousPolicies) {
			return fmt.Errorf("%w: %d", models.ErrRowOutOfRange, row)
		}
		form.PreviousPolicies = append(form.PreviousPolicies[:row:row], form.PreviousPolicies[row+1:]...)
		return nil
	})
}

// AttachFile stages a selected file for upload on submission.
func (w *Wizard) AttachFile(name, mimeType string, data []byte) error {
	return w.mutate(func(form *models.FormData) error {
		form.Documents = append(form.Documents, models.NewFileDocument(name, mimeType, data))
		return nil
	})
}

// AttachCapture stages a camera capture given as a JPEG data URL.
func (w *Wizard) AttachCapture(dataURL string) error {
	if _, _, err := models.DecodeDataURL(dataURL); err != nil {
		return err
	}

	now := w.deps.Now()
	return w.mutate(func(form *models.FormData) error {
		form.Documents = append(form.Documents, models.NewCapturedDocument(dataURL, now))
		return nil
	})
}

func (w *Wizard) RemoveDocument(row int) error {
	return w.mutate(func(form *models.FormData) error {
		if row < 0 || row >= len(form.Documents) {
			return fmt.Errorf("%w: %d", models.ErrRowOutOfRange, row)
		}
		form.Documents = append(form.Documents[:row:row], form.Documents[row+1:]...)
		return nil
	})
}

// mutate applies fn to a copy of the form and keeps the copy only when fn
// succeeds.
func (w *Wizard) mutate(fn func(form *models.FormData) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editableLocked(); err != nil {
		return err
	}

	next := w.form.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	w.form = next

	w.autosaveLocked()
	return nil
}

func (w *Wizard) editableLocked() error {
	switch {
	case w.readOnly:
		return ErrWizardReadOnly
	case w.busy:
		return ErrWizardBusy
	case w.submitted:
		return ErrWizardSubmitted
	}
	return nil
}

// SaveDraft stores the session as a draft from any step without validation.
func (w *Wizard) SaveDraft(ctx context.Context) (models.PolicyRecord, error) {
	write, err := w.begin(ctx, models.StatusDraft, false)
	if err != nil {
		return models.PolicyRecord{}, err
	}

	ctx = context.WithoutCancel(ctx)
	record, err := w.deps.Writer.SavePolicy(ctx, write)
	if err != nil {
		w.abort()
		w.deps.Logger.Err(err).Str("func", "Wizard.SaveDraft").Stringer("ref", write.Ref).Msg("error saving draft")
		return models.PolicyRecord{}, mapAdapterError(err)
	}

	w.commit(ctx, write.Ref, record)
	return record, nil
}

// Submit validates the form, uploads every staged attachment and stores the
// application as submitted. A failure at any stage leaves the form as it
// was.
func (w *Wizard) Submit(ctx context.Context) (models.PolicyRecord, error) {
	write, err := w.begin(ctx, models.StatusSubmitted, true)
	if err != nil {
		return models.PolicyRecord{}, err
	}

	ctx = context.WithoutCancel(ctx)
	docs, err := w.deps.Reconciler.Reconcile(ctx, write.FormData.Documents, write.FormData.Personal)
	if err != nil {
		w.abort()
		return models.PolicyRecord{}, err
	}
	write.FormData.Documents = docs

	record, err := w.deps.Writer.SavePolicy(ctx, write)
	if err != nil {
		w.abort()
		w.deps.Logger.Err(err).Str("func", "Wizard.Submit").Stringer("ref", write.Ref).Msg("error submitting application")
		return models.PolicyRecord{}, mapAdapterError(err)
	}

	w.commit(ctx, write.Ref, record)
	return record, nil
}

// begin checks the session can be written and marks it busy.
func (w *Wizard) begin(ctx context.Context, status models.PolicyStatus, validate bool) (models.PolicyWrite, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editableLocked(); err != nil {
		return models.PolicyWrite{}, err
	}
	if validate {
		if err := w.validator.Validate(ctx, w.form); err != nil {
			return models.PolicyWrite{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	w.busy = true
	return models.PolicyWrite{Ref: w.ref, Status: status, FormData: w.form.Clone()}, nil
}

func (w *Wizard) abort() {
	w.mu.Lock()
	w.busy = false
	w.mu.Unlock()
}

// commit replaces the session state with the stored record.
func (w *Wizard) commit(ctx context.Context, previous models.PolicyRef, record models.PolicyRecord) {
	w.mu.Lock()
	w.form = record.FormData.Clone()
	w.ref = record.Ref()
	w.status = record.Status
	w.submitted = record.Status == models.StatusSubmitted
	w.busy = false
	w.mu.Unlock()

	if w.deps.Snapshots == nil {
		return
	}
	if err := w.deps.Snapshots.Delete(ctx, models.SnapshotKey(previous)); err != nil {
		w.deps.Logger.Warn().Err(err).Str("func", "Wizard.commit").Msg("error dropping wizard snapshot")
	}
}

// Reopen starts a new editing session over the same stored record. Saving
// it updates the record rather than creating another one. The owner may
// reopen a read-only view; a share recipient may not.
func (w *Wizard) Reopen() (*Wizard, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case w.readOnly && !w.owned:
		return nil, ErrWizardReadOnly
	case w.busy:
		return nil, ErrWizardBusy
	case !w.ref.IsPersisted():
		return nil, ErrWizardNotSaved
	}

	return &Wizard{
		deps:      w.deps,
		validator: w.validator,
		form:      w.form.Clone(),
		ref:       w.ref,
		status:    w.status,
		step:      models.FirstStep,
		owned:     true,
	}, nil
}

// Snapshot captures the session for local autosave.
func (w *Wizard) Snapshot() models.WizardSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Wizard) snapshotLocked() models.WizardSnapshot {
	return models.WizardSnapshot{
		Ref:       w.ref,
		Status:    w.status,
		Step:      w.step,
		ReadOnly:  w.readOnly,
		FormData:  w.form.Clone(),
		UpdatedAt: w.deps.Now().UTC(),
	}
}

// autosaveLocked stores a snapshot; failures are only logged.
func (w *Wizard) autosaveLocked() {
	if w.deps.Snapshots == nil {
		return
	}
	if err := w.deps.Snapshots.Save(context.Background(), w.snapshotLocked()); err != nil {
		w.deps.Logger.Warn().Err(err).Str("func", "Wizard.autosave").Msg("error saving wizard snapshot")
	}
}
