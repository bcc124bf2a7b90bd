package tui

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type attachMode int

const (
	attachNone attachMode = iota
	attachFile
	attachScan
)

type wizardModel struct {
	ctx context.Context
	now func() time.Time

	wizard *service.Wizard
	fields []fieldSpec
	inputs []textinput.Model
	focus  int
	docIdx int

	attach      attachMode
	attachInput textinput.Model

	saving bool
	status string
	errMsg string
	// overlay holds a submission failure until dismissed
	overlay *errorOverlayModel
}

func newWizardModel(ctx context.Context) *wizardModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/file"
	pathInput.CharLimit = 1024
	pathInput.Width = 60

	return &wizardModel{
		ctx:         ctx,
		now:         time.Now,
		attachInput: pathInput,
	}
}

func (m *wizardModel) Init() tea.Cmd {
	return nil
}

func (m *wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wizardOpenedMsg:
		m.wizard = msg.wizard
		m.saving = false
		m.status, m.errMsg, m.overlay = "", "", nil
		m.attach = attachNone
		m.focus, m.docIdx = 0, 0
		m.rebuild()
		return m, textinput.Blink
	case wizardSavedMsg:
		m.saving = false
		if msg.err != nil {
			if msg.submit {
				m.overlay = newSubmitOverlay(msg.err)
			} else {
				m.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		m.errMsg = ""
		if msg.submit {
			m.status = "Application submitted (" + shortID(msg.record.ID) + ")"
		} else {
			m.status = "Draft saved (" + shortID(msg.record.ID) + ")"
		}
		m.rebuild()
		return m, clearStatusAfter()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard unavailable: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied " + msg.what
		return m, clearStatusAfter()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if m.wizard == nil {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}
	if m.attach != attachNone {
		return m.updateAttach(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.commitFocused()
		return m, navigate(pageDashboard, refreshRequestedMsg{})
	case key.Matches(keyMsg, keys.nextStep):
		m.commitFocused()
		m.wizard.Advance()
		m.focus, m.docIdx = 0, 0
		m.rebuild()
		return m, nil
	case key.Matches(keyMsg, keys.prevStep):
		m.commitFocused()
		m.wizard.Retreat()
		m.focus, m.docIdx = 0, 0
		m.rebuild()
		return m, nil
	case key.Matches(keyMsg, keys.saveDraft):
		return m, m.cmdSave(false)
	case key.Matches(keyMsg, keys.submit):
		return m, m.cmdSave(true)
	case key.Matches(keyMsg, keys.reopen):
		return m.reopen()
	case key.Matches(keyMsg, keys.addRow):
		return m.addRow()
	case key.Matches(keyMsg, keys.removeRow):
		return m.removeRow()
	case key.Matches(keyMsg, keys.attach):
		return m.startAttach(attachFile)
	case key.Matches(keyMsg, keys.attachScan):
		return m.startAttach(attachScan)
	case key.Matches(keyMsg, keys.copyRef):
		return m, m.cmdCopyRef()
	}

	switch m.wizard.Step() {
	case models.StepSummary:
		return m.updateSummary(keyMsg)
	case models.StepDocuments:
		return m.updateDocuments(keyMsg)
	}

	switch keyMsg.String() {
	case "tab", "down", "enter":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m *wizardModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.attach != attachNone {
		var cmd tea.Cmd
		m.attachInput, cmd = m.attachInput.Update(msg)
		return m, cmd
	}
	if m.focus < 0 || m.focus >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *wizardModel) updateSummary(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := keyMsg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if err := m.wizard.JumpTo(models.Step(s[0] - '0')); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.focus, m.docIdx = 0, 0
		m.rebuild()
		return m, nil
	}
	if key.Matches(keyMsg, keys.enter) {
		return m, m.cmdSave(true)
	}
	return m, nil
}

func (m *wizardModel) updateDocuments(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	docs := m.wizard.FormData().Documents
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.docIdx > 0 {
			m.docIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.docIdx < len(docs)-1 {
			m.docIdx++
		}
	}
	return m, nil
}

func (m *wizardModel) updateAttach(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.attach = attachNone
		m.attachInput.Blur()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		path := strings.TrimSpace(m.attachInput.Value())
		mode := m.attach
		m.attach = attachNone
		m.attachInput.Blur()
		m.attachInput.SetValue("")
		if path == "" {
			return m, nil
		}
		if err := m.attachPath(path, mode); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Attached " + filepath.Base(path)
		docs := m.wizard.FormData().Documents
		m.docIdx = clampIndex(len(docs)-1, len(docs))
		return m, clearStatusAfter()
	}
	return m.updateFocused(keyMsg)
}

// attachPath stages a file from disk. A scan is stored the way a camera
// capture is, as a JPEG data URL.
func (m *wizardModel) attachPath(path string, mode attachMode) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	if mode == attachScan {
		return m.wizard.AttachCapture(models.EncodeDataURL("image/jpeg", data))
	}
	return m.wizard.AttachFile(filepath.Base(path), detectMimeType(path, data), data)
}

func (m *wizardModel) startAttach(mode attachMode) (tea.Model, tea.Cmd) {
	if m.wizard.Step() != models.StepDocuments {
		m.errMsg = "Attachments are added on the Documents step"
		return m, nil
	}
	m.attach = mode
	m.errMsg = ""
	return m, m.attachInput.Focus()
}

func (m *wizardModel) addRow() (tea.Model, tea.Cmd) {
	m.commitFocused()

	var err error
	switch m.wizard.Step() {
	case models.StepFamilyHistory:
		err = m.wizard.AddFamilyMember()
	case models.StepPreviousPolicies:
		err = m.wizard.AddPreviousPolicy()
	default:
		return m, nil
	}
	if err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}

	m.rebuild()
	// focus the first input of the new row
	m.setFocus(len(m.inputs) - len(sectionLabels[listSection(m.wizard.Step())]))
	return m, nil
}

func (m *wizardModel) removeRow() (tea.Model, tea.Cmd) {
	var err error
	switch step := m.wizard.Step(); {
	case step == models.StepDocuments:
		err = m.wizard.RemoveDocument(m.docIdx)
	case isListStep(step):
		if m.focus >= len(m.fields) {
			return m, nil
		}
		m.commitFocused()
		r := m.fields[m.focus].row
		if step == models.StepFamilyHistory {
			err = m.wizard.RemoveFamilyMember(r)
		} else {
			err = m.wizard.RemovePreviousPolicy(r)
		}
	default:
		return m, nil
	}
	if err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}

	m.errMsg = ""
	m.rebuild()
	return m, nil
}

func (m *wizardModel) reopen() (tea.Model, tea.Cmd) {
	next, err := m.wizard.Reopen()
	if err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}
	return m.Update(wizardOpenedMsg{wizard: next})
}

// commitFocused writes the focused input back to the form when it changed.
func (m *wizardModel) commitFocused() {
	if m.focus < 0 || m.focus >= len(m.fields) || m.wizard.ReadOnly() || m.wizard.Submitted() {
		return
	}

	field := m.fields[m.focus]
	value := m.inputs[m.focus].Value()
	form := m.wizard.FormData()
	if current, err := form.Get(field.path); err == nil && current == value {
		return
	}

	if err := m.wizard.UpdateField(field.path, value); err != nil {
		m.errMsg = humanizeError(err)
		return
	}
	m.errMsg = ""

	// a nominee date of birth decides whether appointee inputs exist
	if field.path == models.Field(models.SectionNominee, "dob") {
		focus := m.focus
		m.rebuild()
		m.setFocus(focus)
	}
}

func (m *wizardModel) moveFocus(delta int) {
	if len(m.inputs) == 0 {
		return
	}
	m.commitFocused()
	m.setFocus((m.focus + delta + len(m.inputs)) % len(m.inputs))
}

func (m *wizardModel) setFocus(i int) {
	if len(m.inputs) == 0 {
		m.focus = 0
		return
	}
	i = clampIndex(i, len(m.inputs))
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	if !m.wizard.ReadOnly() && !m.wizard.Submitted() {
		m.inputs[m.focus].Focus()
	}
}

// rebuild recreates the inputs of the current step from the form.
func (m *wizardModel) rebuild() {
	section, err := m.wizard.Section()
	if err != nil {
		m.errMsg = humanizeError(err)
		m.fields, m.inputs = nil, nil
		return
	}

	form := m.wizard.FormData()
	m.fields = sectionFields(section, m.wizard.IsNomineeMinor(m.now()))
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = 40
		if value, err := form.Get(f.path); err == nil {
			in.SetValue(value)
		}
		m.inputs[i] = in
	}

	focus := m.focus
	m.focus = len(m.inputs)
	m.setFocus(focus)
	m.docIdx = clampIndex(m.docIdx, len(form.Documents))
}

func (m *wizardModel) View() string {
	if m.wizard == nil {
		return renderPage("APPLICATION", "no application open", "esc: back")
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	step := m.wizard.Step()
	form := m.wizard.FormData()
	switch step {
	case models.StepSummary:
		b.WriteString(renderSummary(form, m.wizard.IsNomineeMinor(m.now())))
	case models.StepDocuments:
		b.WriteString(renderDocuments(form.Documents, m.docIdx))
		if pending := form.Documents.Pending(); pending > 0 {
			b.WriteString(row("\n%d file(s) will be uploaded on submission", pending))
		}
		if m.attach != attachNone {
			b.WriteString("\nPath │ [")
			b.WriteString(m.attachInput.View())
			b.WriteString("]")
		}
	default:
		b.WriteString(m.viewInputs())
	}

	if m.saving || m.wizard.Busy() {
		b.WriteString("\nSaving...")
	}
	b.WriteString(statusLines(m.status, m.errMsg))

	if m.overlay != nil {
		b.WriteString("\n\n")
		b.WriteString(m.overlay.View())
	}

	return renderPage("APPLICATION", b.String(), m.hotKeys())
}

func (m *wizardModel) viewHeader() string {
	var b strings.Builder

	ref := "new application"
	if id, ok := m.wizard.Ref().ID(); ok {
		ref = "policy " + id
	}
	mode := ""
	switch {
	case m.wizard.ReadOnly():
		mode = " │ read-only"
	case m.wizard.Submitted():
		mode = " │ locked"
	}
	b.WriteString(row("%s │ %s%s", ref, m.wizard.Status(), mode))

	current := m.wizard.Step()
	for _, s := range models.Steps() {
		label := fmt.Sprintf("%d %s", int(s), s.Title())
		if s == current {
			label = currentStep.Render(label)
		} else {
			label = helpStyle.Render(label)
		}
		b.WriteString(label)
		if s != models.LastStep {
			b.WriteString(" · ")
		}
	}
	return b.String()
}

func (m *wizardModel) viewInputs() string {
	if len(m.inputs) == 0 {
		if isListStep(m.wizard.Step()) {
			return "no rows, press ctrl+a to add one"
		}
		return "-"
	}

	var b strings.Builder
	lastRow := -1
	for i, f := range m.fields {
		if f.row >= 0 && f.row != lastRow && lastRow >= 0 {
			b.WriteString("\n")
		}
		lastRow = f.row
		b.WriteString(row("%s %-30s │ [%s]", cursor(i == m.focus), f.label, m.inputs[i].View()))
	}
	if m.wizard.Step() == models.StepNominee && m.wizard.IsNomineeMinor(m.now()) {
		b.WriteString("\nNominee is a minor, an appointee is required")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *wizardModel) hotKeys() string {
	if m.wizard.ReadOnly() {
		if m.wizard.Owned() {
			return "ctrl+e: edit │ ctrl+y: copy id │ esc: back"
		}
		return "ctrl+y: copy id │ esc: back"
	}
	if m.wizard.Submitted() {
		return "ctrl+e: reopen for edits │ ctrl+y: copy id │ esc: back"
	}

	nav := "pgdn/ctrl+f: next │ pgup/ctrl+b: back │ ctrl+s: save draft │ ctrl+t: submit │ esc: dashboard"
	switch step := m.wizard.Step(); {
	case step == models.StepSummary:
		return "1-9: edit section │ enter: submit │ " + nav
	case step == models.StepDocuments:
		if m.attach != attachNone {
			return "enter: attach │ esc: cancel"
		}
		return "ctrl+o: attach file │ ctrl+k: attach scan │ ctrl+x: remove │ ctrl+y: copy ref │ " + nav
	case isListStep(step):
		return "tab: next field │ ctrl+a: add row │ ctrl+x: remove row │ " + nav
	}
	return "tab: next field │ " + nav
}

func (m *wizardModel) cmdSave(submit bool) tea.Cmd {
	if m.saving {
		return nil
	}
	m.commitFocused()
	m.saving = true
	m.errMsg = ""

	ctx, w := m.ctx, m.wizard
	return func() tea.Msg {
		var (
			record models.PolicyRecord
			err    error
		)
		if submit {
			record, err = w.Submit(ctx)
		} else {
			record, err = w.SaveDraft(ctx)
		}
		return wizardSavedMsg{record: record, submit: submit, err: err}
	}
}

// cmdCopyRef copies the selected document's storage reference on the
// documents step and the policy id elsewhere.
func (m *wizardModel) cmdCopyRef() tea.Cmd {
	if m.wizard.Step() == models.StepDocuments {
		docs := m.wizard.FormData().Documents
		if m.docIdx < len(docs) && docs[m.docIdx].RemoteRef != "" {
			return cmdCopy("document reference", docs[m.docIdx].RemoteRef)
		}
	}

	id, ok := m.wizard.Ref().ID()
	if !ok {
		m.errMsg = humanizeError(service.ErrWizardNotSaved)
		return nil
	}
	return cmdCopy("policy id", id)
}

func listSection(step models.Step) string {
	if step == models.StepFamilyHistory {
		return models.SectionFamilyHistory
	}
	return models.SectionPreviousPolicies
}

// detectMimeType prefers the extension and falls back to sniffing.
func detectMimeType(path string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		return t
	}
	return http.DetectContentType(data)
}
