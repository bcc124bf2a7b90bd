package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-policy-desk/internal/validators"
	"github.com/MKhiriev/go-policy-desk/models"
)

// errorOverlayModel is the box a failed submission leaves over the wizard
// until it is dismissed.
type errorOverlayModel struct {
	title   string
	message string
	// missing holds the labels of empty required fields
	missing []string
}

// newSubmitOverlay explains why a submission was rejected. Validation
// failures list every missing field under the label the wizard shows for it.
func newSubmitOverlay(err error) *errorOverlayModel {
	var verr *validators.ValidationError
	if !errors.As(err, &verr) {
		return &errorOverlayModel{title: "Submission failed", message: humanizeError(err)}
	}

	o := &errorOverlayModel{
		title:   "Application incomplete",
		message: "Fill in these fields before submitting:",
	}
	if verr.AppointeeRequired {
		o.message = "The nominee is a minor, so an appointee is required.\n" + o.message
	}
	for _, path := range verr.Missing {
		o.missing = append(o.missing, labelFor(path))
	}
	return o
}

func (m errorOverlayModel) View() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	for _, label := range m.missing {
		b.WriteString("\n  - ")
		b.WriteString(label)
	}
	b.WriteString("\n\nenter / esc close")
	return overlayBoxStyle.Render(b.String())
}

// labelFor names a field path the way its wizard input is labelled. Unknown
// paths are shown as they are.
func labelFor(path models.FieldPath) string {
	section, row, field, err := path.Parse()
	if err != nil {
		return string(path)
	}
	for _, l := range sectionLabels[section] {
		if l.name != field {
			continue
		}
		if row >= 0 {
			return fmt.Sprintf("#%d %s", row+1, l.label)
		}
		return l.label
	}
	return string(path)
}
