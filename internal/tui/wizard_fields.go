package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-policy-desk/models"
)

type fieldLabel struct {
	name  string
	label string
}

// fieldSpec is one editable input of a wizard step.
type fieldSpec struct {
	label string
	path  models.FieldPath
	// row is the list row the field belongs to, -1 for scalar sections.
	row int
}

var sectionLabels = map[string][]fieldLabel{
	models.SectionPersonal: {
		{"firstName", "First name"},
		{"lastName", "Last name"},
		{"dob", "Date of birth (YYYY-MM-DD)"},
		{"gender", "Gender"},
		{"maritalStatus", "Marital status"},
	},
	models.SectionOccupation: {
		{"education", "Education"},
		{"occupation", "Occupation"},
		{"annualIncome", "Annual income"},
	},
	models.SectionAddress: {
		{"phone", "Phone"},
		{"email", "Email"},
		{"addressLine1", "Address line 1"},
		{"addressLine2", "Address line 2"},
		{"city", "City"},
		{"state", "State"},
		{"pincode", "Pincode"},
	},
	models.SectionFamilyHistory: {
		{"member", "Member"},
		{"status", "Living / Dead"},
		{"age", "Age"},
		{"cause", "Cause"},
	},
	models.SectionNominee: {
		{"name", "Nominee name"},
		{"relation", "Relation"},
		{"dob", "Nominee date of birth"},
		{"share", "Share %"},
	},
	models.SectionAppointee: {
		{"name", "Appointee name"},
		{"relation", "Appointee relation"},
	},
	models.SectionPreviousPolicies: {
		{"policyNo", "Policy no"},
		{"tableTerm", "Table / term"},
		{"sumAssured", "Sum assured"},
		{"commencementDate", "Commencement date"},
	},
	models.SectionBank: {
		{"accountNumber", "Account number"},
		{"ifscCode", "IFSC code"},
		{"bankName", "Bank name"},
		{"accountType", "Account type"},
	},
	models.SectionMedical: {
		{"height", "Height (cm)"},
		{"weight", "Weight (kg)"},
		{"identificationMark", "Identification mark"},
		{"historyOfIllness", "History of illness (Yes/No)"},
		{"detailsOfIllness", "Details of illness"},
	},
}

// sectionFields lists the inputs of a step. Appointee inputs only exist while
// the nominee is a minor. Documents and the summary have no inputs.
func sectionFields(section models.StepSection, nomineeMinor bool) []fieldSpec {
	switch s := section.(type) {
	case models.PersonalSection:
		return scalarFields(models.SectionPersonal)
	case models.OccupationSection:
		return scalarFields(models.SectionOccupation)
	case models.AddressSection:
		return scalarFields(models.SectionAddress)
	case models.FamilyHistorySection:
		return rowFields(models.SectionFamilyHistory, len(*s.Rows))
	case models.NomineeSection:
		fields := scalarFields(models.SectionNominee)
		if nomineeMinor {
			fields = append(fields, scalarFields(models.SectionAppointee)...)
		}
		return fields
	case models.PreviousPoliciesSection:
		return rowFields(models.SectionPreviousPolicies, len(*s.Rows))
	case models.BankSection:
		return scalarFields(models.SectionBank)
	case models.MedicalSection:
		return scalarFields(models.SectionMedical)
	}
	return nil
}

func scalarFields(section string) []fieldSpec {
	labels := sectionLabels[section]
	fields := make([]fieldSpec, 0, len(labels))
	for _, l := range labels {
		fields = append(fields, fieldSpec{label: l.label, path: models.Field(section, l.name), row: -1})
	}
	return fields
}

func rowFields(section string, rows int) []fieldSpec {
	labels := sectionLabels[section]
	fields := make([]fieldSpec, 0, rows*len(labels))
	for r := 0; r < rows; r++ {
		for _, l := range labels {
			fields = append(fields, fieldSpec{
				label: fmt.Sprintf("#%d %s", r+1, l.label),
				path:  models.RowField(section, r, l.name),
				row:   r,
			})
		}
	}
	return fields
}

// isListStep reports whether a step edits a table with addable rows.
func isListStep(step models.Step) bool {
	return step == models.StepFamilyHistory || step == models.StepPreviousPolicies
}

// renderSummary prints every section of form in wizard order with the step
// number used by the jump keys.
func renderSummary(form models.FormData, nomineeMinor bool) string {
	var b strings.Builder

	for _, step := range models.Steps() {
		if step == models.StepSummary {
			break
		}
		b.WriteString(titleStyle.Render(fmt.Sprintf("%d. %s", int(step)%10, step.Title())))
		b.WriteString("\n")

		section, err := form.SectionAt(step)
		if err != nil {
			continue
		}

		switch s := section.(type) {
		case models.DocumentsSection:
			b.WriteString(renderDocuments(*s.Documents, -1))
		case models.FamilyHistorySection, models.PreviousPoliciesSection:
			fields := sectionFields(s, nomineeMinor)
			if len(fields) == 0 {
				b.WriteString("   none\n")
			}
			writeFieldValues(&b, form, fields)
		default:
			writeFieldValues(&b, form, sectionFields(s, nomineeMinor))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeFieldValues(b *strings.Builder, form models.FormData, fields []fieldSpec) {
	for _, f := range fields {
		value, err := form.Get(f.path)
		if err != nil {
			value = ""
		}
		b.WriteString(row("   %-28s %s", f.label+":", valueOrDash(value)))
	}
}

func renderDocuments(docs models.Documents, selected int) string {
	if len(docs) == 0 {
		return "   no documents\n"
	}

	var b strings.Builder
	for i, d := range docs {
		state := "pending upload"
		switch d.State() {
		case models.DocumentRemote:
			state = "uploaded"
		case models.DocumentEmpty:
			state = "empty"
		}
		line := row(" %s %-32s │ %-10s │ %-10s │ %s", cursor(i == selected), fitText(d.Name, 32), d.DeclaredSize, d.MimeType, state)
		if i == selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
	}
	return b.String()
}
