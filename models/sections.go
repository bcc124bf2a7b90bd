package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownStep is returned for a step outside 1..10.
	ErrUnknownStep = errors.New("unknown wizard step")
	// ErrUnknownSection is returned when a field path names no section.
	ErrUnknownSection = errors.New("unknown form section")
	// ErrUnknownField is returned when a section has no such field.
	ErrUnknownField = errors.New("unknown form field")
	// ErrRowOutOfRange is returned when a list row index does not exist.
	ErrRowOutOfRange = errors.New("list row index out of range")
	// ErrInvalidFieldPath is returned for a malformed field path.
	ErrInvalidFieldPath = errors.New("invalid field path")
)

// Personal is wizard step 1.
type Personal struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	DOB           string `json:"dob"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
}

// FullName joins first and last name, trimmed.
func (p Personal) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Occupation is wizard step 2 (education and occupation).
type Occupation struct {
	Education    string `json:"education"`
	Occupation   string `json:"occupation"`
	AnnualIncome string `json:"annualIncome"`
}

// Address is wizard step 3.
type Address struct {
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// FamilyMember is one row of the family history table.
type FamilyMember struct {
	Member string `json:"member"`
	Status string `json:"status"`
	Age    string `json:"age"`
	Cause  string `json:"cause"`
}

// NewFamilyMember returns a row with the form defaults.
func NewFamilyMember() FamilyMember {
	return FamilyMember{Member: "Father", Status: "Living"}
}

// FamilyHistory is wizard step 4.
type FamilyHistory []FamilyMember

// Nominee is the first half of wizard step 5.
type Nominee struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	DOB      string `json:"dob"`
	Share    string `json:"share"`
}

// Appointee acts for a minor nominee. Second half of wizard step 5.
type Appointee struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
}

// PreviousPolicy is one row of the prior policies table.
type PreviousPolicy struct {
	PolicyNo         string `json:"policyNo"`
	TableTerm        string `json:"tableTerm"`
	SumAssured       string `json:"sumAssured"`
	CommencementDate string `json:"commencementDate"`
}

// PreviousPolicies is wizard step 6.
type PreviousPolicies []PreviousPolicy

// Bank is wizard step 7.
type Bank struct {
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BankName      string `json:"bankName"`
	AccountType   string `json:"accountType"`
}

// Medical is wizard step 8.
type Medical struct {
	Height             string `json:"height"`
	Weight             string `json:"weight"`
	IdentificationMark string `json:"identificationMark"`
	HistoryOfIllness   string `json:"historyOfIllness"`
	DetailsOfIllness   string `json:"detailsOfIllness"`
}

// FormData is the complete application form. It never carries record
// metadata such as id, owner or share counts.
type FormData struct {
	Personal         Personal         `json:"personal"`
	Occupation       Occupation       `json:"occupation"`
	Address          Address          `json:"address"`
	FamilyHistory    FamilyHistory    `json:"familyHistory"`
	Nominee          Nominee          `json:"nominee"`
	Appointee        Appointee        `json:"appointee"`
	PreviousPolicies PreviousPolicies `json:"previousPolicies"`
	Bank             Bank             `json:"bank"`
	Medical          Medical          `json:"medical"`
	Documents        Documents        `json:"documents"`
}

// NewFormData returns a blank application with the form defaults applied.
func NewFormData() FormData {
	return FormData{
		Personal:         Personal{Gender: "Male", MaritalStatus: "Single"},
		FamilyHistory:    FamilyHistory{},
		Nominee:          Nominee{Share: "100"},
		PreviousPolicies: PreviousPolicies{},
		Bank:             Bank{AccountType: "Savings"},
		Medical:          Medical{HistoryOfIllness: "No"},
		Documents:        Documents{},
	}
}

// Clone returns a deep copy. List sections and document payloads are copied
// so the result can be mutated without touching f.
func (f FormData) Clone() FormData {
	out := f
	out.FamilyHistory = append(FamilyHistory{}, f.FamilyHistory...)
	out.PreviousPolicies = append(PreviousPolicies{}, f.PreviousPolicies...)
	out.Documents = f.Documents.Clone()
	return out
}

// Step is a wizard page, 1 through 10.
type Step int

const (
	StepPersonal Step = iota + 1
	StepEducationOccupation
	StepAddress
	StepFamilyHistory
	StepNominee
	StepPreviousPolicies
	StepBank
	StepMedical
	StepDocuments
	StepSummary
)

// FirstStep and LastStep bound the wizard.
const (
	FirstStep = StepPersonal
	LastStep  = StepSummary
)

var stepTitles = map[Step]string{
	StepPersonal:            "Personal",
	StepEducationOccupation: "Edu & Occ",
	StepAddress:             "Address",
	StepFamilyHistory:       "Family Hist",
	StepNominee:             "Nominee",
	StepPreviousPolicies:    "Prev Policy",
	StepBank:                "Bank",
	StepMedical:             "Medical",
	StepDocuments:           "Documents",
	StepSummary:             "Summary",
}

// Steps lists every step in wizard order.
func Steps() []Step {
	steps := make([]Step, 0, int(LastStep))
	for s := FirstStep; s <= LastStep; s++ {
		steps = append(steps, s)
	}
	return steps
}

// Valid reports whether s is inside 1..10.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Title is the short label shown in the step bar.
func (s Step) Title() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return "Step " + strconv.Itoa(int(s))
}

// StepSection is the content of one wizard step. The set of implementations
// is closed: one type per step, see [FormData.SectionAt].
type StepSection interface {
	Step() Step
	stepSection()
}

type (
	// PersonalSection is the content of StepPersonal.
	PersonalSection struct{ Personal *Personal }
	// OccupationSection is the content of StepEducationOccupation.
	OccupationSection struct{ Occupation *Occupation }
	// AddressSection is the content of StepAddress.
	AddressSection struct{ Address *Address }
	// FamilyHistorySection is the content of StepFamilyHistory.
	FamilyHistorySection struct{ Rows *FamilyHistory }
	// NomineeSection is the content of StepNominee, appointee included.
	NomineeSection struct {
		Nominee   *Nominee
		Appointee *Appointee
	}
	// PreviousPoliciesSection is the content of StepPreviousPolicies.
	PreviousPoliciesSection struct{ Rows *PreviousPolicies }
	// BankSection is the content of StepBank.
	BankSection struct{ Bank *Bank }
	// MedicalSection is the content of StepMedical.
	MedicalSection struct{ Medical *Medical }
	// DocumentsSection is the content of StepDocuments.
	DocumentsSection struct{ Documents *Documents }
	// SummarySection is the read-through view of StepSummary.
	SummarySection struct{ Form *FormData }
)

func (PersonalSection) Step() Step         { return StepPersonal }
func (OccupationSection) Step() Step       { return StepEducationOccupation }
func (AddressSection) Step() Step          { return StepAddress }
func (FamilyHistorySection) Step() Step    { return StepFamilyHistory }
func (NomineeSection) Step() Step          { return StepNominee }
func (PreviousPoliciesSection) Step() Step { return StepPreviousPolicies }
func (BankSection) Step() Step             { return StepBank }
func (MedicalSection) Step() Step          { return StepMedical }
func (DocumentsSection) Step() Step        { return StepDocuments }
func (SummarySection) Step() Step          { return StepSummary }

func (PersonalSection) stepSection()         {}
func (OccupationSection) stepSection()       {}
func (AddressSection) stepSection()          {}
func (FamilyHistorySection) stepSection()    {}
func (NomineeSection) stepSection()          {}
func (PreviousPoliciesSection) stepSection() {}
func (BankSection) stepSection()             {}
func (MedicalSection) stepSection()          {}
func (DocumentsSection) stepSection()        {}
func (SummarySection) stepSection()          {}

// SectionAt maps a step to its section. The returned section points into f.
func (f *FormData) SectionAt(step Step) (StepSection, error) {
	switch step {
	case StepPersonal:
		return PersonalSection{Personal: &f.Personal}, nil
	case StepEducationOccupation:
		return OccupationSection{Occupation: &f.Occupation}, nil
	case StepAddress:
		return AddressSection{Address: &f.Address}, nil
	case StepFamilyHistory:
		return FamilyHistorySection{Rows: &f.FamilyHistory}, nil
	case StepNominee:
		return NomineeSection{Nominee: &f.Nominee, Appointee: &f.Appointee}, nil
	case StepPreviousPolicies:
		return PreviousPoliciesSection{Rows: &f.PreviousPolicies}, nil
	case StepBank:
		return BankSection{Bank: &f.Bank}, nil
	case StepMedical:
		return MedicalSection{Medical: &f.Medical}, nil
	case StepDocuments:
		return DocumentsSection{Documents: &f.Documents}, nil
	case StepSummary:
		return SummarySection{Form: f}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownStep, step)
}

// Section names used in field paths.
const (
	SectionPersonal         = "personal"
	SectionOccupation       = "occupation"
	SectionAddress          = "address"
	SectionFamilyHistory    = "familyHistory"
	SectionNominee          = "nominee"
	SectionAppointee        = "appointee"
	SectionPreviousPolicies = "previousPolicies"
	SectionBank             = "bank"
	SectionMedical          = "medical"
	SectionDocuments        = "documents"
)

// FieldPath addresses one scalar field of the form, e.g. "personal.firstName"
// or "familyHistory[1].age".
type FieldPath string

// Field builds a path for a scalar section field.
func Field(section, field string) FieldPath {
	return FieldPath(section + "." + field)
}

// RowField builds a path for a field inside a list section row.
func RowField(section string, row int, field string) FieldPath {
	return FieldPath(section + "[" + strconv.Itoa(row) + "]." + field)
}

// Parse splits the path into section, row (-1 when absent) and field.
func (p FieldPath) Parse() (section string, row int, field string, err error) {
	head, field, ok := strings.Cut(string(p), ".")
	if !ok || head == "" || field == "" || strings.Contains(field, ".") {
		return "", 0, "", fmt.Errorf("%w: %q", ErrInvalidFieldPath, p)
	}

	row = -1
	if i := strings.IndexByte(head, '['); i >= 0 {
		if !strings.HasSuffix(head, "]") {
			return "", 0, "", fmt.Errorf("%w: %q", ErrInvalidFieldPath, p)
		}
		n, convErr := strconv.Atoi(head[i+1 : len(head)-1])
		if convErr != nil || n < 0 {
			return "", 0, "", fmt.Errorf("%w: %q", ErrInvalidFieldPath, p)
		}
		head, row = head[:i], n
	}

	return head, row, field, nil
}

// Set writes value into the field addressed by path. Only the addressed
// section is touched.
func (f *FormData) Set(path FieldPath, value string) error {
	target, err := f.locate(path)
	if err != nil {
		return err
	}
	*target = value
	return nil
}

// Get reads the field addressed by path.
func (f *FormData) Get(path FieldPath) (string, error) {
	target, err := f.locate(path)
	if err != nil {
		return "", err
	}
	return *target, nil
}

func (f *FormData) locate(path FieldPath) (*string, error) {
	section, row, field, err := path.Parse()
	if err != nil {
		return nil, err
	}

	isList := section == SectionFamilyHistory || section == SectionPreviousPolicies
	if isList != (row >= 0) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFieldPath, path)
	}

	var target *string
	switch section {
	case SectionPersonal:
		target = personalField(&f.Personal, field)
	case SectionOccupation:
		target = occupationField(&f.Occupation, field)
	case SectionAddress:
		target = addressField(&f.Address, field)
	case SectionNominee:
		target = nomineeField(&f.Nominee, field)
	case SectionAppointee:
		target = appointeeField(&f.Appointee, field)
	case SectionBank:
		target = bankField(&f.Bank, field)
	case SectionMedical:
		target = medicalField(&f.Medical, field)
	case SectionFamilyHistory:
		if row >= len(f.FamilyHistory) {
			return nil, fmt.Errorf("%w: %s[%d]", ErrRowOutOfRange, section, row)
		}
		target = familyMemberField(&f.FamilyHistory[row], field)
	case SectionPreviousPolicies:
		if row >= len(f.PreviousPolicies) {
			return nil, fmt.Errorf("%w: %s[%d]", ErrRowOutOfRange, section, row)
		}
		target = previousPolicyField(&f.PreviousPolicies[row], field)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}

	if target == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, section, field)
	}
	return target, nil
}

func personalField(p *Personal, field string) *string {
	switch field {
	case "firstName":
		return &p.FirstName
	case "lastName":
		return &p.LastName
	case "dob":
		return &p.DOB
	case "gender":
		return &p.Gender
	case "maritalStatus":
		return &p.MaritalStatus
	}
	return nil
}

func occupationField(o *Occupation, field string) *string {
	switch field {
	case "education":
		return &o.Education
	case "occupation":
		return &o.Occupation
	case "annualIncome":
		return &o.AnnualIncome
	}
	return nil
}

func addressField(a *Address, field string) *string {
	switch field {
	case "phone":
		return &a.Phone
	case "email":
		return &a.Email
	case "addressLine1":
		return &a.AddressLine1
	case "addressLine2":
		return &a.AddressLine2
	case "city":
		return &a.City
	case "state":
		return &a.State
	case "pincode":
		return &a.Pincode
	}
	return nil
}

func familyMemberField(m *FamilyMember, field string) *string {
	switch field {
	case "member":
		return &m.Member
	case "status":
		return &m.Status
	case "age":
		return &m.Age
	case "cause":
		return &m.Cause
	}
	return nil
}

func nomineeField(n *Nominee, field string) *string {
	switch field {
	case "name":
		return &n.Name
	case "relation":
		return &n.Relation
	case "dob":
		return &n.DOB
	case "share":
		return &n.Share
	}
	return nil
}

func appointeeField(a *Appointee, field string) *string {
	switch field {
	case "name":
		return &a.Name
	case "relation":
		return &a.Relation
	}
	return nil
}

func previousPolicyField(p *PreviousPolicy, field string) *string {
	switch field {
	case "policyNo":
		return &p.PolicyNo
	case "tableTerm":
		return &p.TableTerm
	case "sumAssured":
		return &p.SumAssured
	case "commencementDate":
		return &p.CommencementDate
	}
	return nil
}

func bankField(b *Bank, field string) *string {
	switch field {
	case "accountNumber":
		return &b.AccountNumber
	case "ifscCode":
		return &b.IFSCCode
	case "bankName":
		return &b.BankName
	case "accountType":
		return &b.AccountType
	}
	return nil
}

func medicalField(m *Medical, field string) *string {
	switch field {
	case "height":
		return &m.Height
	case "weight":
		return &m.Weight
	case "identificationMark":
		return &m.IdentificationMark
	case "historyOfIllness":
		return &m.HistoryOfIllness
	case "detailsOfIllness":
		return &m.DetailsOfIllness
	}
	return nil
}
