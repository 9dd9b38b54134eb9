package inquiry

import (
	"time"

	dErrors "veristub/pkg/domain-errors"
)

// Status is an inquiry's position in its lifecycle.
// Invariant: the value must be one of the supported statuses.
type Status string

const (
	StatusCreated   Status = "created"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusExpired   Status = "expired"
)

// validStatuses is the single source of truth for valid statuses.
var validStatuses = map[Status]bool{
	StatusCreated:   true,
	StatusPending:   true,
	StatusCompleted: true,
	StatusFailed:    true,
	StatusExpired:   true,
}

// ParseStatus constructs a Status from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "status cannot be empty")
	}
	st := Status(s)
	if !validStatuses[st] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid status: %q", s)
	}
	return st, nil
}

// IsTerminal reports whether no further transition is expected.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusExpired
}

// String returns the string representation of the status.
func (s Status) String() string { return string(s) }

// Field is one typed identity attribute on an inquiry.
type Field struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Fields maps attribute names to their typed values. Empty at creation;
// populated only by the approval path.
type Fields map[string]Field

// Attribute names for the fixed identity field set.
const (
	FieldNameFirst            = "name_first"
	FieldNameLast             = "name_last"
	FieldBirthdate            = "birthdate"
	FieldAddressStreet1       = "address_street_1"
	FieldAddressStreet2       = "address_street_2"
	FieldAddressCity          = "address_city"
	FieldAddressSubdivision   = "address_subdivision"
	FieldAddressPostalCode    = "address_postal_code"
	FieldIdentificationNumber = "identification_number"
)

// ApprovedIdentityFields returns the canonical identity payload stamped onto
// an inquiry when it is auto-approved. The identification number ends in the
// auto-approve pattern so downstream pattern checks stay consistent.
func ApprovedIdentityFields() Fields {
	return Fields{
		FieldNameFirst:            {Type: "string", Value: "John"},
		FieldNameLast:             {Type: "string", Value: "Doe"},
		FieldBirthdate:            {Type: "date", Value: "1990-01-01"},
		FieldAddressStreet1:       {Type: "string", Value: "123 Market Street"},
		FieldAddressStreet2:       {Type: "string", Value: ""},
		FieldAddressCity:          {Type: "string", Value: "San Francisco"},
		FieldAddressSubdivision:   {Type: "string", Value: "CA"},
		FieldAddressPostalCode:    {Type: "string", Value: "94103"},
		FieldIdentificationNumber: {Type: "string", Value: "D1234560000"},
	}
}

// StringValue returns the named field's value when it is a string.
func (f Fields) StringValue(name string) string {
	if field, ok := f[name]; ok {
		if s, ok := field.Value.(string); ok {
			return s
		}
	}
	return ""
}

// Clone deep-copies the field map so snapshots don't alias live state.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Inquiry is a single customer's identity-verification session.
//
// Terminal timestamps are mutually exclusive: at most one of CompletedAt,
// FailedAt, ExpiredAt is ever non-nil, stamped by the transition that first
// reaches the matching terminal status.
type Inquiry struct {
	ID          string     `json:"id"`
	Status      Status     `json:"status"`
	ReferenceID string     `json:"reference_id,omitempty"`
	Environment string     `json:"environment,omitempty"`
	Fields      Fields     `json:"fields"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`
	ExpiredAt   *time.Time `json:"expired_at,omitempty"`
}

// Clone returns an independent copy, including the field map.
func (i *Inquiry) Clone() *Inquiry {
	cp := *i
	cp.Fields = i.Fields.Clone()
	cp.CompletedAt = cloneTime(i.CompletedAt)
	cp.FailedAt = cloneTime(i.FailedAt)
	cp.ExpiredAt = cloneTime(i.ExpiredAt)
	return &cp
}

// VerificationKind identifies the evidence type behind a verification.
type VerificationKind string

const (
	KindGovernmentID VerificationKind = "government-id"
	KindSelfie       VerificationKind = "selfie"
	// KindDatabase covers synchronous database-backed checks (liveness).
	KindDatabase VerificationKind = "database"
)

// VerificationStatus is a verification's check state. The simulator never
// produces a failed check, so the set is submitted/passed.
type VerificationStatus string

const (
	VerificationSubmitted VerificationStatus = "submitted"
	VerificationPassed    VerificationStatus = "passed"
)

// Check is one named sub-check on a verification.
type Check struct {
	Name    string             `json:"name"`
	Status  VerificationStatus `json:"status"`
	Reasons []string           `json:"reasons"`
}

// Verification records one piece of submitted evidence and its simulated
// checks. Verifications are immutable after creation.
type Verification struct {
	ID          string             `json:"id"`
	Kind        VerificationKind   `json:"kind"`
	Status      VerificationStatus `json:"status"`
	Checks      []Check            `json:"checks"`
	CreatedAt   time.Time          `json:"created_at"`
	SubmittedAt time.Time          `json:"submitted_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}

// Clone returns an independent copy, including the check slice.
func (v *Verification) Clone() *Verification {
	cp := *v
	cp.Checks = make([]Check, len(v.Checks))
	copy(cp.Checks, v.Checks)
	for i := range cp.Checks {
		cp.Checks[i].Reasons = append([]string{}, v.Checks[i].Reasons...)
	}
	cp.CompletedAt = cloneTime(v.CompletedAt)
	return &cp
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// GovernmentIDSubmission is the evidence payload for a government id.
type GovernmentIDSubmission struct {
	FrontPhoto  string
	BackPhoto   string
	CountryCode string
	IDClass     IDClass
}

// SelfieSubmission is the evidence payload for a selfie.
type SelfieSubmission struct {
	Image string
}

// IDClass narrows the accepted government id document classes.
type IDClass string

const (
	IDClassDriverLicense IDClass = "dl"
	IDClassPassport      IDClass = "pp"
	IDClassNationalID    IDClass = "id"
)

var validIDClasses = map[IDClass]bool{
	IDClassDriverLicense: true,
	IDClassPassport:      true,
	IDClassNationalID:    true,
}

// ParseIDClass constructs an IDClass from external input.
func ParseIDClass(s string) (IDClass, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "id class cannot be empty")
	}
	c := IDClass(s)
	if !validIDClasses[c] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid id class: %q", s)
	}
	return c, nil
}

// Filter narrows a listing to exact matches on reference id and/or status.
type Filter struct {
	ReferenceID string
	Status      Status
}

// Matches reports whether the inquiry satisfies every set filter field.
func (f Filter) Matches(inq *Inquiry) bool {
	if f.ReferenceID != "" && inq.ReferenceID != f.ReferenceID {
		return false
	}
	if f.Status != "" && inq.Status != f.Status {
		return false
	}
	return true
}
