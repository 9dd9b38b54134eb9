package webhook

import "time"

// EventType names a lifecycle notification. Only the inquiry.* kinds are
// emitted by the engine today; the verification.* kinds are reserved for
// consumers that pattern-match the full vocabulary.
type EventType string

const (
	EventInquiryCreated     EventType = "inquiry.created"
	EventInquiryCompleted   EventType = "inquiry.completed"
	EventInquiryFailed      EventType = "inquiry.failed"
	EventInquiryExpired     EventType = "inquiry.expired"
	EventVerificationPassed EventType = "verification.passed"
	EventVerificationFailed EventType = "verification.failed"
)

// EntityKind discriminates the snapshot union in a payload.
type EntityKind string

const (
	KindInquiry      EntityKind = "inquiry"
	KindVerification EntityKind = "verification"
)

// Event is an ephemeral notification delivered to registered callbacks. It is
// never persisted; the payload is a snapshot taken at emission time, so later
// mutation of the source entity does not change an already delivered event.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Data      Payload   `json:"data"`
}

// Payload carries the id and kind of the entity that triggered the event plus
// a snapshot of its attributes. Exactly one of Inquiry and Verification is
// set, matching Kind, so consumers can branch exhaustively instead of casting.
type Payload struct {
	ID           string                `json:"id"`
	Kind         EntityKind            `json:"kind"`
	Inquiry      *InquirySnapshot      `json:"inquiry,omitempty"`
	Verification *VerificationSnapshot `json:"verification,omitempty"`
}

// InquirySnapshot is a point-in-time copy of an inquiry's attributes.
type InquirySnapshot struct {
	Status      string                   `json:"status"`
	ReferenceID string                   `json:"reference_id,omitempty"`
	Environment string                   `json:"environment,omitempty"`
	Fields      map[string]FieldSnapshot `json:"fields"`
	CreatedAt   time.Time                `json:"created_at"`
	CompletedAt *time.Time               `json:"completed_at,omitempty"`
	FailedAt    *time.Time               `json:"failed_at,omitempty"`
	ExpiredAt   *time.Time               `json:"expired_at,omitempty"`
}

// FieldSnapshot mirrors one typed identity attribute.
type FieldSnapshot struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// VerificationSnapshot is a point-in-time copy of a verification's attributes.
type VerificationSnapshot struct {
	Kind        string          `json:"kind"`
	Status      string          `json:"status"`
	Checks      []CheckSnapshot `json:"checks"`
	CreatedAt   time.Time       `json:"created_at"`
	SubmittedAt time.Time       `json:"submitted_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// CheckSnapshot mirrors one named sub-check.
type CheckSnapshot struct {
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Reasons []string `json:"reasons"`
}
