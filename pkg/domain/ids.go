// Package domain holds shared domain primitives: the prefixed entity ids
// exchanged with consumers.
//
// Id prefixes are a compatibility surface. Consumers pattern-match on them in
// tests and logs, so the prefix of each entity kind is fixed here and
// enforced at trust boundaries via the Parse functions.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "veristub/pkg/domain-errors"
)

// Fixed id prefixes, one per entity kind. Distinct prefixes prevent
// cross-kind confusion when ids are logged or exposed.
const (
	InquiryIDPrefix                  = "inq_mock_"
	GovernmentIDVerificationIDPrefix = "ver_gov_id_"
	SelfieVerificationIDPrefix       = "ver_selfie_"
	LivenessVerificationIDPrefix     = "ver_liveness_"
	EventIDPrefix                    = "evt_"
)

// NewInquiryID returns a fresh inquiry id ("inq_mock_" + unique token).
func NewInquiryID() string {
	return InquiryIDPrefix + token()
}

// NewGovernmentIDVerificationID returns a fresh government-id verification id.
func NewGovernmentIDVerificationID() string {
	return GovernmentIDVerificationIDPrefix + token()
}

// NewSelfieVerificationID returns a fresh selfie verification id.
func NewSelfieVerificationID() string {
	return SelfieVerificationIDPrefix + token()
}

// NewLivenessVerificationID returns a fresh liveness verification id.
func NewLivenessVerificationID() string {
	return LivenessVerificationIDPrefix + token()
}

// NewEventID returns a fresh webhook event id.
func NewEventID() string {
	return EventIDPrefix + token()
}

// ParseInquiryID validates an externally supplied inquiry id.
//
// Errors: CodeInvalidInput when the value is empty or carries the wrong
// prefix; existence is checked by the store, not here.
func ParseInquiryID(s string) (string, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "inquiry id cannot be empty")
	}
	if !strings.HasPrefix(s, InquiryIDPrefix) {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "not an inquiry id: %q", s)
	}
	return s, nil
}

// IsVerificationID reports whether s carries one of the verification
// prefixes.
func IsVerificationID(s string) bool {
	return strings.HasPrefix(s, GovernmentIDVerificationIDPrefix) ||
		strings.HasPrefix(s, SelfieVerificationIDPrefix) ||
		strings.HasPrefix(s, LivenessVerificationIDPrefix)
}

func token() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
