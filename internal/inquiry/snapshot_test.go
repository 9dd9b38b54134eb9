package inquiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotInquiryIsDeepCopy(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	inq := &Inquiry{
		ID:          "inq_mock_1",
		Status:      StatusCompleted,
		ReferenceID: "cust-1",
		Environment: "sandbox",
		Fields:      ApprovedIdentityFields(),
		CreatedAt:   now,
		CompletedAt: &now,
	}

	snap := snapshotInquiry(inq)
	require.Equal(t, "completed", snap.Status)
	require.NotNil(t, snap.CompletedAt)
	assert.Equal(t, "John", snap.Fields[FieldNameFirst].Value)

	// Mutating the source must not leak into the snapshot.
	inq.Status = StatusExpired
	inq.Fields[FieldNameFirst] = Field{Type: "string", Value: "Mallory"}
	*inq.CompletedAt = now.Add(time.Hour)

	assert.Equal(t, "completed", snap.Status)
	assert.Equal(t, "John", snap.Fields[FieldNameFirst].Value)
	assert.Equal(t, now, *snap.CompletedAt)
}

func TestSnapshotVerificationIsDeepCopy(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	ver := &Verification{
		ID:          "ver_selfie_1",
		Kind:        KindSelfie,
		Status:      VerificationSubmitted,
		Checks:      passedChecks(selfieCheckNames),
		CreatedAt:   now,
		SubmittedAt: now,
	}

	snap := SnapshotVerification(ver)
	require.Len(t, snap.Checks, 3)
	assert.Equal(t, "selfie", snap.Kind)
	assert.Equal(t, "passed", snap.Checks[0].Status)

	ver.Checks[0].Status = VerificationSubmitted
	ver.Checks[0].Reasons = append(ver.Checks[0].Reasons, "blurry")

	assert.Equal(t, "passed", snap.Checks[0].Status)
	assert.Empty(t, snap.Checks[0].Reasons)
}
