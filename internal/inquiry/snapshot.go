package inquiry

import "veristub/internal/webhook"

// snapshotInquiry copies an inquiry's attributes into the webhook payload
// shape. The copy is deep: later mutation of the inquiry must not change an
// already emitted event.
func snapshotInquiry(inq *Inquiry) *webhook.InquirySnapshot {
	fields := make(map[string]webhook.FieldSnapshot, len(inq.Fields))
	for name, field := range inq.Fields {
		fields[name] = webhook.FieldSnapshot{Type: field.Type, Value: field.Value}
	}
	return &webhook.InquirySnapshot{
		Status:      inq.Status.String(),
		ReferenceID: inq.ReferenceID,
		Environment: inq.Environment,
		Fields:      fields,
		CreatedAt:   inq.CreatedAt,
		CompletedAt: cloneTime(inq.CompletedAt),
		FailedAt:    cloneTime(inq.FailedAt),
		ExpiredAt:   cloneTime(inq.ExpiredAt),
	}
}

// SnapshotVerification copies a verification's attributes into the webhook
// payload shape. Exported for consumers that emit verification events.
func SnapshotVerification(ver *Verification) *webhook.VerificationSnapshot {
	checks := make([]webhook.CheckSnapshot, 0, len(ver.Checks))
	for _, check := range ver.Checks {
		checks = append(checks, webhook.CheckSnapshot{
			Name:    check.Name,
			Status:  string(check.Status),
			Reasons: append([]string{}, check.Reasons...),
		})
	}
	return &webhook.VerificationSnapshot{
		Kind:        string(ver.Kind),
		Status:      string(ver.Status),
		Checks:      checks,
		CreatedAt:   ver.CreatedAt,
		SubmittedAt: ver.SubmittedAt,
		CompletedAt: cloneTime(ver.CompletedAt),
	}
}
