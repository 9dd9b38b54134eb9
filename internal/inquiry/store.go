package inquiry

import "context"

// Store is durable-for-process-lifetime keyed storage for inquiries and
// verifications. Implementations return sentinel.ErrNotFound for missing ids;
// the service translates that into domain errors.
type Store interface {
	SaveInquiry(ctx context.Context, inq *Inquiry) error
	FindInquiry(ctx context.Context, id string) (*Inquiry, error)
	// ListInquiries returns every inquiry in insertion order.
	ListInquiries(ctx context.Context) ([]*Inquiry, error)

	// ExecuteInquiry atomically runs validate and, when it returns nil,
	// mutate against the stored inquiry. The store's lock is held for both
	// so concurrent transitions cannot interleave on the same id.
	ExecuteInquiry(ctx context.Context, id string, validate func(*Inquiry) error, mutate func(*Inquiry)) (*Inquiry, error)

	SaveVerification(ctx context.Context, ver *Verification) error
	FindVerification(ctx context.Context, id string) (*Verification, error)

	CountInquiries(ctx context.Context) int
	CountVerifications(ctx context.Context) int

	// Clear empties both entity kinds. Used for bulk reset.
	Clear(ctx context.Context) error
}
