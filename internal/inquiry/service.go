package inquiry

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"veristub/internal/platform/metrics"
	"veristub/internal/webhook"
	"veristub/pkg/domain"
	dErrors "veristub/pkg/domain-errors"
	"veristub/pkg/platform/sentinel"
	"veristub/pkg/requestcontext"
)

// DefaultListPageSize caps listings when the caller does not ask for a size.
const DefaultListPageSize = 10

// Check names are fixed per evidence kind; consumers display them verbatim.
var (
	governmentIDCheckNames = []string{
		"id_barcode_detection",
		"id_mrz_detection",
		"id_expiration_detection",
	}
	selfieCheckNames = []string{
		"selfie_liveness_detection",
		"selfie_pose_detection",
		"selfie_similarity_comparison",
	}
	livenessCheckNames = []string{
		"database_liveness_detection",
	}
)

// Service is the inquiry lifecycle engine: creation, evidence submission,
// status transitions, and the auto approve/decline paths. All state changes
// flow through the store's Execute so per-id mutation is serialized.
type Service struct {
	store   Store
	hooks   *webhook.Dispatcher
	logger  *slog.Logger
	metrics *metrics.Metrics

	environment   string
	decisionDelay time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithDecisionDelay overrides the simulated processing latency before an
// automatic approve/decline lands. Tests pass zero to avoid wall-clock waits.
func WithDecisionDelay(d time.Duration) Option {
	return func(s *Service) { s.decisionDelay = d }
}

// WithEnvironment sets the label stamped on inquiries created without one.
func WithEnvironment(env string) Option {
	return func(s *Service) { s.environment = env }
}

// WithMetrics attaches engine metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store Store, hooks *webhook.Dispatcher, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:         store,
		hooks:         hooks,
		logger:        logger,
		environment:   "sandbox",
		decisionDelay: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create opens a new verification session in status created and emits
// inquiry.created once the record is persisted.
func (s *Service) Create(ctx context.Context, referenceID, environment string) (*Inquiry, error) {
	if environment == "" {
		environment = s.environment
	}
	inq := &Inquiry{
		ID:          domain.NewInquiryID(),
		Status:      StatusCreated,
		ReferenceID: referenceID,
		Environment: environment,
		Fields:      Fields{},
		CreatedAt:   requestcontext.Now(ctx),
	}
	if err := s.store.SaveInquiry(ctx, inq); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save inquiry")
	}

	s.metrics.IncrementInquiriesCreated()
	s.logger.InfoContext(ctx, "inquiry created",
		"inquiry_id", inq.ID,
		"reference_id", inq.ReferenceID,
	)
	s.emit(ctx, webhook.EventInquiryCreated, inq)
	return inq, nil
}

// Retrieve fetches one inquiry by id.
func (s *Service) Retrieve(ctx context.Context, id string) (*Inquiry, error) {
	inq, err := s.store.FindInquiry(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, id)
	}
	return inq, nil
}

// UpdateStatus is the single choke point for reaching any status. The first
// terminal transition stamps its timestamp; later transitions change the
// status but never stamp a second timestamp, keeping the three mutually
// exclusive. Terminal transitions emit the matching inquiry.<status> event;
// forcing pending or created emits nothing.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Inquiry, error) {
	if !validStatuses[status] {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "invalid status: %q", status)
	}

	now := requestcontext.Now(ctx)
	inq, err := s.store.ExecuteInquiry(ctx, id, nil, func(inq *Inquiry) {
		inq.Status = status
		if inq.CompletedAt != nil || inq.FailedAt != nil || inq.ExpiredAt != nil {
			return
		}
		switch status {
		case StatusCompleted:
			inq.CompletedAt = &now
		case StatusFailed:
			inq.FailedAt = &now
		case StatusExpired:
			inq.ExpiredAt = &now
		}
	})
	if err != nil {
		return nil, translateNotFound(err, id)
	}

	s.metrics.IncrementTransition(status.String())
	if status.IsTerminal() {
		s.logger.InfoContext(ctx, "inquiry reached terminal status",
			"inquiry_id", id,
			"status", status,
		)
		s.emit(ctx, terminalEventType(status), inq)
	}
	return inq, nil
}

// List returns inquiries newest-first, optionally filtered by exact reference
// id and/or status, truncated to pageSize (default 10).
func (s *Service) List(ctx context.Context, filter Filter, pageSize int) ([]*Inquiry, error) {
	if pageSize <= 0 {
		pageSize = DefaultListPageSize
	}

	all, err := s.store.ListInquiries(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list inquiries")
	}

	matched := make([]*Inquiry, 0, len(all))
	for _, inq := range all {
		if filter.Matches(inq) {
			matched = append(matched, inq)
		}
	}
	// Stable sort keeps insertion order for equal timestamps.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if len(matched) > pageSize {
		matched = matched[:pageSize]
	}
	return matched, nil
}

// SubmitGovernmentID records government-id evidence against an inquiry and
// advances created to pending. Submission is rejected once the inquiry is
// completed or failed; an expired inquiry still accepts evidence, matching
// provider behavior consumers depend on.
func (s *Service) SubmitGovernmentID(ctx context.Context, inquiryID string, sub GovernmentIDSubmission) (*Verification, error) {
	if sub.FrontPhoto == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "front photo is required")
	}
	if sub.IDClass != "" && !validIDClasses[sub.IDClass] {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "invalid id class: %q", sub.IDClass)
	}
	return s.submitEvidence(ctx, inquiryID, KindGovernmentID, domain.NewGovernmentIDVerificationID(), governmentIDCheckNames)
}

// SubmitSelfie records selfie evidence against an inquiry, with the same
// state guard as SubmitGovernmentID.
func (s *Service) SubmitSelfie(ctx context.Context, inquiryID string, sub SelfieSubmission) (*Verification, error) {
	if sub.Image == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "selfie image is required")
	}
	return s.submitEvidence(ctx, inquiryID, KindSelfie, domain.NewSelfieVerificationID(), selfieCheckNames)
}

func (s *Service) submitEvidence(ctx context.Context, inquiryID string, kind VerificationKind, verificationID string, checkNames []string) (*Verification, error) {
	_, err := s.store.ExecuteInquiry(ctx, inquiryID,
		func(inq *Inquiry) error {
			if inq.Status == StatusCompleted || inq.Status == StatusFailed {
				return dErrors.Newf(dErrors.CodeInvalidState,
					"cannot submit %s evidence: inquiry is %s", kind, inq.Status)
			}
			return nil
		},
		func(inq *Inquiry) {
			if inq.Status == StatusCreated {
				inq.Status = StatusPending
			}
		},
	)
	if err != nil {
		return nil, translateNotFound(err, inquiryID)
	}

	now := requestcontext.Now(ctx)
	ver := &Verification{
		ID:          verificationID,
		Kind:        kind,
		Status:      VerificationSubmitted,
		Checks:      passedChecks(checkNames),
		CreatedAt:   now,
		SubmittedAt: now,
	}
	if err := s.store.SaveVerification(ctx, ver); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save verification")
	}

	s.metrics.IncrementVerification(string(kind))
	s.logger.InfoContext(ctx, "evidence submitted",
		"inquiry_id", inquiryID,
		"verification_id", ver.ID,
		"kind", kind,
	)
	return ver, nil
}

// CheckLiveness runs the synchronous database liveness check. It always
// passes and performs no status transition.
func (s *Service) CheckLiveness(ctx context.Context, inquiryID string) (*Verification, error) {
	if _, err := s.store.FindInquiry(ctx, inquiryID); err != nil {
		return nil, translateNotFound(err, inquiryID)
	}

	now := requestcontext.Now(ctx)
	ver := &Verification{
		ID:          domain.NewLivenessVerificationID(),
		Kind:        KindDatabase,
		Status:      VerificationPassed,
		Checks:      passedChecks(livenessCheckNames),
		CreatedAt:   now,
		SubmittedAt: now,
		CompletedAt: &now,
	}
	if err := s.store.SaveVerification(ctx, ver); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save verification")
	}

	s.metrics.IncrementVerification(string(KindDatabase))
	return ver, nil
}

// AutoApprove stamps the canonical identity payload onto the inquiry, waits
// the simulated processing latency, and completes it.
func (s *Service) AutoApprove(ctx context.Context, inquiryID string) (*Inquiry, error) {
	_, err := s.store.ExecuteInquiry(ctx, inquiryID, nil, func(inq *Inquiry) {
		inq.Fields = ApprovedIdentityFields()
	})
	if err != nil {
		return nil, translateNotFound(err, inquiryID)
	}

	if err := s.waitDecisionDelay(ctx); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "auto-approve interrupted")
	}
	return s.UpdateStatus(ctx, inquiryID, StatusCompleted)
}

// AutoDecline waits the simulated processing latency and fails the inquiry.
// The reason is logged, not persisted.
func (s *Service) AutoDecline(ctx context.Context, inquiryID, reason string) (*Inquiry, error) {
	if _, err := s.store.FindInquiry(ctx, inquiryID); err != nil {
		return nil, translateNotFound(err, inquiryID)
	}

	s.logger.InfoContext(ctx, "auto-declining inquiry",
		"inquiry_id", inquiryID,
		"reason", reason,
	)
	if err := s.waitDecisionDelay(ctx); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "auto-decline interrupted")
	}
	return s.UpdateStatus(ctx, inquiryID, StatusFailed)
}

func (s *Service) waitDecisionDelay(ctx context.Context) error {
	if s.decisionDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.decisionDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) emit(ctx context.Context, eventType webhook.EventType, inq *Inquiry) {
	if s.hooks == nil {
		return
	}
	s.hooks.Emit(ctx, eventType, webhook.Payload{
		ID:      inq.ID,
		Kind:    webhook.KindInquiry,
		Inquiry: snapshotInquiry(inq),
	})
}

func passedChecks(names []string) []Check {
	checks := make([]Check, 0, len(names))
	for _, name := range names {
		checks = append(checks, Check{Name: name, Status: VerificationPassed, Reasons: []string{}})
	}
	return checks
}

func terminalEventType(status Status) webhook.EventType {
	switch status {
	case StatusCompleted:
		return webhook.EventInquiryCompleted
	case StatusFailed:
		return webhook.EventInquiryFailed
	default:
		return webhook.EventInquiryExpired
	}
}

func translateNotFound(err error, id string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Newf(dErrors.CodeNotFound, "inquiry %s not found", id)
	}
	var coded *dErrors.Error
	if errors.As(err, &coded) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "store operation failed")
}
