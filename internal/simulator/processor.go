// Package simulator decides, from a submitted government-id number, whether
// an inquiry should auto-approve, auto-decline, or stay pending, and
// schedules the resulting transition without blocking the caller.
package simulator

import (
	"context"
	"log/slog"

	"veristub/internal/inquiry"
	"veristub/internal/platform/metrics"
	"veristub/internal/schedule"
)

// DecisionService is the slice of the lifecycle engine the processor drives.
type DecisionService interface {
	AutoApprove(ctx context.Context, inquiryID string) (*inquiry.Inquiry, error)
	AutoDecline(ctx context.Context, inquiryID, reason string) (*inquiry.Inquiry, error)
}

// Processor schedules automatic verification outcomes. Scheduled work is
// best-effort: a task racing a bulk reset is cancelled or its failure logged,
// never propagated.
type Processor struct {
	service   DecisionService
	scheduler schedule.Scheduler
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewProcessor(service DecisionService, scheduler schedule.Scheduler, logger *slog.Logger, m *metrics.Metrics) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		service:   service,
		scheduler: scheduler,
		logger:    logger,
		metrics:   m,
	}
}

// Process evaluates the rules against idNumber and, for an approve or
// decline decision, schedules the transition. It returns immediately; the
// simulated processing latency is applied by the lifecycle engine inside the
// scheduled task. The processor has no opinion on when it is invoked - that
// contract belongs to the caller.
func (p *Processor) Process(ctx context.Context, inquiryID, idNumber string) {
	decision := Decide(idNumber)
	p.metrics.IncrementSimulatorDecision(string(decision))

	switch decision {
	case DecisionApprove:
		p.logger.InfoContext(ctx, "scheduling automatic approval", "inquiry_id", inquiryID)
		p.scheduler.AfterFunc(0, "auto-approve "+inquiryID, func(taskCtx context.Context) error {
			_, err := p.service.AutoApprove(taskCtx, inquiryID)
			return err
		})
	case DecisionDecline:
		p.logger.InfoContext(ctx, "scheduling automatic decline", "inquiry_id", inquiryID)
		p.scheduler.AfterFunc(0, "auto-decline "+inquiryID, func(taskCtx context.Context) error {
			_, err := p.service.AutoDecline(taskCtx, inquiryID, DeclineReason)
			return err
		})
	default:
		p.logger.InfoContext(ctx, "inquiry left for manual review", "inquiry_id", inquiryID)
	}
}
