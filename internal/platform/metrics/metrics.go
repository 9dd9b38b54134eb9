package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the simulation engine. All methods are
// nil-safe so tests can pass a nil *Metrics without registering collectors.
type Metrics struct {
	// Inquiry lifecycle
	InquiriesCreated prometheus.Counter
	Transitions      *prometheus.CounterVec

	// Evidence submissions by kind
	Verifications *prometheus.CounterVec

	// Webhook deliveries by event type and result ("ok" | "error")
	WebhookDeliveries *prometheus.CounterVec
	WebhookLatency    prometheus.Histogram

	// Simulator decisions by outcome ("approve" | "decline" | "manual")
	SimulatorDecisions *prometheus.CounterVec
}

// New creates a Metrics instance with all engine metrics registered on the
// default registry.
func New() *Metrics {
	return &Metrics{
		InquiriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "veristub_inquiries_created_total",
			Help: "Total number of inquiries created",
		}),
		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "veristub_inquiry_transitions_total",
			Help: "Total inquiry status transitions by target status",
		}, []string{"status"}),
		Verifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "veristub_verifications_total",
			Help: "Total evidence submissions by verification kind",
		}, []string{"kind"}),
		WebhookDeliveries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "veristub_webhook_deliveries_total",
			Help: "Total webhook callback invocations by event type and result",
		}, []string{"event", "result"}),
		WebhookLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "veristub_webhook_delivery_duration_seconds",
			Help:    "Duration of a full webhook emission across all callbacks",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		SimulatorDecisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "veristub_simulator_decisions_total",
			Help: "Total automatic verification decisions by outcome",
		}, []string{"outcome"}),
	}
}

// IncrementInquiriesCreated records a new inquiry.
func (m *Metrics) IncrementInquiriesCreated() {
	if m != nil {
		m.InquiriesCreated.Inc()
	}
}

// IncrementTransition records a status transition.
func (m *Metrics) IncrementTransition(status string) {
	if m != nil {
		m.Transitions.WithLabelValues(status).Inc()
	}
}

// IncrementVerification records an evidence submission.
func (m *Metrics) IncrementVerification(kind string) {
	if m != nil {
		m.Verifications.WithLabelValues(kind).Inc()
	}
}

// IncrementWebhookDelivery records one callback invocation.
func (m *Metrics) IncrementWebhookDelivery(event, result string) {
	if m != nil {
		m.WebhookDeliveries.WithLabelValues(event, result).Inc()
	}
}

// ObserveWebhookLatency records the duration of a full emission.
func (m *Metrics) ObserveWebhookLatency(d time.Duration) {
	if m != nil {
		m.WebhookLatency.Observe(d.Seconds())
	}
}

// IncrementSimulatorDecision records an automatic verification outcome.
func (m *Metrics) IncrementSimulatorDecision(outcome string) {
	if m != nil {
		m.SimulatorDecisions.WithLabelValues(outcome).Inc()
	}
}
