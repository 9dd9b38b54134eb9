// Package httptransport is the thin HTTP layer over the engine. Handlers
// delegate to the engine without embedding business logic so transport
// concerns remain isolated.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all public endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/inquiries", func(r chi.Router) {
		r.Post("/", h.handleCreateInquiry)
		r.Get("/", h.handleListInquiries)
		r.Route("/{inquiryID}", func(r chi.Router) {
			r.Get("/", h.handleRetrieveInquiry)
			r.Patch("/status", h.handleUpdateStatus)
			r.Post("/government-id", h.handleSubmitGovernmentID)
			r.Post("/selfie", h.handleSubmitSelfie)
			r.Post("/liveness", h.handleCheckLiveness)
			r.Post("/approve", h.handleAutoApprove)
			r.Post("/decline", h.handleAutoDecline)
			r.Post("/process", h.handleProcess)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/reset", h.handleReset)
		r.Get("/stats", h.handleStats)
	})

	return r
}
