package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"veristub/internal/engine"
	"veristub/internal/inquiry"
	"veristub/pkg/domain"
	dErrors "veristub/pkg/domain-errors"
)

// Handler exposes the engine's operations over HTTP.
type Handler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewHandler(e *engine.Engine, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{engine: e, logger: logger}
}

type createInquiryRequest struct {
	ReferenceID string `json:"reference_id"`
	Environment string `json:"environment"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type governmentIDRequest struct {
	FrontPhoto  string `json:"front_photo"`
	BackPhoto   string `json:"back_photo"`
	CountryCode string `json:"country_code"`
	IDClass     string `json:"id_class"`
}

type selfieRequest struct {
	Image string `json:"image"`
}

type declineRequest struct {
	Reason string `json:"reason"`
}

type processRequest struct {
	IDNumber string `json:"id_number"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// inquiryIDParam enforces the id-prefix contract at the trust boundary:
// a malformed id is invalid input, not a missing record.
func inquiryIDParam(r *http.Request) (string, error) {
	return domain.ParseInquiryID(chi.URLParam(r, "inquiryID"))
}

func (h *Handler) handleCreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req createInquiryRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
			return
		}
	}

	inq, err := h.engine.Inquiries.Create(r.Context(), req.ReferenceID, req.Environment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inq)
}

func (h *Handler) handleRetrieveInquiry(w http.ResponseWriter, r *http.Request) {
	id, err := inquiryIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	inq, err := h.engine.Inquiries.Retrieve(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inq)
}

func (h *Handler) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	var filter inquiry.Filter
	filter.ReferenceID = r.URL.Query().Get("reference_id")
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := inquiry.ParseStatus(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		filter.Status = status
	}

	pageSize := 0
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, dErrors.New(dErrors.CodeBadRequest, "page_size must be a positive integer"))
			return
		}
		pageSize = parsed
	}

	inquiries, err := h.engine.Inquiries.List(r.Context(), filter, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": inquiries})
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	status, err := inquiry.ParseStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := inquiryIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	inq, err := h.engine.Inquiries.UpdateStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inq)
}

func (h *Handler) handleSubmitGovernmentID(w http.ResponseWriter, r *http.Request) {
	var req governmentIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	id, err := inquiryIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ver, err := h.engine.Inquiries.SubmitGovernmentID(r.Context(), id, inquiry.GovernmentIDSubmission{
		FrontPhoto:  req.FrontPhoto,
		BackPhoto:   req.BackPhoto,
		CountryCode: req.CountryCode,
		IDClass:     inquiry.IDClass(req.IDClass),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ver)
}

func (h *Handler) handleSubmitSelfie(w http.ResponseWriter, r *http.Request) {
	var req selfieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	id, err := inquiryIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ver, err := h.engine.Inquiries.SubmitSelfie(r.Context(), id, inquiry.SelfieSubmission{Image: req.Image})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ver)
}

func (h *Handler) handleCheckLiveness(w http.ResponseWriter, r *http.Request) {
	id, err := inquiryIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ver, err := h.engine.Inquiries.CheckLiveness(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ver)
}

func (h *Handler) handleAutoApprove(w http.ResponseWriter, r *http.Request) {
	id, err := inquiryIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	inq, err := h.engine.Inquiries.AutoApprove(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inq)
}

func (h *Handler) handleAutoDecline(w http.ResponseWriter, r *http.Request) {
	var req declineRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
			return
		}
	}

	id, err := inquiryIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	inq, err := h.engine.Inquiries.AutoDecline(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inq)
}

// handleProcess triggers the background outcome simulation. It returns 202
// immediately; the decision lands after the simulated processing latency.
func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	id, err := inquiryIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	h.engine.Simulator.Process(r.Context(), id, req.IDNumber)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "scheduled"})
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	h.engine.ClearAll(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Stats(r.Context()))
}
