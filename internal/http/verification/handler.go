package verification

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/http/auth"
	"github.com/shopfwd/shopfwd/internal/order"
	"github.com/shopfwd/shopfwd/internal/verification"
)

type Handler struct {
	svc *verification.Service
}

func NewHandler(svc *verification.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/{id}/decision", h.decide)
	r.Post("/decisions", h.decideBatch)
}

type decideRequest struct {
	Decision    verification.Decision `json:"decision"`
	Note        string                `json:"note,omitempty"`
	AmountCents *int64                `json:"amount_cents,omitempty"`
}

type outcomeResponse struct {
	EvidenceID         uuid.UUID             `json:"evidence_id"`
	Decision           verification.Decision `json:"decision"`
	OrderID            *uuid.UUID            `json:"order_id,omitempty"`
	VerifiedCents      int64                 `json:"verified_cents,omitempty"`
	NewAmountPaidCents int64                 `json:"new_amount_paid_cents,omitempty"`
	PaymentStatus      order.PaymentStatus   `json:"payment_status,omitempty"`
	DecidedAt          time.Time             `json:"decided_at"`
}

func toOutcomeResponse(o *verification.Outcome) outcomeResponse {
	return outcomeResponse{
		EvidenceID:         o.EvidenceID,
		Decision:           o.Decision,
		OrderID:            o.OrderID,
		VerifiedCents:      o.VerifiedCents,
		NewAmountPaidCents: o.NewAmountPaidCents,
		PaymentStatus:      o.PaymentStatus,
		DecidedAt:          o.DecidedAt,
	}
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	op, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "operator identity required", http.StatusUnauthorized)
		return
	}

	outcome, err := h.svc.Decide(r.Context(), verification.DecideParams{
		EvidenceID:  id,
		Decision:    req.Decision,
		Note:        req.Note,
		DecidedBy:   op.DisplayName(),
		AmountCents: req.AmountCents,
	})
	if err != nil {
		writeDecisionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOutcomeResponse(outcome)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type batchRequest struct {
	EvidenceIDs []uuid.UUID           `json:"evidence_ids"`
	Decision    verification.Decision `json:"decision"`
	Note        string                `json:"note,omitempty"`
}

type failureResponse struct {
	EvidenceID uuid.UUID                  `json:"evidence_id"`
	Reason     verification.FailureReason `json:"reason"`
	Message    string                     `json:"message"`
}

type batchResponse struct {
	Requested int                        `json:"requested"`
	Succeeded int                        `json:"succeeded"`
	Failed    int                        `json:"failed"`
	Outcome   verification.BatchOutcome  `json:"outcome"`
	Failures  []failureResponse          `json:"failures,omitempty"`
	Applied   []outcomeResponse          `json:"applied,omitempty"`
}

func (h *Handler) decideBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.EvidenceIDs) == 0 {
		http.Error(w, "evidence_ids is required", http.StatusBadRequest)
		return
	}

	op, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "operator identity required", http.StatusUnauthorized)
		return
	}

	summary := h.svc.DecideBatch(r.Context(), verification.BatchParams{
		EvidenceIDs: req.EvidenceIDs,
		Decision:    req.Decision,
		Note:        req.Note,
		DecidedBy:   op.DisplayName(),
	})

	resp := batchResponse{
		Requested: summary.Requested,
		Succeeded: summary.Succeeded,
		Failed:    summary.Failed,
		Outcome:   summary.Outcome,
	}

	for _, f := range summary.Failures {
		resp.Failures = append(resp.Failures, failureResponse{
			EvidenceID: f.EvidenceID,
			Reason:     f.Reason,
			Message:    f.Message,
		})
	}

	for _, o := range summary.Applied {
		resp.Applied = append(resp.Applied, toOutcomeResponse(o))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, evidence.ErrNotFound):
		http.Error(w, "evidence not found", http.StatusNotFound)
	case errors.Is(err, evidence.ErrAlreadyDecided):
		http.Error(w, "evidence already decided", http.StatusConflict)
	case errors.Is(err, evidence.ErrNotApplicable):
		http.Error(w, "gateway transactions cannot be decided manually", http.StatusUnprocessableEntity)
	case errors.Is(err, order.ErrNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, order.ErrConflict):
		http.Error(w, "order concurrently modified", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
