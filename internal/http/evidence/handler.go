package evidence

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shopfwd/shopfwd/internal/evidence"
)

type Handler struct {
	svc *evidence.Service
}

func NewHandler(svc *evidence.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.query)
	r.Get("/stats", h.stats)
}

func (h *Handler) query(w http.ResponseWriter, r *http.Request) {
	params := evidence.QueryParams{
		Search: r.URL.Query().Get("search"),
	}

	if s := r.URL.Query().Get("status"); s != "" {
		params.Status = new(evidence.Status(s))
	}

	if s := r.URL.Query().Get("method"); s != "" {
		params.Method = new(s)
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			params.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			// Inclusive through the end of the day.
			end := t.Add(24*time.Hour - time.Nanosecond)
			params.EndDate = new(end)
		}
	}

	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			params.Page = n
		}
	}

	if s := r.URL.Query().Get("page_size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			params.PageSize = n
		}
	}

	page, err := h.svc.Query(r.Context(), params)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPageResponse(page)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := statsResponse{
		Total:    stats.Total,
		Pending:  stats.Pending,
		Verified: stats.Verified,
		Rejected: stats.Rejected,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
