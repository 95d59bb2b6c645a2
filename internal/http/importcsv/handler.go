package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopfwd/shopfwd/internal/importer"
)

type Handler struct {
	importSvc *importer.Service
}

func NewHandler(importSvc *importer.Service) *Handler {
	return &Handler{importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importSettlement)
}

type importResponse struct {
	Parsed      int      `json:"parsed"`
	Inserted    int      `json:"inserted"`
	Skipped     int      `json:"skipped"`
	UnknownRefs []string `json:"unknown_refs,omitempty"`
}

func (h *Handler) importSettlement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	gateway := importer.Gateway(r.FormValue("gateway"))

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.importSvc.Import(r.Context(), gateway, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := importResponse{
		Parsed:      result.Parsed,
		Inserted:    result.Inserted,
		Skipped:     result.Skipped,
		UnknownRefs: result.UnknownRefs,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
