package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/importer"
	"github.com/nirbeaver/property-management/internal/property"
	"github.com/nirbeaver/property-management/internal/transaction"
)

type Handler struct {
	txSvc   *transaction.Service
	propSvc *property.Service
}

func NewHandler(txSvc *transaction.Service, propSvc *property.Service) *Handler {
	return &Handler{txSvc: txSvc, propSvc: propSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatLedger
	}

	fallback, err := uuid.Parse(r.FormValue("propertyId"))
	if err != nil {
		http.Error(w, "propertyId field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Rows may name properties; resolve names against the current list,
	// archived ones included so old exports still match.
	properties, err := h.propSvc.List(r.Context(), true)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	byName := make(map[string]uuid.UUID, len(properties))
	for _, p := range properties {
		byName[p.Name] = p.ID
	}

	svc := importer.NewService(fallback, func(name string) (uuid.UUID, bool) {
		id, ok := byName[name]

		return id, ok
	})

	params, err := svc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, skipped, err := h.txSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{
		Imported: len(created),
		Skipped:  skipped,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
