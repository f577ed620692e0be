package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/finance"
	"github.com/nirbeaver/property-management/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Get("/csv", h.downloadCSV)
}

func params(r *http.Request) (report.Params, error) {
	p := report.Params{
		Filter:    finance.TimeFilter(r.URL.Query().Get("filter")),
		Timeframe: finance.Timeframe(r.URL.Query().Get("timeframe")),
	}

	if s := r.URL.Query().Get("propertyId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return report.Params{}, fmt.Errorf("invalid propertyId")
		}

		p.PropertyID = new(id)
	}

	return p, nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	p, err := params(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := h.svc.Build(r.Context(), p, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(rep); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) downloadCSV(w http.ResponseWriter, r *http.Request) {
	p, err := params(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()

	rep, err := h.svc.Build(r.Context(), p, now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.Filename(now)))

	if err := report.WriteCSV(w, rep); err != nil {
		slog.Error("failed to write csv", "error", err)
	}
}
