package lease

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/lease"
)

type Handler struct {
	svc *lease.Service
}

func NewHandler(svc *lease.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
}

type createLeaseRequest struct {
	PropertyID  uuid.UUID `json:"propertyId"`
	TenantID    uuid.UUID `json:"tenantId"`
	Unit        string    `json:"unit"`
	MonthlyRent int64     `json:"monthlyRent"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.Create(r.Context(), &lease.Lease{
		PropertyID:  req.PropertyID,
		TenantID:    req.TenantID,
		Unit:        req.Unit,
		MonthlyRent: req.MonthlyRent,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(l); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		leases []*lease.Lease
		err    error
	)

	if s := r.URL.Query().Get("propertyId"); s != "" {
		id, parseErr := uuid.Parse(s)
		if parseErr != nil {
			http.Error(w, "invalid propertyId", http.StatusBadRequest)
			return
		}

		leases, err = h.svc.ForProperty(r.Context(), id)
	} else {
		leases, err = h.svc.List(r.Context())
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(leases); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, lease.ErrNotFound) {
			http.Error(w, "lease not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
