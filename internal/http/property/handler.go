package property

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/property"
)

type Handler struct {
	svc *property.Service
}

func NewHandler(svc *property.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/archive", h.archive)
	r.Post("/{id}/unarchive", h.unarchive)
}

type createPropertyRequest struct {
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	Type          string          `json:"type"`
	Status        property.Status `json:"status"`
	MonthlyRent   int64           `json:"monthlyRent"`
	Units         int             `json:"units"`
	OccupiedUnits int             `json:"occupiedUnits"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	SquareFeet    int             `json:"squareFeet"`
	Description   string          `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), property.CreateParams{
		Name:          req.Name,
		Address:       req.Address,
		Type:          req.Type,
		Status:        req.Status,
		MonthlyRent:   req.MonthlyRent,
		Units:         req.Units,
		OccupiedUnits: req.OccupiedUnits,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		SquareFeet:    req.SquareFeet,
		Description:   req.Description,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("includeArchived") == "true"

	properties, err := h.svc.List(r.Context(), includeArchived)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(properties); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updatePropertyRequest struct {
	Name          *string          `json:"name,omitempty"`
	Address       *string          `json:"address,omitempty"`
	Type          *string          `json:"type,omitempty"`
	Status        *property.Status `json:"status,omitempty"`
	MonthlyRent   *int64           `json:"monthlyRent,omitempty"`
	Units         *int             `json:"units,omitempty"`
	OccupiedUnits *int             `json:"occupiedUnits,omitempty"`
	Bedrooms      *int             `json:"bedrooms,omitempty"`
	Bathrooms     *int             `json:"bathrooms,omitempty"`
	SquareFeet    *int             `json:"squareFeet,omitempty"`
	Description   *string          `json:"description,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}

	if req.Address != nil {
		p.Address = *req.Address
	}

	if req.Type != nil {
		p.Type = *req.Type
	}

	if req.Status != nil {
		p.Status = *req.Status
	}

	if req.MonthlyRent != nil {
		p.MonthlyRent = *req.MonthlyRent
	}

	if req.Units != nil {
		p.Units = *req.Units
	}

	if req.OccupiedUnits != nil {
		p.OccupiedUnits = *req.OccupiedUnits
	}

	if req.Bedrooms != nil {
		p.Bedrooms = *req.Bedrooms
	}

	if req.Bathrooms != nil {
		p.Bathrooms = *req.Bathrooms
	}

	if req.SquareFeet != nil {
		p.SquareFeet = *req.SquareFeet
	}

	if req.Description != nil {
		p.Description = *req.Description
	}

	if err := h.svc.Update(r.Context(), p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, true)
}

func (h *Handler) unarchive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, false)
}

func (h *Handler) setArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if archived {
		err = h.svc.Archive(r.Context(), id)
	} else {
		err = h.svc.Unarchive(r.Context(), id)
	}

	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
