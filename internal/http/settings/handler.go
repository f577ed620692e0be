package settings

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nirbeaver/property-management/internal/settings"
)

type Handler struct {
	svc *settings.Service
}

func NewHandler(svc *settings.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/profile", h.getProfile)
	r.Put("/profile", h.putProfile)
	r.Get("/company", h.getCompany)
	r.Put("/company", h.putCompany)
	r.Get("/app", h.getApp)
	r.Put("/app", h.putApp)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Profile(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, profile)
}

func (h *Handler) putProfile(w http.ResponseWriter, r *http.Request) {
	var profile settings.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateProfile(r.Context(), &profile); err != nil {
		writeSaveError(w, err)
		return
	}

	respond(w, profile)
}

func (h *Handler) getCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.svc.Company(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, company)
}

func (h *Handler) putCompany(w http.ResponseWriter, r *http.Request) {
	var company settings.CompanySettings
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateCompany(r.Context(), &company); err != nil {
		writeSaveError(w, err)
		return
	}

	respond(w, company)
}

func (h *Handler) getApp(w http.ResponseWriter, r *http.Request) {
	app, err := h.svc.App(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, app)
}

func (h *Handler) putApp(w http.ResponseWriter, r *http.Request) {
	var app settings.AppSettings
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateApp(r.Context(), &app); err != nil {
		writeSaveError(w, err)
		return
	}

	respond(w, app)
}

func writeSaveError(w http.ResponseWriter, err error) {
	if errors.Is(err, settings.ErrEmptyName) || errors.Is(err, settings.ErrEmptyCurrency) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func respond(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
