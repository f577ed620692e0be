package tenant

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/document"
	"github.com/nirbeaver/property-management/internal/tenant"
)

type Handler struct {
	svc       *tenant.Service
	documents *document.Service
}

func NewHandler(svc *tenant.Service, documents *document.Service) *Handler {
	return &Handler{svc: svc, documents: documents}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)

	r.Post("/{id}/notes", h.addNote)
	r.Get("/{id}/notes", h.listNotes)
	r.Delete("/{id}/notes/{noteID}", h.deleteNote)

	r.Post("/{id}/documents", h.uploadDocument)
	r.Get("/{id}/documents", h.listDocuments)
	r.Delete("/{id}/documents/{documentID}", h.deleteDocument)
}

type createTenantRequest struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	PropertyID  *uuid.UUID `json:"propertyId,omitempty"`
	UnitNumber  string     `json:"unitNumber"`
	MonthlyRent int64      `json:"monthlyRent"`
	Deposit     int64      `json:"deposit"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), tenant.CreateParams{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		PropertyID:  req.PropertyID,
		UnitNumber:  req.UnitNumber,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(t); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(tenants); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			http.Error(w, "tenant not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(t); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTenantRequest struct {
	Name        *string        `json:"name,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	Status      *tenant.Status `json:"status,omitempty"`
	PropertyID  *uuid.UUID     `json:"propertyId,omitempty"`
	UnitNumber  *string        `json:"unitNumber,omitempty"`
	MoveInDate  *time.Time     `json:"moveInDate,omitempty"`
	MoveOutDate *time.Time     `json:"moveOutDate,omitempty"`
	MonthlyRent *int64         `json:"monthlyRent,omitempty"`
	Deposit     *int64         `json:"deposit,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			http.Error(w, "tenant not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		t.Name = *req.Name
	}

	if req.Email != nil {
		t.Email = *req.Email
	}

	if req.Phone != nil {
		t.Phone = *req.Phone
	}

	if req.Status != nil {
		t.Status = *req.Status
	}

	if req.PropertyID != nil {
		t.PropertyID = req.PropertyID
	}

	if req.UnitNumber != nil {
		t.UnitNumber = *req.UnitNumber
	}

	if req.MoveInDate != nil {
		t.MoveInDate = req.MoveInDate
	}

	if req.MoveOutDate != nil {
		t.MoveOutDate = req.MoveOutDate
	}

	if req.MonthlyRent != nil {
		t.MonthlyRent = *req.MonthlyRent
	}

	if req.Deposit != nil {
		t.Deposit = *req.Deposit
	}

	if err := h.svc.Update(r.Context(), t); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(t); err != nil {
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
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addNoteRequest struct {
	Content string `json:"content"`
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.svc.AddNote(r.Context(), id, req.Content)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			http.Error(w, "tenant not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(note); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	notes, err := h.svc.Notes(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(notes); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), noteID); err != nil {
		if errors.Is(err, tenant.ErrNoteNotFound) {
			http.Error(w, "note not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// maxUploadForm bounds the multipart form, slightly above the stored file
// cap to leave room for the other fields.
const maxUploadForm = document.MaxSize + 1<<20

func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxUploadForm); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "reading upload", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")

	url, err := h.documents.Upload(data, fmt.Sprintf("tenants/%s/%s", id, header.Filename), contentType)
	if err != nil {
		if errors.Is(err, document.ErrTooLarge) || errors.Is(err, document.ErrUnsupportedType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	doc := &tenant.Document{
		TenantID:   id,
		Name:       header.Filename,
		Type:       contentType,
		URL:        url,
		Size:       int64(len(data)),
		UploadDate: time.Now().UTC(),
	}
	if err := h.svc.AddDocument(r.Context(), doc); err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			http.Error(w, "tenant not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(doc); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	docs, err := h.svc.Documents(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(docs); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteDocument(r.Context(), documentID); err != nil {
		if errors.Is(err, tenant.ErrDocumentNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
