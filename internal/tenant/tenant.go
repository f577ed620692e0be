package tenant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents whether a tenant currently rents a unit.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

var (
	ErrNotFound         = errors.New("tenant not found")
	ErrNoteNotFound     = errors.New("tenant note not found")
	ErrDocumentNotFound = errors.New("tenant document not found")
)

// Tenant represents a renter. PropertyID is an informal reference with no
// enforced integrity.
type Tenant struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Status      Status     `json:"status"`
	PropertyID  *uuid.UUID `json:"propertyId,omitempty"`
	UnitNumber  string     `json:"unitNumber,omitempty"`
	MoveInDate  *time.Time `json:"moveInDate,omitempty"`
	MoveOutDate *time.Time `json:"moveOutDate,omitempty"`
	MonthlyRent int64      `json:"monthlyRent,omitempty"` // cents
	Deposit     int64      `json:"deposit,omitempty"`     // cents
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Note is a free-form annotation attached to a tenant.
type Note struct {
	ID        uuid.UUID  `json:"id"`
	TenantID  uuid.UUID  `json:"tenantId"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Document records an uploaded file attached to a tenant. URL points into
// the document storage service.
type Document struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenantId"`
	Name       string    `json:"name"`
	Type       string    `json:"type"` // MIME type
	URL        string    `json:"url"`
	Size       int64     `json:"size,omitempty"`
	UploadDate time.Time `json:"uploadDate"`
}
