package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// ErrNotFound is returned when a transaction id does not exist.
var ErrNotFound = errors.New("transaction not found")

// Transaction represents a financial transaction against a property.
// PropertyID is an informal reference: the property may have been removed,
// in which case the transaction simply aggregates under no property.
type Transaction struct {
	ID          uuid.UUID  `json:"id"`
	PropertyID  uuid.UUID  `json:"propertyId"`
	TenantID    *uuid.UUID `json:"tenantId,omitempty"`
	Type        Type       `json:"type"`
	Category    string     `json:"category"`
	Amount      int64      `json:"amount"` // cents, always non-negative
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	Vendor      string     `json:"vendor,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
