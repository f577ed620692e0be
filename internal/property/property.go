package property

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents the rental state of a property.
type Status string

const (
	StatusVacant      Status = "Vacant"
	StatusRented      Status = "Rented"
	StatusMaintenance Status = "Maintenance"
)

// ErrNotFound is returned when a property id does not exist.
var ErrNotFound = errors.New("property not found")

// Property represents a managed rental property. Archiving sets a soft flag;
// the record and its historical transactions are never removed.
type Property struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	Type          string     `json:"type"`
	Status        Status     `json:"status"`
	MonthlyRent   int64      `json:"monthlyRent"` // cents
	Bedrooms      int        `json:"bedrooms,omitempty"`
	Bathrooms     int        `json:"bathrooms,omitempty"`
	SquareFeet    int        `json:"squareFeet,omitempty"`
	Description   string     `json:"description,omitempty"`
	Units         int        `json:"units"`
	OccupiedUnits int        `json:"occupiedUnits"`
	Archived      bool       `json:"archived"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// OccupancyRate returns occupied units as a percentage of total units,
// zero for a property with no units.
func (p *Property) OccupancyRate() float64 {
	if p.Units == 0 {
		return 0
	}

	return float64(p.OccupiedUnits) / float64(p.Units) * 100
}
