package lease

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lease id does not exist.
var ErrNotFound = errors.New("lease not found")

// Lease ties a tenant to a unit for a date range. References are informal;
// no integrity is enforced against properties or tenants.
type Lease struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"propertyId"`
	TenantID    uuid.UUID `json:"tenantId"`
	Unit        string    `json:"unit"`
	MonthlyRent int64     `json:"monthlyRent"` // cents
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ActiveAt reports whether the lease covers the given instant.
func (l *Lease) ActiveAt(t time.Time) bool {
	return !l.StartDate.After(t) && !l.EndDate.Before(t)
}
