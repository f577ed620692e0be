// Package notify keeps the in-app notification feed and the checks that
// append to it.
package notify

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type is the severity of a notification.
type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

var ErrNotFound = errors.New("notification not found")

// Notification is one entry of the feed. RelatedID links the notification
// to the record that caused it, so checks do not append duplicates.
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      Type       `json:"type"`
	Read      bool       `json:"read"`
	RelatedID *uuid.UUID `json:"relatedId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
