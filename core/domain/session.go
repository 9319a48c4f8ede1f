// ABOUTME: Session domain model is the persisted snapshot of one preview session
// ABOUTME: Provides creation with a fresh UUID and expiration checking

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the serialisable state of one view controller
type Session struct {
	// ID is the unique identifier (UUID) for the session
	ID string `json:"id"`

	// Document is the currently loaded document
	Document Document `json:"document"`

	// Loaded is false until the first load and again after a reset
	Loaded bool `json:"loaded"`

	// Mode is the current view mode ("preview" or "raw")
	Mode string `json:"mode"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the session state last changed
	UpdatedAt time.Time `json:"updatedAt"`

	// ExpiresAt is when the session expires (nil means no expiration)
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// NewSession creates an empty session. A positive ttl sets ExpiresAt.
func NewSession(ttl time.Duration) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.New().String(),
		Mode:      "preview",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ttl > 0 {
		expires := now.Add(ttl)
		s.ExpiresAt = &expires
	}
	return s
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	if s.ExpiresAt == nil {
		return false
	}

	return time.Now().After(*s.ExpiresAt)
}
