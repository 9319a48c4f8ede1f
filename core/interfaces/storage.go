// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"mdpreview-api/core/domain"
)

// SessionStorage defines the interface for session persistence
type SessionStorage interface {
	// Save persists a session
	Save(ctx context.Context, session *domain.Session) error

	// Get retrieves a session by ID. Returns nil, nil when it does not exist.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes a session
	Delete(ctx context.Context, id string) error
}
