// Package ports defines the persistence contracts of the order desk.
// Adapters under internal/adapters/out implement them; the application
// layer only sees these interfaces.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/session"
)

// SessionRepository stores conversations with their cart and transcript.
type SessionRepository interface {
	// Add persists a new session.
	Add(ctx context.Context, s *session.Session) error

	// Update replaces the stored cart, transcript, status and pending suggestion.
	Update(ctx context.Context, s *session.Session) error

	// Get returns errs.ErrObjectNotFound when the session does not exist.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// GetForUpdate is Get, but also locks the session until the unit of work
	// ends, so two turns on one session apply one after the other.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*session.Session, error)
}
