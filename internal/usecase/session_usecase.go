package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionView is everything a client needs to render a session on load.
type SessionView struct {
	SessionID        string
	Cart             *CartView
	NewsletterPrompt bool
	Preferences      entity.Preferences
}

// SessionUsecase manages the lifetime of storefront sessions.
type SessionUsecase interface {
	// Open restores the session if needed and returns its current view.
	Open(ctx context.Context, sessionID string) (*SessionView, error)

	// Close cancels the pending newsletter prompt and drops the in-memory session.
	// The persisted cart and preferences are kept.
	Close(ctx context.Context, sessionID string) error

	// DismissPrompt hides the newsletter prompt for the rest of the session.
	DismissPrompt(ctx context.Context, sessionID string) error
}
