package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// PreferenceUsecase reads and updates per-session display settings.
type PreferenceUsecase interface {
	Get(ctx context.Context, sessionID string) (entity.Preferences, error)
	ToggleTheme(ctx context.Context, sessionID string) (entity.Preferences, error)
	SetLanguage(ctx context.Context, sessionID string, language entity.Language) (entity.Preferences, error)
}
