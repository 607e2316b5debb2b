package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	registry    *SessionRegistry
	preferences usecase.PreferenceUsecase
	logger      *slog.Logger
}

// SessionServiceParams defines the dependencies for the session service
type SessionServiceParams struct {
	fx.In

	Registry    *SessionRegistry
	Preferences usecase.PreferenceUsecase
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		registry:    params.Registry,
		preferences: params.Preferences,
		logger:      params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Open(ctx context.Context, sessionID string) (*usecase.SessionView, error) {
	state, prompt, err := srv.registry.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	prefs, err := srv.preferences.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &usecase.SessionView{
		SessionID:        sessionID,
		Cart:             usecase.NewCartView(state),
		NewsletterPrompt: prompt,
		Preferences:      prefs,
	}, nil
}

func (srv *sessionService) Close(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domainerrors.ErrSessionRequired
	}

	srv.registry.Close(sessionID)
	srv.log(ctx).Debug("Session closed", slog.String("session_id", sessionID))

	return nil
}

func (srv *sessionService) DismissPrompt(ctx context.Context, sessionID string) error {
	return srv.registry.DismissPrompt(ctx, sessionID)
}
