package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	store  repository.KeyValueStore
	prefix string
	locks  *sessionLocks
	logger *slog.Logger
}

// PreferenceServiceParams defines the dependencies for the preference service
type PreferenceServiceParams struct {
	fx.In

	Config *config.Config
	Store  repository.KeyValueStore
	Logger *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	return &preferenceService{
		store:  params.Store,
		prefix: params.Config.Storage.KeyPrefix,
		locks:  newSessionLocks(),
		logger: params.Logger,
	}
}

func (srv *preferenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the stored preferences. Missing or unknown values fall back to the defaults.
func (srv *preferenceService) Get(ctx context.Context, sessionID string) (entity.Preferences, error) {
	if sessionID == "" {
		return entity.Preferences{}, domainerrors.ErrSessionRequired
	}

	unlock := srv.locks.lock(sessionID)
	defer unlock()

	return srv.load(ctx, sessionID), nil
}

func (srv *preferenceService) load(ctx context.Context, sessionID string) entity.Preferences {
	prefs := entity.DefaultPreferences()

	if theme := entity.Theme(srv.read(ctx, themeKeyPrefix+sessionID)); theme == entity.ThemeDark || theme == entity.ThemeLight {
		prefs.Theme = theme
	}

	if lang := entity.Language(srv.read(ctx, languageKeyPrefix+sessionID)); lang.IsSupported() {
		prefs.Language = lang
	}

	return prefs
}

// update runs change on the current preferences under the session lock.
func (srv *preferenceService) update(
	ctx context.Context,
	sessionID string,
	change func(prefs *entity.Preferences) (key, value string),
) (entity.Preferences, error) {
	if sessionID == "" {
		return entity.Preferences{}, domainerrors.ErrSessionRequired
	}

	unlock := srv.locks.lock(sessionID)
	defer unlock()

	prefs := srv.load(ctx, sessionID)
	key, value := change(&prefs)
	if err := srv.write(ctx, key+sessionID, value); err != nil {
		return entity.Preferences{}, err
	}

	return prefs, nil
}

func (srv *preferenceService) ToggleTheme(ctx context.Context, sessionID string) (entity.Preferences, error) {
	return srv.update(ctx, sessionID, func(prefs *entity.Preferences) (string, string) {
		prefs.Theme = prefs.Theme.Toggle()

		return themeKeyPrefix, string(prefs.Theme)
	})
}

func (srv *preferenceService) SetLanguage(ctx context.Context, sessionID string, language entity.Language) (entity.Preferences, error) {
	if !language.IsSupported() {
		return entity.Preferences{}, domainerrors.ErrUnsupportedLanguage.WithDetails(string(language))
	}

	return srv.update(ctx, sessionID, func(prefs *entity.Preferences) (string, string) {
		prefs.Language = language

		return languageKeyPrefix, string(language)
	})
}

func (srv *preferenceService) read(ctx context.Context, key string) string {
	raw, err := srv.store.Get(ctx, srv.prefix+key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			srv.log(ctx).Warn("Failed to read preference, using default",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return ""
	}

	return string(raw)
}

func (srv *preferenceService) write(ctx context.Context, key, value string) error {
	if err := srv.store.Set(ctx, srv.prefix+key, []byte(value)); err != nil {
		srv.log(ctx).Error("Failed to save preference",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to save preference")
	}

	return nil
}
