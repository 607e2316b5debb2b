package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// newsletterService implements the NewsletterUsecase interface.
type newsletterService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewsletterServiceParams defines the dependencies for the newsletter service
type NewsletterServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewNewsletterService is the constructor for newsletterService.
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *newsletterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe adds an email to the mailing list. A known email yields ErrAlreadySubscribed.
func (srv *newsletterService) Subscribe(ctx context.Context, input usecase.SubscribeInput) (*entity.NewsletterSubscription, error) {
	sub, err := newSubscription(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return subscribe(ctx, repoFactory.NewsletterRepo(), sub)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadySubscribed) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to subscribe to newsletter", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to subscribe to newsletter")
	}

	srv.log(ctx).Info("Newsletter subscription created",
		slog.String("subscription_id", sub.ID.String()),
		slog.String("country", sub.Country),
	)

	return sub, nil
}

// newSubscription normalizes the form and applies the default country.
func newSubscription(input usecase.SubscribeInput) (*entity.NewsletterSubscription, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = entity.DefaultNewsletterCountry
	}
	if !slices.Contains(entity.NewsletterCountries, country) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported country: " + country)
	}

	return &entity.NewsletterSubscription{
		ID:        uuid.New(),
		Email:     email,
		ZipCode:   strings.TrimSpace(input.ZipCode),
		Country:   country,
		Consent:   input.Consent,
		CreatedAt: time.Now(),
	}, nil
}

// subscribe stores sub unless its email is already on the list.
func subscribe(ctx context.Context, repo repository.NewsletterRepository, sub *entity.NewsletterSubscription) error {
	existing, err := repo.FindByEmail(ctx, sub.Email)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return errors.Wrap(err, "failed to look up subscription")
	}
	if existing != nil {
		return domainerrors.ErrAlreadySubscribed.WrapMessage(sub.Email)
	}

	if err := repo.Create(ctx, sub); err != nil {
		return errors.Wrap(err, "failed to create subscription")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
