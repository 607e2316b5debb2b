package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SubscribeInput is the newsletter signup form.
type SubscribeInput struct {
	Email   string
	ZipCode string
	Country string
	Consent bool
}

// NewsletterUsecase manages mailing list signups.
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, input SubscribeInput) (*entity.NewsletterSubscription, error)
}
