package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

var ErrSubscriptionNotFound = errors.New("newsletter subscription not found")

// NewsletterRepository persists mailing list signups.
type NewsletterRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error)

	// Create stores a new signup; a duplicate email yields domainerrors.ErrAlreadySubscribed.
	Create(ctx context.Context, sub *entity.NewsletterSubscription) error
}
