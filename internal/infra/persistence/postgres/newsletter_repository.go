package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{db: db}
}

// FindByEmail retrieves the signup for email.
func (repo *newsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	var subM model.NewsletterSubscriptionModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find newsletter subscription")
	}

	return toSubscriptionDomain(&subM), nil
}

// Create stores a new signup.
func (repo *newsletterRepository) Create(ctx context.Context, sub *entity.NewsletterSubscription) error {
	subM := &model.NewsletterSubscriptionModel{
		ID:      sub.ID,
		Email:   sub.Email,
		ZipCode: sub.ZipCode,
		Country: sub.Country,
		Consent: sub.Consent,
	}

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadySubscribed.WrapMessage("email already subscribed")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid newsletter subscription")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create newsletter subscription")
	}

	sub.ID = subM.ID
	sub.CreatedAt = subM.CreatedAt

	return nil
}

func toSubscriptionDomain(data *model.NewsletterSubscriptionModel) *entity.NewsletterSubscription {
	return &entity.NewsletterSubscription{
		ID:        data.ID,
		Email:     data.Email,
		ZipCode:   data.ZipCode,
		Country:   data.Country,
		Consent:   data.Consent,
		CreatedAt: data.CreatedAt,
	}
}
