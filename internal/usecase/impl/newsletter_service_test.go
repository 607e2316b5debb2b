package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewsletterService_Subscribe_DefaultsCountry(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewNewsletterService(NewsletterServiceParams{TxManager: txManager, Logger: testLogger()})
	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNewsletterRepo := mockRepo.NewMockNewsletterRepository(t)

			mockFactory.EXPECT().NewsletterRepo().Return(mockNewsletterRepo)
			mockNewsletterRepo.EXPECT().FindByEmail(ctx, "reader@example.com").Return(nil, repository.ErrSubscriptionNotFound)
			mockNewsletterRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.NewsletterSubscription")).Return(nil)

			return fn(mockFactory)
		})

	sub, err := srv.Subscribe(ctx, usecase.SubscribeInput{Email: "Reader@Example.com", ZipCode: "10001"})

	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.Equal(t, entity.DefaultNewsletterCountry, sub.Country)
	assert.False(t, sub.Consent)
}

func TestNewsletterService_Subscribe_Duplicate(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewNewsletterService(NewsletterServiceParams{TxManager: txManager, Logger: testLogger()})
	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNewsletterRepo := mockRepo.NewMockNewsletterRepository(t)

			mockFactory.EXPECT().NewsletterRepo().Return(mockNewsletterRepo)
			mockNewsletterRepo.EXPECT().
				FindByEmail(ctx, "reader@example.com").
				Return(&entity.NewsletterSubscription{Email: "reader@example.com"}, nil)

			return fn(mockFactory)
		})

	_, err := srv.Subscribe(ctx, usecase.SubscribeInput{Email: "reader@example.com", Country: "Canada"})

	assert.ErrorIs(t, err, domainerrors.ErrAlreadySubscribed)
}

func TestNewsletterService_Subscribe_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SubscribeInput
	}{
		{name: "missing email", input: usecase.SubscribeInput{Email: "  "}},
		{name: "country not offered", input: usecase.SubscribeInput{Email: "a@b.co", Country: "Atlantis"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewNewsletterService(NewsletterServiceParams{
				TxManager: mockRepo.NewMockTransactionManager(t),
				Logger:    testLogger(),
			})

			_, err := srv.Subscribe(context.Background(), tt.input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}
