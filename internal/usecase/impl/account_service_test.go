package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service   usecase.AccountUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	return accountServiceFixtures{
		service: NewAccountService(AccountServiceParams{
			TxManager:    txManager,
			Hasher:       hasher,
			TokenService: tokens,
			Logger:       testLogger(),
		}),
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
	}
}

func registerInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           " Jane@Example.com ",
		Password:        "secret-pass",
		ConfirmPassword: "secret-pass",
		AgreeToTerms:    true,
	}
}

func TestAccountService_Register_PasswordMismatch(t *testing.T) {
	fx := createTestAccountService(t)

	input := registerInput()
	input.ConfirmPassword = "different"

	_, err := fx.service.Register(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}

func TestAccountService_Register_TermsNotAccepted(t *testing.T) {
	fx := createTestAccountService(t)

	input := registerInput()
	input.AgreeToTerms = false

	_, err := fx.service.Register(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrTermsNotAccepted)
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := registerInput()
	input.Newsletter = true

	fx.hasher.EXPECT().Hash("secret-pass").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockNewsletterRepo := mockRepo.NewMockNewsletterRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().NewsletterRepo().Return(mockNewsletterRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
			mockNewsletterRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrSubscriptionNotFound)
			mockNewsletterRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.NewsletterSubscription")).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", output.Account.Email)
	assert.Equal(t, "hashed", output.Account.PasswordHash)
	assert.True(t, output.Account.Newsletter)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret-pass").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(&entity.Account{ID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, registerInput())

	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	fx.hasher.EXPECT().Hash("secret-pass").Return("", errors.New("boom"))

	_, err := fx.service.Register(context.Background(), registerInput())

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func expectAccountLookup(t *testing.T, fx accountServiceFixtures, ctx context.Context, account *entity.Account, lookupErr error) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(account, lookupErr)

			return fn(mockFactory)
		})
}

func TestAccountService_Login(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed"}

	t.Run("access token only", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		expectAccountLookup(t, fx, ctx, account, nil)
		fx.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
		fx.tokens.EXPECT().GenerateAccessToken(account.ID).Return("access", nil)

		output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "Jane@example.com", Password: "secret-pass"})

		require.NoError(t, err)
		assert.Equal(t, "access", output.AccessToken)
		assert.Empty(t, output.RefreshToken)
	})

	t.Run("remember me issues refresh token", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		expectAccountLookup(t, fx, ctx, account, nil)
		fx.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
		fx.tokens.EXPECT().GenerateTokens(account.ID).Return("access", "refresh", nil)

		output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "jane@example.com", Password: "secret-pass", RememberMe: true})

		require.NoError(t, err)
		assert.Equal(t, "refresh", output.RefreshToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		expectAccountLookup(t, fx, ctx, nil, repository.ErrAccountNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "jane@example.com", Password: "secret-pass"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		expectAccountLookup(t, fx, ctx, account, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "jane@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountService_Profile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.Profile(ctx, accountID)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
