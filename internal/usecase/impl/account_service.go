package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokens    service.TokenService
	logger    *slog.Logger
}

// AccountServiceParams defines the dependencies for the account service
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		tokens:    params.TokenService,
		logger:    params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and, when asked, a newsletter subscription in the same transaction.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}
	if !input.AgreeToTerms {
		return nil, domainerrors.ErrTermsNotAccepted
	}

	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hashedPassword,
		Newsletter:   input.Newsletter,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// 1. Check if the email is taken
		existing, err := accountRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check account existence")
		}
		if existing != nil {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage(email)
		}

		// 2. Create the account
		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		// 3. Join the mailing list; an existing subscription is kept as is
		if input.Newsletter {
			sub := &entity.NewsletterSubscription{
				ID:        uuid.New(),
				Email:     email,
				Country:   entity.DefaultNewsletterCountry,
				Consent:   true,
				CreatedAt: now,
			}
			if err := subscribe(ctx, repoFactory.NewsletterRepo(), sub); err != nil &&
				!errors.Is(err, domainerrors.ErrAlreadySubscribed) {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountAlreadyExists) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to register account", slog.Any("error", err))

		return nil, errors.Wrap(err, "registration transaction failed")
	}

	srv.log(ctx).Info("Account registered",
		slog.String("account_id", account.ID.String()),
		slog.Bool("newsletter", input.Newsletter),
	)

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login checks the credentials and issues tokens. A refresh token is only issued with RememberMe.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			srv.log(ctx).Warn("Login failed: unknown email")

			return nil, err
		}

		return nil, errors.Wrap(err, "login failed")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.String("account_id", account.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	output := &usecase.LoginOutput{Account: account}
	if input.RememberMe {
		output.AccessToken, output.RefreshToken, err = srv.tokens.GenerateTokens(account.ID)
	} else {
		output.AccessToken, err = srv.tokens.GenerateAccessToken(account.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("Account logged in",
		slog.String("account_id", account.ID.String()),
		slog.Bool("remember_me", input.RememberMe),
	)

	return output, nil
}

// Profile returns the account behind an authenticated request.
func (srv *accountService) Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage(accountID.String())
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return account, nil
}
