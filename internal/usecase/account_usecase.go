package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool
	Newsletter      bool
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the issued tokens. RefreshToken is empty unless RememberMe was set.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// AccountUsecase defines the account operations the API depends on.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
