package ports

import (
	"context"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService orchestrates registration, login and account lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, string, error)
	Login(ctx context.Context, email, password string) (*domain.Account, string, error)
	GetProfile(ctx context.Context, accountID string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, accountID string, update domain.ProfileUpdate) (*domain.Account, error)
	ChangePassword(ctx context.Context, accountID, current, next string) error
	DeleteAccount(ctx context.Context, accountID, password string) error
}
