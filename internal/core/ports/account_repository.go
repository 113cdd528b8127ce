package ports

import (
	"context"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
)

// AccountRepository is the persistence boundary for accounts.
//
// Create must rely on a storage-level unique constraint on the normalized
// email and return domain.ErrEmailTaken on violation; callers never
// check-then-insert.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id string) error
}
