package ports

import (
	"context"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
)

// BadgeRepository persists which badges each account has earned.
// Award is idempotent: awarding a badge the account already holds is a no-op.
type BadgeRepository interface {
	Award(ctx context.Context, accountID, badgeCode string) (bool, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.AwardedBadge, error)
	DeleteByAccount(ctx context.Context, accountID string) error
}
