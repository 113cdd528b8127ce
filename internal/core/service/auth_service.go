package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
	"github.com/wildquiz/wildquiz-api/internal/core/ports"
	"github.com/wildquiz/wildquiz-api/internal/password"
	"github.com/wildquiz/wildquiz-api/internal/token"
)

// AuthService implements account registration, login and lifecycle.
type AuthService struct {
	accounts    ports.AccountRepository
	results     ports.ResultRepository
	badges      ports.BadgeRepository
	leaderboard ports.Leaderboard
	tokens      *token.Issuer
	logger      zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	results ports.ResultRepository,
	badges ports.BadgeRepository,
	leaderboard ports.Leaderboard,
	tokens *token.Issuer,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts:    accounts,
		results:     results,
		badges:      badges,
		leaderboard: leaderboard,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register creates a new account and returns it with a fresh session token.
// The email unique index is the authority on duplicates: the repository
// returns domain.ErrEmailTaken on violation, so concurrent registrations of
// the same address cannot both succeed.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, string, error) {
	email := normalizeEmail(input.Email)
	if input.Name == "" || email == "" || input.Password == "" {
		return nil, "", domain.ErrInvalidInput
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(input.Name),
		Role:         domain.RoleMember,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("account_id", created.ID).Msg("account registered")
	return created, tok, nil
}

// Login authenticates by case-insensitive email and password. A missing
// account, a wrong password and a deactivated account all return
// ErrInvalidCredentials so the response never reveals which it was.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*domain.Account, string, error) {
	email = normalizeEmail(email)
	if email == "" || plaintext == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !password.Verify(plaintext, account.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}
	// Deactivated accounts fail with the same generic error as a bad password,
	// checked after hash verification so both paths cost the same.
	if !account.IsActive {
		return nil, "", domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, tok, nil
}

func (s *AuthService) GetProfile(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, accountID)
}

// UpdateProfile applies the recognized editable fields and refreshes
// updated_at. Unknown request fields never reach this layer.
func (s *AuthService) UpdateProfile(ctx context.Context, accountID string, update domain.ProfileUpdate) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != nil {
		account.DisplayName = strings.TrimSpace(*update.DisplayName)
	}
	if update.Bio != nil {
		account.Bio = *update.Bio
	}
	if update.FavoriteAnimal != nil {
		account.FavoriteAnimal = *update.FavoriteAnimal
	}
	if update.Interests != nil {
		account.Interests = update.Interests
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// ChangePassword verifies the current password before rehashing. Outstanding
// session tokens stay valid until natural expiry; there is no server-side
// registry to revoke them against.
func (s *AuthService) ChangePassword(ctx context.Context, accountID, current, next string) error {
	if len(next) < 6 {
		return domain.ErrInvalidInput
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !password.Verify(current, account.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	account.PasswordHash = hash
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Update(ctx, account); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", accountID).Msg("password changed")
	return nil
}

// DeleteAccount re-verifies the password, then removes dependent records
// before the account itself: quiz results, awarded badges, the leaderboard
// entry, and finally the account. Deleting dependents first means a partial
// failure leaves the account present and the operation retryable.
func (s *AuthService) DeleteAccount(ctx context.Context, accountID, plaintext string) error {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !password.Verify(plaintext, account.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	if err := s.results.DeleteByAccount(ctx, accountID); err != nil {
		return fmt.Errorf("delete quiz results: %w", err)
	}
	if err := s.badges.DeleteByAccount(ctx, accountID); err != nil {
		return fmt.Errorf("delete badges: %w", err)
	}
	if err := s.leaderboard.Remove(ctx, accountID); err != nil {
		// Orphaned score only; ranks self-heal once the account is gone.
		s.logger.Warn().Err(err).Str("account_id", accountID).Msg("leaderboard cleanup failed")
	}
	if err := s.accounts.Delete(ctx, accountID); err != nil {
		return err
	}

	s.logger.Info().Str("account_id", accountID).Msg("account deleted")
	return nil
}

// normalizeEmail lowercases and trims so lookups and the unique index agree
// on a single canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
