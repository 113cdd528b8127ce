package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
	"github.com/wildquiz/wildquiz-api/internal/core/ports"
	"github.com/wildquiz/wildquiz-api/internal/token"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	copy := cloneAccount(account)
	copy.ID = "acc-" + strconv.Itoa(r.nextID)
	r.accounts[copy.ID] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

type stubResultRepo struct {
	results []*domain.QuizResult
}

func (r *stubResultRepo) Insert(_ context.Context, result *domain.QuizResult) (*domain.QuizResult, error) {
	copy := *result
	copy.ID = "res-" + strconv.Itoa(len(r.results)+1)
	r.results = append(r.results, &copy)
	return &copy, nil
}

func (r *stubResultRepo) CountByAccount(_ context.Context, accountID string) (int64, error) {
	var n int64
	for _, res := range r.results {
		if res.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

func (r *stubResultRepo) DeleteByAccount(_ context.Context, accountID string) error {
	kept := r.results[:0]
	for _, res := range r.results {
		if res.AccountID != accountID {
			kept = append(kept, res)
		}
	}
	r.results = kept
	return nil
}

type stubBadgeRepo struct {
	awarded map[string][]string
}

func newStubBadgeRepo() *stubBadgeRepo {
	return &stubBadgeRepo{awarded: make(map[string][]string)}
}

func (r *stubBadgeRepo) Award(_ context.Context, accountID, badgeCode string) (bool, error) {
	for _, code := range r.awarded[accountID] {
		if code == badgeCode {
			return false, nil
		}
	}
	r.awarded[accountID] = append(r.awarded[accountID], badgeCode)
	return true, nil
}

func (r *stubBadgeRepo) ListByAccount(_ context.Context, accountID string) ([]domain.AwardedBadge, error) {
	badges := make([]domain.AwardedBadge, 0, len(r.awarded[accountID]))
	for _, code := range r.awarded[accountID] {
		badges = append(badges, domain.AwardedBadge{AccountID: accountID, BadgeCode: code})
	}
	return badges, nil
}

func (r *stubBadgeRepo) DeleteByAccount(_ context.Context, accountID string) error {
	delete(r.awarded, accountID)
	return nil
}

type stubLeaderboard struct {
	scores map[string]int64
}

func newStubLeaderboard() *stubLeaderboard {
	return &stubLeaderboard{scores: make(map[string]int64)}
}

func (l *stubLeaderboard) AddScore(_ context.Context, accountID string, points int64) error {
	l.scores[accountID] += points
	return nil
}

func (l *stubLeaderboard) Top(_ context.Context, _ int64) ([]ports.LeaderboardEntry, error) {
	return nil, nil
}

func (l *stubLeaderboard) Rank(_ context.Context, accountID string) (*ports.LeaderboardEntry, error) {
	score, ok := l.scores[accountID]
	if !ok {
		return nil, nil
	}
	return &ports.LeaderboardEntry{AccountID: accountID, Score: score, Rank: 1}, nil
}

func (l *stubLeaderboard) Remove(_ context.Context, accountID string) error {
	delete(l.scores, accountID)
	return nil
}

func newTestAuthService(repo *stubAccountRepo) (*AuthService, *token.Issuer) {
	issuer := token.NewIssuer("test-secret", time.Hour)
	svc := NewAuthService(repo, &stubResultRepo{}, newStubBadgeRepo(), newStubLeaderboard(), issuer, zerolog.Nop())
	return svc, issuer
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, issuer := newTestAuthService(newStubAccountRepo())

	account, tok, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if account.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if account.Role != domain.RoleMember {
		t.Fatalf("unexpected role: %s", account.Role)
	}
	if !account.IsActive {
		t.Fatalf("new account should be active")
	}

	subject, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("returned token invalid: %v", err)
	}
	if subject != account.ID {
		t.Fatalf("token subject %q does not match account %q", subject, account.ID)
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	svc, _ := newTestAuthService(newStubAccountRepo())

	account, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Jane",
		Email:    "  Jane@X.COM ",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if account.Email != "jane@x.com" {
		t.Fatalf("expected normalized email, got %q", account.Email)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(newStubAccountRepo())

	input := ports.RegisterInput{Name: "Jane", Email: "jane@x.com", Password: "secret1"}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Same address, different case: still one account.
	input.Email = "JANE@X.COM"
	if _, _, err := svc.Register(context.Background(), input); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, issuer := newTestAuthService(newStubAccountRepo())

	registered, registerToken, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Jane", Email: "jane@x.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	account, loginToken, err := svc.Login(context.Background(), "JANE@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if account.ID != registered.ID {
		t.Fatalf("login returned wrong account")
	}
	if loginToken == registerToken {
		t.Fatalf("expected a fresh token on login")
	}
	if _, err := issuer.Verify(loginToken); err != nil {
		t.Fatalf("login token invalid: %v", err)
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	svc, _ := newTestAuthService(newStubAccountRepo())

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Jane", Email: "jane@x.com", Password: "secret1",
	})

	// Wrong password and unknown email fail identically.
	if _, _, err := svc.Login(context.Background(), "jane@x.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "secret1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _ := newTestAuthService(repo)

	account, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Jane", Email: "jane@x.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	deactivated := cloneAccount(repo.accounts[account.ID])
	deactivated.IsActive = false
	if err := repo.Update(context.Background(), deactivated); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	// Even with the correct password, the error stays generic.
	if _, _, err := svc.Login(context.Background(), "jane@x.com", "secret1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for inactive account, got %v", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _ := newTestAuthService(repo)

	account, _, _ := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Jane", Email: "jane@x.com", Password: "secret1",
	})

	bio := "Amateur herpetologist"
	updated, err := svc.UpdateProfile(context.Background(), account.ID, domain.ProfileUpdate{
		Bio:       &bio,
		Interests: []string{"reptiles", "birds"},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Bio != bio {
		t.Fatalf("bio not applied")
	}
	if len(updated.Interests) != 2 {
		t.Fatalf("interests not applied")
	}
	if updated.DisplayName != "Jane" {
		t.Fatalf("unset field should be unchanged, got %q", updated.DisplayName)
	}
	if !updated.UpdatedAt.After(account.UpdatedAt) && !updated.UpdatedAt.Equal(account.UpdatedAt) {
		t.Fatalf("updated_at not refreshed")
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _ := newTestAuthService(newStubAccountRepo())

	account, _, _ := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Jane", Email: "jane@x.com", Password: "oldpass1",
	})

	if err := svc.ChangePassword(context.Background(), account.ID, "wrong", "newpass1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), account.ID, "oldpass1", "short"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), account.ID, "oldpass1", "newpass1"); err != nil {
		t.Fatalf("change failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "jane@x.com", "oldpass1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password should no longer authenticate, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "jane@x.com", "newpass1"); err != nil {
		t.Fatalf("new password should authenticate: %v", err)
	}
}

func TestAuthService_DeleteAccount(t *testing.T) {
	repo := newStubAccountRepo()
	results := &stubResultRepo{}
	badges := newStubBadgeRepo()
	board := newStubLeaderboard()
	issuer := token.NewIssuer("test-secret", time.Hour)
	svc := NewAuthService(repo, results, badges, board, issuer, zerolog.Nop())

	account, _, _ := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Jane", Email: "jane@x.com", Password: "secret1",
	})

	_, _ = results.Insert(context.Background(), &domain.QuizResult{AccountID: account.ID, QuizID: "q1", Score: 3, Total: 5})
	_, _ = badges.Award(context.Background(), account.ID, domain.BadgeFirstQuiz)
	_ = board.AddScore(context.Background(), account.ID, 3)

	if err := svc.DeleteAccount(context.Background(), account.ID, "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected password re-verification, got %v", err)
	}

	if err := svc.DeleteAccount(context.Background(), account.ID, "secret1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.GetProfile(context.Background(), account.ID); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound after delete, got %v", err)
	}
	if n, _ := results.CountByAccount(context.Background(), account.ID); n != 0 {
		t.Fatalf("quiz results not removed")
	}
	if earned, _ := badges.ListByAccount(context.Background(), account.ID); len(earned) != 0 {
		t.Fatalf("badges not removed")
	}
	if entry, _ := board.Rank(context.Background(), account.ID); entry != nil {
		t.Fatalf("leaderboard entry not removed")
	}
}
