package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
	"github.com/wildquiz/wildquiz-api/internal/core/ports"
)

type stubQuizRepo struct {
	quizzes map[string]*domain.Quiz
	nextID  int
}

func newStubQuizRepo() *stubQuizRepo {
	return &stubQuizRepo{quizzes: make(map[string]*domain.Quiz)}
}

func (r *stubQuizRepo) List(_ context.Context, _ ports.ListPage) ([]domain.Quiz, int64, error) {
	out := make([]domain.Quiz, 0, len(r.quizzes))
	for _, q := range r.quizzes {
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (r *stubQuizRepo) FindByID(_ context.Context, id string) (*domain.Quiz, error) {
	if q, ok := r.quizzes[id]; ok {
		clone := *q
		return &clone, nil
	}
	return nil, domain.ErrQuizNotFound
}

func (r *stubQuizRepo) Insert(_ context.Context, quiz *domain.Quiz) (*domain.Quiz, error) {
	r.nextID++
	clone := *quiz
	clone.ID = "quiz-" + strconv.Itoa(r.nextID)
	r.quizzes[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubQuizRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.quizzes[id]; !ok {
		return domain.ErrQuizNotFound
	}
	delete(r.quizzes, id)
	return nil
}

func newTestQuiz(t *testing.T, repo *stubQuizRepo) *domain.Quiz {
	t.Helper()
	quiz, err := repo.Insert(context.Background(), &domain.Quiz{
		Title:      "Arctic Mammals",
		Difficulty: domain.DifficultyEasy,
		Questions: []domain.Question{
			{Prompt: "Polar bears mostly eat?", Choices: []string{"Seals", "Fish", "Berries"}, AnswerIndex: 0},
			{Prompt: "Arctic foxes turn white in?", Choices: []string{"Summer", "Winter"}, AnswerIndex: 1},
			{Prompt: "Walrus tusks are?", Choices: []string{"Teeth", "Bone", "Horn"}, AnswerIndex: 0},
		},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert quiz: %v", err)
	}
	return quiz
}

func newTestQuizService(repo *stubQuizRepo, results *stubResultRepo, badges *stubBadgeRepo, board *stubLeaderboard) *QuizService {
	return NewQuizService(repo, results, badges, board, zerolog.Nop())
}

func TestQuizService_Submit_Scoring(t *testing.T) {
	repo := newStubQuizRepo()
	results := &stubResultRepo{}
	board := newStubLeaderboard()
	svc := newTestQuizService(repo, results, newStubBadgeRepo(), board)
	quiz := newTestQuiz(t, repo)

	submission, err := svc.Submit(context.Background(), "acc-1", quiz.ID, []int{0, 0, 0})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if submission.Result.Score != 2 {
		t.Fatalf("expected score 2, got %d", submission.Result.Score)
	}
	if submission.Result.Total != 3 {
		t.Fatalf("expected total 3, got %d", submission.Result.Total)
	}
	if submission.Difficulty != domain.DifficultyEasy {
		t.Fatalf("unexpected difficulty %q", submission.Difficulty)
	}
	if board.scores["acc-1"] != 2 {
		t.Fatalf("leaderboard not updated, got %d", board.scores["acc-1"])
	}
}

func TestQuizService_Submit_TooManyAnswers(t *testing.T) {
	repo := newStubQuizRepo()
	svc := newTestQuizService(repo, &stubResultRepo{}, newStubBadgeRepo(), newStubLeaderboard())
	quiz := newTestQuiz(t, repo)

	if _, err := svc.Submit(context.Background(), "acc-1", quiz.ID, []int{0, 1, 0, 2}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestQuizService_Submit_UnknownQuiz(t *testing.T) {
	svc := newTestQuizService(newStubQuizRepo(), &stubResultRepo{}, newStubBadgeRepo(), newStubLeaderboard())

	if _, err := svc.Submit(context.Background(), "acc-1", "missing", []int{0}); err != domain.ErrQuizNotFound {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestQuizService_Submit_AwardsFirstQuizBadge(t *testing.T) {
	repo := newStubQuizRepo()
	badges := newStubBadgeRepo()
	svc := newTestQuizService(repo, &stubResultRepo{}, badges, newStubLeaderboard())
	quiz := newTestQuiz(t, repo)

	submission, err := svc.Submit(context.Background(), "acc-1", quiz.ID, []int{0, 0, 0})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if !hasBadge(submission.AwardedBadges, domain.BadgeFirstQuiz) {
		t.Fatalf("expected first_quiz badge, got %+v", submission.AwardedBadges)
	}

	// Second submission must not re-award it.
	submission, err = svc.Submit(context.Background(), "acc-1", quiz.ID, []int{0, 0, 0})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if hasBadge(submission.AwardedBadges, domain.BadgeFirstQuiz) {
		t.Fatalf("first_quiz badge awarded twice")
	}
}

func TestQuizService_Submit_AwardsPerfectScoreBadge(t *testing.T) {
	repo := newStubQuizRepo()
	svc := newTestQuizService(repo, &stubResultRepo{}, newStubBadgeRepo(), newStubLeaderboard())
	quiz := newTestQuiz(t, repo)

	submission, err := svc.Submit(context.Background(), "acc-1", quiz.ID, []int{0, 1, 0})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !hasBadge(submission.AwardedBadges, domain.BadgePerfectScore) {
		t.Fatalf("expected perfect_score badge for a full score")
	}
}

func TestQuizService_Submit_AwardsTenQuizzesBadge(t *testing.T) {
	repo := newStubQuizRepo()
	results := &stubResultRepo{}
	svc := newTestQuizService(repo, results, newStubBadgeRepo(), newStubLeaderboard())
	quiz := newTestQuiz(t, repo)

	var last *ports.SubmissionResult
	for i := 0; i < 10; i++ {
		var err error
		last, err = svc.Submit(context.Background(), "acc-1", quiz.ID, []int{0})
		if err != nil {
			t.Fatalf("submit %d failed: %v", i+1, err)
		}
	}
	if !hasBadge(last.AwardedBadges, domain.BadgeTenQuizzes) {
		t.Fatalf("expected ten_quizzes badge on 10th submission")
	}
}

func TestQuizService_Create_Validation(t *testing.T) {
	svc := newTestQuizService(newStubQuizRepo(), &stubResultRepo{}, newStubBadgeRepo(), newStubLeaderboard())

	if _, err := svc.Create(context.Background(), ports.QuizInput{Title: "Empty"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for quiz without questions, got %v", err)
	}

	_, err := svc.Create(context.Background(), ports.QuizInput{
		Title:      "Bad answer index",
		Difficulty: domain.DifficultyEasy,
		Questions: []ports.QuestionInput{
			{Prompt: "?", Choices: []string{"a", "b"}, AnswerIndex: 5},
		},
	})
	if err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for out-of-range answer, got %v", err)
	}
}

func hasBadge(badges []domain.Badge, code string) bool {
	for _, b := range badges {
		if b.Code == code {
			return true
		}
	}
	return false
}
