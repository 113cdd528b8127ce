package ports

import (
	"context"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
)

// QuestionInput is one multiple-choice question in a quiz definition.
type QuestionInput struct {
	Prompt      string
	Choices     []string
	AnswerIndex int
	Explanation string
}

// QuizInput carries the fields required to create a quiz.
type QuizInput struct {
	Title      string
	AnimalID   string
	Difficulty string
	Questions  []QuestionInput
}

// SubmissionResult is the outcome of scoring one quiz submission.
type SubmissionResult struct {
	Result        *domain.QuizResult
	Difficulty    string
	AwardedBadges []domain.Badge
}

type QuizService interface {
	List(ctx context.Context, page ListPage) ([]domain.Quiz, int64, error)
	Get(ctx context.Context, id string) (*domain.Quiz, error)
	Create(ctx context.Context, input QuizInput) (*domain.Quiz, error)
	Delete(ctx context.Context, id string) error
	Submit(ctx context.Context, accountID, quizID string, answers []int) (*SubmissionResult, error)
}

type QuizRepository interface {
	List(ctx context.Context, page ListPage) ([]domain.Quiz, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Quiz, error)
	Insert(ctx context.Context, quiz *domain.Quiz) (*domain.Quiz, error)
	Delete(ctx context.Context, id string) error
}

// ResultRepository persists scored quiz submissions.
type ResultRepository interface {
	Insert(ctx context.Context, result *domain.QuizResult) (*domain.QuizResult, error)
	CountByAccount(ctx context.Context, accountID string) (int64, error)
	DeleteByAccount(ctx context.Context, accountID string) error
}
