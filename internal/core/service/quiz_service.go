package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
	"github.com/wildquiz/wildquiz-api/internal/core/ports"
)

// QuizService implements quiz CRUD, submission scoring, badge awarding and
// leaderboard updates.
type QuizService struct {
	quizzes     ports.QuizRepository
	results     ports.ResultRepository
	badges      ports.BadgeRepository
	leaderboard ports.Leaderboard
	logger      zerolog.Logger
}

func NewQuizService(
	quizzes ports.QuizRepository,
	results ports.ResultRepository,
	badges ports.BadgeRepository,
	leaderboard ports.Leaderboard,
	logger zerolog.Logger,
) *QuizService {
	return &QuizService{
		quizzes:     quizzes,
		results:     results,
		badges:      badges,
		leaderboard: leaderboard,
		logger:      logger,
	}
}

func (s *QuizService) List(ctx context.Context, page ports.ListPage) ([]domain.Quiz, int64, error) {
	return s.quizzes.List(ctx, clampPage(page))
}

func (s *QuizService) Get(ctx context.Context, id string) (*domain.Quiz, error) {
	return s.quizzes.FindByID(ctx, id)
}

func (s *QuizService) Create(ctx context.Context, input ports.QuizInput) (*domain.Quiz, error) {
	if len(input.Questions) == 0 {
		return nil, domain.ErrInvalidInput
	}

	questions := make([]domain.Question, 0, len(input.Questions))
	for _, q := range input.Questions {
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
			return nil, domain.ErrInvalidInput
		}
		questions = append(questions, domain.Question{
			Prompt:      q.Prompt,
			Choices:     q.Choices,
			AnswerIndex: q.AnswerIndex,
			Explanation: q.Explanation,
		})
	}

	quiz := &domain.Quiz{
		Title:      input.Title,
		AnimalID:   input.AnimalID,
		Difficulty: input.Difficulty,
		Questions:  questions,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.quizzes.Insert(ctx, quiz)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("quiz_id", created.ID).Str("title", created.Title).Msg("quiz created")
	return created, nil
}

func (s *QuizService) Delete(ctx context.Context, id string) error {
	return s.quizzes.Delete(ctx, id)
}

// Submit scores one submission against the quiz answer key, persists the
// result, updates the leaderboard and awards any badges the submission earns.
// A short answer slice scores the answered prefix; extra answers are invalid.
func (s *QuizService) Submit(ctx context.Context, accountID, quizID string, answers []int) (*ports.SubmissionResult, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(answers) > len(quiz.Questions) {
		return nil, domain.ErrInvalidInput
	}

	score := 0
	for i, answer := range answers {
		if answer == quiz.Questions[i].AnswerIndex {
			score++
		}
	}

	result := &domain.QuizResult{
		AccountID: accountID,
		QuizID:    quizID,
		Score:     score,
		Total:     len(quiz.Questions),
		Answers:   answers,
		TakenAt:   time.Now().UTC(),
	}

	stored, err := s.results.Insert(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("store result: %w", err)
	}

	if err := s.leaderboard.AddScore(ctx, accountID, int64(score)); err != nil {
		// The result is already persisted; a ranking lag is acceptable.
		s.logger.Warn().Err(err).Str("account_id", accountID).Msg("leaderboard update failed")
	}

	awarded := s.awardBadges(ctx, accountID, stored)

	s.logger.Info().
		Str("account_id", accountID).
		Str("quiz_id", quizID).
		Int("score", score).
		Int("total", stored.Total).
		Msg("quiz submitted")

	return &ports.SubmissionResult{Result: stored, Difficulty: quiz.Difficulty, AwardedBadges: awarded}, nil
}

// awardBadges applies the badge rules for a fresh result. Award failures are
// logged and skipped; a missed badge is recoverable on the next submission.
func (s *QuizService) awardBadges(ctx context.Context, accountID string, result *domain.QuizResult) []domain.Badge {
	codes := []string{domain.BadgeFirstQuiz}

	if result.Total > 0 && result.Score == result.Total {
		codes = append(codes, domain.BadgePerfectScore)
	}
	if count, err := s.results.CountByAccount(ctx, accountID); err == nil && count >= 10 {
		codes = append(codes, domain.BadgeTenQuizzes)
	}

	var awarded []domain.Badge
	for _, code := range codes {
		fresh, err := s.badges.Award(ctx, accountID, code)
		if err != nil {
			s.logger.Warn().Err(err).Str("badge", code).Str("account_id", accountID).Msg("badge award failed")
			continue
		}
		if !fresh {
			continue
		}
		if badge, ok := badgeByCode(code); ok {
			awarded = append(awarded, badge)
		}
	}
	return awarded
}

func badgeByCode(code string) (domain.Badge, bool) {
	for _, b := range domain.BadgeCatalog {
		if b.Code == code {
			return b, true
		}
	}
	return domain.Badge{}, false
}
