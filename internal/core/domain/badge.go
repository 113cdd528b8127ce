package domain

import "time"

// Badge codes awarded automatically on quiz submissions.
const (
	BadgeFirstQuiz    = "first_quiz"
	BadgePerfectScore = "perfect_score"
	BadgeTenQuizzes   = "ten_quizzes"
)

// Badge is a catalog entry describing an achievement.
type Badge struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// AwardedBadge links an account to a badge it has earned.
type AwardedBadge struct {
	AccountID string    `json:"account_id"`
	BadgeCode string    `json:"badge_code"`
	AwardedAt time.Time `json:"awarded_at"`
}

// BadgeCatalog is the built-in set of badges the platform can award.
// Stored code-side rather than in the database so awarding rules and
// descriptions stay in one place.
var BadgeCatalog = []Badge{
	{Code: BadgeFirstQuiz, Name: "First Steps", Description: "Completed your first quiz.", Icon: "paw"},
	{Code: BadgePerfectScore, Name: "Perfect Score", Description: "Answered every question in a quiz correctly.", Icon: "star"},
	{Code: BadgeTenQuizzes, Name: "Field Researcher", Description: "Completed ten quizzes.", Icon: "binoculars"},
}
