package domain

import "time"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is a single multiple-choice question within a quiz.
type Question struct {
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation,omitempty"`
}

// Quiz groups questions about a single animal or topic.
type Quiz struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	AnimalID   string     `json:"animal_id,omitempty"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`
	CreatedAt  time.Time  `json:"created_at"`
}

// QuizResult records one scored submission by one account.
type QuizResult struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	QuizID    string    `json:"quiz_id"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Answers   []int     `json:"answers"`
	TakenAt   time.Time `json:"taken_at"`
}
