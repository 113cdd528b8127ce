package handler

import "github.com/wildquiz/wildquiz-api/internal/core/domain"

type questionRequest struct {
	Prompt      string   `json:"prompt"       validate:"required,max=500"`
	Choices     []string `json:"choices"      validate:"required,min=2,max=6,dive,required,max=200"`
	AnswerIndex int      `json:"answer_index" validate:"gte=0"`
	Explanation string   `json:"explanation"  validate:"omitempty,max=500"`
}

type createQuizRequest struct {
	Title      string            `json:"title"      validate:"required,min=2,max=150"`
	AnimalID   string            `json:"animal_id"  validate:"omitempty"`
	Difficulty string            `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Questions  []questionRequest `json:"questions"  validate:"required,min=1,max=50,dive"`
}

type submitQuizRequest struct {
	Answers []int `json:"answers" validate:"required,min=1"`
}

// quizView is the quiz shape served to players: answer indexes and
// explanations are withheld until a submission is scored.
type quizView struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	AnimalID      string         `json:"animal_id,omitempty"`
	Difficulty    string         `json:"difficulty"`
	QuestionCount int            `json:"question_count"`
	Questions     []questionView `json:"questions,omitempty"`
}

type questionView struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

type submissionResponse struct {
	Result        *domain.QuizResult `json:"result"`
	AwardedBadges []domain.Badge     `json:"awarded_badges,omitempty"`
}

type listQuizzesResponse struct {
	Data       []quizView         `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toQuizView(q *domain.Quiz, includeQuestions bool) quizView {
	view := quizView{
		ID:            q.ID,
		Title:         q.Title,
		AnimalID:      q.AnimalID,
		Difficulty:    q.Difficulty,
		QuestionCount: len(q.Questions),
	}
	if includeQuestions {
		view.Questions = make([]questionView, 0, len(q.Questions))
		for _, question := range q.Questions {
			view.Questions = append(view.Questions, questionView{
				Prompt:  question.Prompt,
				Choices: question.Choices,
			})
		}
	}
	return view
}
