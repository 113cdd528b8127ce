package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wildquiz/wildquiz-api/internal/api/metrics"
	"github.com/wildquiz/wildquiz-api/internal/core/ports"
)

type QuizHandler struct {
	quizzes ports.QuizService
}

func NewQuizHandler(quizzes ports.QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

// List returns a page of quizzes without their questions.
//
// @Summary      List quizzes
// @Tags         quizzes
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listQuizzesResponse
// @Router       /quizzes [get]
func (h *QuizHandler) List(c echo.Context) error {
	page := queryPage(c)

	quizzes, total, err := h.quizzes.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	views := make([]quizView, 0, len(quizzes))
	for i := range quizzes {
		views = append(views, toQuizView(&quizzes[i], false))
	}
	return c.JSON(http.StatusOK, listQuizzesResponse{
		Data:       views,
		Pagination: paginate(total, page.Page, page.Limit),
	})
}

// Get returns one quiz with its questions; answer keys are never included.
//
// @Summary      Get a quiz
// @Tags         quizzes
// @Produce      json
// @Param        id   path      string  true  "Quiz id"
// @Success      200  {object}  quizView
// @Failure      404  {object}  errorResponse
// @Router       /quizzes/{id} [get]
func (h *QuizHandler) Get(c echo.Context) error {
	quiz, err := h.quizzes.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuizView(quiz, true))
}

// Submit scores a quiz submission for the authenticated account.
//
// @Summary      Submit quiz answers
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Quiz id"
// @Param        body  body      submitQuizRequest  true  "Chosen answer indexes, in question order"
// @Success      201   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /quizzes/{id}/submissions [post]
func (h *QuizHandler) Submit(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req submitQuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	submission, err := h.quizzes.Submit(c.Request().Context(), accountID, c.Param("id"), req.Answers)
	if err != nil {
		return err
	}

	metrics.QuizSubmissionsTotal.WithLabelValues(submission.Difficulty).Inc()
	for _, badge := range submission.AwardedBadges {
		metrics.BadgesAwardedTotal.WithLabelValues(badge.Code).Inc()
	}

	return c.JSON(http.StatusCreated, submissionResponse{
		Result:        submission.Result,
		AwardedBadges: submission.AwardedBadges,
	})
}

// GetWithAnswers returns one quiz including answer indexes and explanations.
// Admin only; this is the read-back path for maintaining quiz content.
//
// @Summary      Get a quiz with its answer key
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Quiz id"
// @Success      200  {object}  domain.Quiz
// @Failure      404  {object}  errorResponse
// @Router       /admin/quizzes/{id} [get]
func (h *QuizHandler) GetWithAnswers(c echo.Context) error {
	quiz, err := h.quizzes.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quiz)
}

// Create adds a quiz. Admin only.
//
// @Summary      Create a quiz
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuizRequest  true  "Quiz definition"
// @Success      201   {object}  quizView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/quizzes [post]
func (h *QuizHandler) Create(c echo.Context) error {
	var req createQuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	questions := make([]ports.QuestionInput, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, ports.QuestionInput{
			Prompt:      q.Prompt,
			Choices:     q.Choices,
			AnswerIndex: q.AnswerIndex,
			Explanation: q.Explanation,
		})
	}

	quiz, err := h.quizzes.Create(c.Request().Context(), ports.QuizInput{
		Title:      req.Title,
		AnimalID:   req.AnimalID,
		Difficulty: req.Difficulty,
		Questions:  questions,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toQuizView(quiz, false))
}

// Delete removes a quiz. Admin only.
//
// @Summary      Delete a quiz
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Quiz id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /admin/quizzes/{id} [delete]
func (h *QuizHandler) Delete(c echo.Context) error {
	if err := h.quizzes.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "quiz deleted"})
}
