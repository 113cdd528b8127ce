package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wildquiz/wildquiz-api/internal/core/ports"
)

const defaultLeaderboardSize = 10

type LeaderboardHandler struct {
	leaderboard ports.Leaderboard
	accounts    ports.AccountRepository
}

func NewLeaderboardHandler(leaderboard ports.Leaderboard, accounts ports.AccountRepository) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, accounts: accounts}
}

type leaderboardRow struct {
	Rank        int64  `json:"rank"`
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	Score       int64  `json:"score"`
}

// Top returns the highest scoring accounts with display names resolved.
//
// @Summary      Leaderboard
// @Tags         leaderboard
// @Produce      json
// @Param        limit  query    int  false  "Number of rows (max 100)"
// @Success      200    {array}  leaderboardRow
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) Top(c echo.Context) error {
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if limit > 100 {
		limit = 100
	}

	entries, err := h.leaderboard.Top(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	rows := make([]leaderboardRow, 0, len(entries))
	for _, entry := range entries {
		row := leaderboardRow{Rank: entry.Rank, AccountID: entry.AccountID, Score: entry.Score}
		if account, err := h.accounts.FindByID(c.Request().Context(), entry.AccountID); err == nil {
			row.DisplayName = account.DisplayName
		}
		rows = append(rows, row)
	}
	return c.JSON(http.StatusOK, rows)
}

// Me returns the authenticated account's rank and score.
//
// @Summary      My leaderboard position
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  leaderboardRow
// @Failure      404  {object}  errorResponse
// @Router       /leaderboard/me [get]
func (h *LeaderboardHandler) Me(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	entry, err := h.leaderboard.Rank(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	if entry == nil {
		// No quizzes taken yet; an empty position, not an error.
		return c.JSON(http.StatusOK, leaderboardRow{AccountID: accountID})
	}

	row := leaderboardRow{Rank: entry.Rank, AccountID: entry.AccountID, Score: entry.Score}
	if account, err := h.accounts.FindByID(c.Request().Context(), accountID); err == nil {
		row.DisplayName = account.DisplayName
	}
	return c.JSON(http.StatusOK, row)
}
