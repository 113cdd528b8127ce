package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
	"github.com/wildquiz/wildquiz-api/internal/core/ports"
)

type BadgeHandler struct {
	badges ports.BadgeRepository
}

func NewBadgeHandler(badges ports.BadgeRepository) *BadgeHandler {
	return &BadgeHandler{badges: badges}
}

// earnedBadge is a catalog badge plus when the account earned it.
type earnedBadge struct {
	domain.Badge
	AwardedAt time.Time `json:"awarded_at"`
}

// Catalog returns every badge the platform can award.
//
// @Summary      List badge catalog
// @Tags         badges
// @Produce      json
// @Success      200  {array}  domain.Badge
// @Router       /badges [get]
func (h *BadgeHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.BadgeCatalog)
}

// Mine returns the badges the authenticated account has earned.
//
// @Summary      List my badges
// @Tags         badges
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  earnedBadge
// @Router       /profile/badges [get]
func (h *BadgeHandler) Mine(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	awarded, err := h.badges.ListByAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	catalog := make(map[string]domain.Badge, len(domain.BadgeCatalog))
	for _, b := range domain.BadgeCatalog {
		catalog[b.Code] = b
	}

	earned := make([]earnedBadge, 0, len(awarded))
	for _, a := range awarded {
		badge, ok := catalog[a.BadgeCode]
		if !ok {
			// Badge retired from the catalog; skip rather than render a shell.
			continue
		}
		earned = append(earned, earnedBadge{
			Badge:     badge,
			AwardedAt: a.AwardedAt,
		})
	}
	return c.JSON(http.StatusOK, earned)
}
