package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wildquiz/wildquiz-api/internal/core/ports"
)

type AnimalHandler struct {
	animals ports.AnimalService
}

func NewAnimalHandler(animals ports.AnimalService) *AnimalHandler {
	return &AnimalHandler{animals: animals}
}

// List returns a page of animal profiles.
//
// @Summary      List animals
// @Tags         animals
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listAnimalsResponse
// @Router       /animals [get]
func (h *AnimalHandler) List(c echo.Context) error {
	page := queryPage(c)

	list, err := h.animals.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listAnimalsResponse{
		Data:       list.Animals,
		Pagination: paginate(list.Total, page.Page, page.Limit),
	})
}

// Get returns one animal profile.
//
// @Summary      Get an animal
// @Tags         animals
// @Produce      json
// @Param        id   path      string  true  "Animal id"
// @Success      200  {object}  domain.Animal
// @Failure      404  {object}  errorResponse
// @Router       /animals/{id} [get]
func (h *AnimalHandler) Get(c echo.Context) error {
	animal, err := h.animals.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animal)
}

// Create adds a new animal profile. Admin only.
//
// @Summary      Create an animal
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      animalRequest  true  "Animal profile"
// @Success      201   {object}  domain.Animal
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/animals [post]
func (h *AnimalHandler) Create(c echo.Context) error {
	var req animalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	animal, err := h.animals.Create(c.Request().Context(), animalInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, animal)
}

// Update replaces an animal profile's editable fields. Admin only.
//
// @Summary      Update an animal
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Animal id"
// @Param        body  body      animalRequest  true  "Animal profile"
// @Success      200   {object}  domain.Animal
// @Failure      404   {object}  errorResponse
// @Router       /admin/animals/{id} [put]
func (h *AnimalHandler) Update(c echo.Context) error {
	var req animalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	animal, err := h.animals.Update(c.Request().Context(), c.Param("id"), animalInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animal)
}

// Delete removes an animal profile. Admin only.
//
// @Summary      Delete an animal
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Animal id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /admin/animals/{id} [delete]
func (h *AnimalHandler) Delete(c echo.Context) error {
	if err := h.animals.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "animal deleted"})
}

func animalInput(req animalRequest) ports.AnimalInput {
	return ports.AnimalInput{
		Name:               req.Name,
		Species:            req.Species,
		Habitat:            req.Habitat,
		Diet:               req.Diet,
		ConservationStatus: req.ConservationStatus,
		FunFacts:           req.FunFacts,
		ImageURL:           req.ImageURL,
	}
}

// queryPage reads ?page and ?limit with the same bounds the services enforce,
// so the pagination echoed in responses matches what was actually queried.
func queryPage(c echo.Context) ports.ListPage {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return ports.ListPage{Page: page, Limit: limit}
}
