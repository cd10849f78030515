package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// CreateRestaurant handles POST /v1/admin/restaurants. The body carries a
// single required name field; the id is generated server-side.
func (h *AdminHandler) CreateRestaurant(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	rec, err := h.RestaurantRepo.Create(c.Request().Context(), body.Name)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRecord) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create restaurant"})
	}
	h.invalidate(c)
	return c.JSON(http.StatusCreated, rec)
}

// UpdateRestaurant handles PUT /v1/admin/restaurants/:id. The id is
// preserved; only the name changes.
func (h *AdminHandler) UpdateRestaurant(c echo.Context) error {
	id := c.Param("id")
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	rec, err := h.RestaurantRepo.Update(c.Request().Context(), id, body.Name)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRestaurantNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		case errors.Is(err, model.ErrInvalidRecord):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update restaurant"})
		}
	}
	h.invalidate(c)
	return c.JSON(http.StatusOK, rec)
}
