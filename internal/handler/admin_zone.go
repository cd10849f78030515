package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// CreateZone handles POST /v1/admin/zones. The owning restaurant must
// exist; zones cannot be orphaned at creation time.
func (h *AdminHandler) CreateZone(c echo.Context) error {
	var body struct {
		Name         string `json:"name"`
		RestaurantID string `json:"restaurant_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.RestaurantID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and restaurant_id are required"})
	}
	ctx := c.Request().Context()
	if _, err := h.RestaurantRepo.GetByID(ctx, body.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify restaurant"})
	}
	rec, err := h.ZoneRepo.Create(ctx, body.Name, body.RestaurantID)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRecord) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create zone"})
	}
	h.invalidate(c)
	return c.JSON(http.StatusCreated, rec)
}

// UpdateZone handles PUT /v1/admin/zones/:id. The zone may be renamed or
// moved to another restaurant; the target restaurant must exist.
func (h *AdminHandler) UpdateZone(c echo.Context) error {
	id := c.Param("id")
	var body struct {
		Name         string `json:"name"`
		RestaurantID string `json:"restaurant_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.RestaurantID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and restaurant_id are required"})
	}
	ctx := c.Request().Context()
	if _, err := h.RestaurantRepo.GetByID(ctx, body.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify restaurant"})
	}
	rec, err := h.ZoneRepo.Update(ctx, id, body.Name, body.RestaurantID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrZoneNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "zone not found"})
		case errors.Is(err, model.ErrInvalidRecord):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update zone"})
		}
	}
	h.invalidate(c)
	return c.JSON(http.StatusOK, rec)
}
