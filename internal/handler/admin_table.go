package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// CreateTable handles POST /v1/admin/tables. The owning zone must exist
// and the table number must be unique within it; a clash yields 409.
func (h *AdminHandler) CreateTable(c echo.Context) error {
	var body struct {
		Number   string `json:"number"`
		Capacity int    `json:"capacity"`
		ZoneID   string `json:"zone_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Number) == "" || strings.TrimSpace(body.ZoneID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "number and zone_id are required"})
	}
	if body.Capacity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be a positive integer"})
	}
	ctx := c.Request().Context()
	if _, err := h.ZoneRepo.GetByID(ctx, body.ZoneID); err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "zone not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify zone"})
	}
	rec, err := h.TableRepo.Create(ctx, body.Number, body.Capacity, body.ZoneID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateTableNumber):
			return c.JSON(http.StatusConflict, echo.Map{"error": "a table with that number already exists in this zone"})
		case errors.Is(err, model.ErrInvalidRecord):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create table"})
		}
	}
	h.invalidate(c)
	return c.JSON(http.StatusCreated, rec)
}

// UpdateTable handles PUT /v1/admin/tables/:id. Renumbering a table to
// its own current number is allowed; colliding with a sibling is not.
func (h *AdminHandler) UpdateTable(c echo.Context) error {
	id := c.Param("id")
	var body struct {
		Number   string `json:"number"`
		Capacity int    `json:"capacity"`
		ZoneID   string `json:"zone_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Number) == "" || strings.TrimSpace(body.ZoneID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "number and zone_id are required"})
	}
	if body.Capacity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be a positive integer"})
	}
	ctx := c.Request().Context()
	if _, err := h.ZoneRepo.GetByID(ctx, body.ZoneID); err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "zone not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify zone"})
	}
	rec, err := h.TableRepo.Update(ctx, id, body.Number, body.Capacity, body.ZoneID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTableNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		case errors.Is(err, repository.ErrDuplicateTableNumber):
			return c.JSON(http.StatusConflict, echo.Map{"error": "a table with that number already exists in this zone"})
		case errors.Is(err, model.ErrInvalidRecord):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update table"})
		}
	}
	h.invalidate(c)
	return c.JSON(http.StatusOK, rec)
}
