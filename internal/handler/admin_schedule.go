package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// UpsertSchedule handles PUT /v1/admin/zones/:id/schedule. The time_slots
// field accepts either a JSON array of strings or a single comma-separated
// string; both forms end up as the same trimmed slot list.
func (h *AdminHandler) UpsertSchedule(c echo.Context) error {
	zoneID := c.Param("id")
	var body struct {
		TimeSlots json.RawMessage `json:"time_slots"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	slots, err := parseTimeSlots(body.TimeSlots)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "time_slots must be an array of strings or a comma-separated string"})
	}
	if len(slots) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "time_slots must contain at least one slot"})
	}
	ctx := c.Request().Context()
	if _, err := h.ZoneRepo.GetByID(ctx, zoneID); err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "zone not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify zone"})
	}
	rec, err := h.ScheduleRepo.Upsert(ctx, zoneID, slots)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRecord) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save schedule"})
	}
	h.invalidate(c)
	return c.JSON(http.StatusOK, rec)
}

// parseTimeSlots decodes the flexible time_slots payload. A JSON array is
// taken as-is; a JSON string is split on commas.
func parseTimeSlots(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var joined string
	if err := json.Unmarshal(raw, &joined); err != nil {
		return nil, err
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
