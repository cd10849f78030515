package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// PublicHandler serves the unauthenticated browsing surface: restaurants,
// their zones, zone tables, schedules and live availability.
type PublicHandler struct {
	RestaurantRepo *repository.RestaurantRepo
	ZoneRepo       *repository.ZoneRepo
	TableRepo      *repository.TableRepo
	ScheduleRepo   *repository.ScheduleRepo
	Booking        *booking.Service
}

// NewPublicHandler wires the public handler. All dependencies are
// required.
func NewPublicHandler(rr *repository.RestaurantRepo, zr *repository.ZoneRepo, tr *repository.TableRepo, sr *repository.ScheduleRepo, svc *booking.Service) *PublicHandler {
	if rr == nil || zr == nil || tr == nil || sr == nil || svc == nil {
		panic("handler: NewPublicHandler called with nil dependency")
	}
	return &PublicHandler{RestaurantRepo: rr, ZoneRepo: zr, TableRepo: tr, ScheduleRepo: sr, Booking: svc}
}

// ListRestaurants handles GET /v1/restaurants.
func (h *PublicHandler) ListRestaurants(c echo.Context) error {
	items, err := h.RestaurantRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list restaurants"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListZonesByRestaurant handles GET /v1/restaurants/:id/zones. An unknown
// restaurant yields 404 rather than an empty list.
func (h *PublicHandler) ListZonesByRestaurant(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	if _, err := h.RestaurantRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list zones"})
	}
	items, err := h.ZoneRepo.ListByRestaurant(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list zones"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListTablesByZone handles GET /v1/zones/:id/tables.
func (h *PublicHandler) ListTablesByZone(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	if _, err := h.ZoneRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "zone not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list tables"})
	}
	items, err := h.TableRepo.ListByZone(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list tables"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetZoneSchedule handles GET /v1/zones/:id/schedule.
func (h *PublicHandler) GetZoneSchedule(c echo.Context) error {
	id := c.Param("id")
	entry, err := h.ScheduleRepo.GetByZone(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "zone has no schedule"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load schedule"})
	}
	return c.JSON(http.StatusOK, entry)
}

// AvailableTimes handles GET /v1/zones/:id/available-times?date=YYYY-MM-DD.
// On today's date, slots that have already passed are omitted.
func (h *PublicHandler) AvailableTimes(c echo.Context) error {
	id := c.Param("id")
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date query parameter is required"})
	}
	ctx := c.Request().Context()
	if _, err := h.ZoneRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "zone not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load availability"})
	}
	slots, err := h.Booking.AvailableTimes(ctx, id, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load availability"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": slots})
}
