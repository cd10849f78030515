package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
	"github.com/iliyamo/restaurant-table-reservation/internal/queue"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
	queue_publisher "github.com/iliyamo/restaurant-table-reservation/internal/service"
	"github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

// BookingHandler serves reservation creation and listing. Creation
// delegates the allocation to the booking service; the handler's job is
// binding, error mapping and the confirmation event.
type BookingHandler struct {
	Booking         *booking.Service
	RestaurantRepo  *repository.RestaurantRepo
	ZoneRepo        *repository.ZoneRepo
	ReservationRepo *repository.ReservationRepo
	Invalidate      func(echo.Context)
}

// NewBookingHandler wires the booking handler. Invalidate may be nil when
// no response cache is configured.
func NewBookingHandler(svc *booking.Service, rr *repository.RestaurantRepo, zr *repository.ZoneRepo, resr *repository.ReservationRepo) *BookingHandler {
	if svc == nil || rr == nil || zr == nil || resr == nil {
		panic("handler: NewBookingHandler called with nil dependency")
	}
	return &BookingHandler{Booking: svc, RestaurantRepo: rr, ZoneRepo: zr, ReservationRepo: resr}
}

// CreateReservation handles POST /v1/reservations. Validation failures map
// to 400, capacity exhaustion to 409. On success a confirmation event is
// published best-effort; a broker outage never fails a booking that has
// already been persisted.
func (h *BookingHandler) CreateReservation(c echo.Context) error {
	var req booking.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	res, table, err := h.Booking.Book(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrIncompleteSubmission),
			errors.Is(err, booking.ErrPastTimeSlot),
			errors.Is(err, booking.ErrSlotNotOffered):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, booking.ErrNoSuitableTable),
			errors.Is(err, booking.ErrZoneFullyBooked):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		default:
			utils.ErrorLogger.WithField("zone_id", req.ZoneID).Error("booking failed: ", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
		}
	}

	event := queue.ReservationConfirmedEvent{
		ReservationID: res.ID,
		TableNumber:   table.Number,
		Date:          res.Date,
		Time:          res.Time,
		PartySize:     res.PartySize,
		CustomerName:  strings.TrimSpace(res.Name + " " + res.Surname),
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if zone, zerr := h.ZoneRepo.GetByID(ctx, req.ZoneID); zerr == nil {
		event.ZoneName = zone.Name
		if rest, rerr := h.RestaurantRepo.GetByID(ctx, zone.RestaurantID); rerr == nil {
			event.RestaurantName = rest.Name
		}
	}
	if perr := queue_publisher.PublishReservationConfirmed(ctx, event); perr != nil {
		utils.ErrorLogger.Warn("reservation confirmed event not published: ", perr)
	}

	if h.Invalidate != nil {
		h.Invalidate(c)
	}
	return c.JSON(http.StatusCreated, echo.Map{"reservation": res, "table_number": table.Number})
}

// ListReservations handles GET /v1/reservations with optional
// restaurant_id, zone_id and date query filters.
func (h *BookingHandler) ListReservations(c echo.Context) error {
	items, err := h.ReservationRepo.ListFiltered(
		c.Request().Context(),
		strings.TrimSpace(c.QueryParam("restaurant_id")),
		strings.TrimSpace(c.QueryParam("zone_id")),
		strings.TrimSpace(c.QueryParam("date")),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
