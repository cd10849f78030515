package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
	"github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

// DeleteRestaurant handles DELETE /v1/admin/restaurants/:id. The cascade
// runs to completion even when individual save steps fail; a partial
// cascade is reported as a warning alongside what was removed, since the
// record itself is already gone.
func (h *AdminHandler) DeleteRestaurant(c echo.Context) error {
	sum, err := h.Cascader.DeleteRestaurant(c.Request().Context(), c.Param("id"))
	return h.cascadeResponse(c, "restaurant", repository.ErrRestaurantNotFound, sum, err)
}

// DeleteZone handles DELETE /v1/admin/zones/:id.
func (h *AdminHandler) DeleteZone(c echo.Context) error {
	sum, err := h.Cascader.DeleteZone(c.Request().Context(), c.Param("id"))
	return h.cascadeResponse(c, "zone", repository.ErrZoneNotFound, sum, err)
}

// DeleteTable handles DELETE /v1/admin/tables/:id.
func (h *AdminHandler) DeleteTable(c echo.Context) error {
	sum, err := h.Cascader.DeleteTable(c.Request().Context(), c.Param("id"))
	return h.cascadeResponse(c, "table", repository.ErrTableNotFound, sum, err)
}

// DeleteReservation handles DELETE /v1/reservations/:id. A reservation has
// no dependents, so plain removal suffices.
func (h *AdminHandler) DeleteReservation(c echo.Context) error {
	err := h.ReservationRepo.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete reservation"})
	}
	h.invalidate(c)
	return c.NoContent(http.StatusNoContent)
}

// cascadeResponse maps a cascade outcome onto the wire. Unknown ids yield
// 404. A *CascadeError still yields 200 with the partial summary and a
// warning, because the deletions that did persist cannot be taken back.
func (h *AdminHandler) cascadeResponse(c echo.Context, entity string, notFound error, sum repository.Summary, err error) error {
	if err != nil {
		if errors.Is(err, notFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": entity + " not found"})
		}
		var cerr *repository.CascadeError
		if errors.As(err, &cerr) {
			utils.ErrorLogger.WithField("entity", entity).Warn(cerr.Error())
			h.invalidate(c)
			return c.JSON(http.StatusOK, echo.Map{"deleted": sum, "warning": cerr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete " + entity})
	}
	h.invalidate(c)
	return c.JSON(http.StatusOK, echo.Map{"deleted": sum})
}
