// Package handler defines HTTP handlers for the reservation service. The
// admin surface covers restaurant, zone, table and schedule management
// plus the cascading deletions; the public surface covers browsing and
// the booking operation itself.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// AdminHandler bundles the repositories and the cascade manager used by
// the back-office endpoints. Invalidate, when set, drops the public
// response cache after a mutation; it is nil when caching is disabled.
type AdminHandler struct {
	RestaurantRepo  *repository.RestaurantRepo
	ZoneRepo        *repository.ZoneRepo
	TableRepo       *repository.TableRepo
	ScheduleRepo    *repository.ScheduleRepo
	ReservationRepo *repository.ReservationRepo
	Cascader        *repository.Cascader
	Invalidate      func(echo.Context)
}

// NewAdminHandler constructs an AdminHandler and panics if any repository
// is nil.
func NewAdminHandler(
	restaurantRepo *repository.RestaurantRepo,
	zoneRepo *repository.ZoneRepo,
	tableRepo *repository.TableRepo,
	scheduleRepo *repository.ScheduleRepo,
	reservationRepo *repository.ReservationRepo,
	cascader *repository.Cascader,
) *AdminHandler {
	if restaurantRepo == nil || zoneRepo == nil || tableRepo == nil || scheduleRepo == nil || reservationRepo == nil || cascader == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{
		RestaurantRepo:  restaurantRepo,
		ZoneRepo:        zoneRepo,
		TableRepo:       tableRepo,
		ScheduleRepo:    scheduleRepo,
		ReservationRepo: reservationRepo,
		Cascader:        cascader,
	}
}

// invalidate drops the public response cache when a hook is configured.
func (h *AdminHandler) invalidate(c echo.Context) {
	if h.Invalidate != nil {
		h.Invalidate(c)
	}
}
