package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/restaurant-table-reservation/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/restaurant-table-reservation/internal/middleware" // import middleware for JWT authentication
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler. This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the operator login endpoint and the protected
// /v1/me route. Unauthenticated operations live under /v1/auth, while
// protected endpoints apply the JWTAuth middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Login does not require an existing session; it exchanges credentials
	// for an access token.
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)

	// Routes on this group require a valid access token.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	// Return the authenticated operator's identity.
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse and booking
// endpoints. These routes serve guests and apply no JWT middleware; the
// optional cache middleware is applied to the read-only browse routes so
// repeated catalogue lookups are served from the response cache.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, b *handler.BookingHandler, cache echo.MiddlewareFunc) {
	browse := e.Group("")
	if cache != nil {
		browse.Use(cache)
	}
	// Expose the list of all restaurants.
	browse.GET("/v1/restaurants", p.ListRestaurants)
	// List zones of a specific restaurant.
	browse.GET("/v1/restaurants/:id/zones", p.ListZonesByRestaurant)
	// List tables inside a specific zone.
	browse.GET("/v1/zones/:id/tables", p.ListTablesByZone)
	// View the bookable time slots configured for a zone.
	browse.GET("/v1/zones/:id/schedule", p.GetZoneSchedule)
	// View the slots still bookable on a given date; on today's date slots
	// that have already passed are omitted.
	browse.GET("/v1/zones/:id/available-times", p.AvailableTimes)
	// Reservation listing supports restaurant_id, zone_id and date filters.
	browse.GET("/v1/reservations", b.ListReservations)

	// Booking is a mutation and must never be served from cache.
	e.POST("/v1/reservations", b.CreateReservation)
}

// RegisterAdmin registers the catalogue management endpoints. Every route
// in this group requires a valid operator token.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))

	// Restaurants.
	g.POST("/restaurants", a.CreateRestaurant)
	g.PUT("/restaurants/:id", a.UpdateRestaurant)
	g.DELETE("/restaurants/:id", a.DeleteRestaurant)

	// Zones.
	g.POST("/zones", a.CreateZone)
	g.PUT("/zones/:id", a.UpdateZone)
	g.DELETE("/zones/:id", a.DeleteZone)
	// Replace a zone's bookable slots in one call.
	g.PUT("/zones/:id/schedule", a.UpsertSchedule)

	// Tables.
	g.POST("/tables", a.CreateTable)
	g.PUT("/tables/:id", a.UpdateTable)
	g.DELETE("/tables/:id", a.DeleteTable)

	// Cancellation is operator-only; guests have no account to prove a
	// reservation is theirs.
	res := e.Group("/v1/reservations")
	res.Use(middleware.JWTAuth(jwtSecret))
	res.DELETE("/:id", a.DeleteReservation)
}
