package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
	"github.com/iliyamo/restaurant-table-reservation/internal/handler"
	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
	"github.com/iliyamo/restaurant-table-reservation/internal/router"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
	"github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

const testJWTSecret = "test-secret"

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// newTestApp seeds a memory store with one restaurant, one zone, three
// tables and an evening schedule, and wires the full route table over it.
func newTestApp(t *testing.T) (*echo.Echo, store.EntityStore) {
	t.Helper()
	st := store.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, store.KindRestaurants, []model.Restaurant{
		{ID: "r1", Name: "La Terraza"},
	}))
	require.NoError(t, st.Save(ctx, store.KindZones, []model.Zone{
		{ID: "z1", Name: "Interior", RestaurantID: "r1"},
	}))
	require.NoError(t, st.Save(ctx, store.KindTables, []model.Table{
		{ID: "t2", Number: "1", Capacity: 2, ZoneID: "z1"},
		{ID: "t4", Number: "2", Capacity: 4, ZoneID: "z1"},
		{ID: "t6", Number: "3", Capacity: 6, ZoneID: "z1"},
	}))
	require.NoError(t, st.Save(ctx, store.KindSchedules, []model.ScheduleEntry{
		{ZoneID: "z1", TimeSlots: []string{"19:00", "20:00", "21:00"}},
	}))

	restaurantRepo := repository.NewRestaurantRepo(st)
	zoneRepo := repository.NewZoneRepo(st)
	tableRepo := repository.NewTableRepo(st)
	scheduleRepo := repository.NewScheduleRepo(st)
	reservationRepo := repository.NewReservationRepo(st)
	cascader := repository.NewCascader(st)
	svc := booking.NewService(st)

	hash, err := utils.HashPassword("hunter2", 4)
	require.NoError(t, err)
	authHandler := handler.NewAuthHandler("admin@example.com", hash, testJWTSecret, 15)
	adminHandler := handler.NewAdminHandler(restaurantRepo, zoneRepo, tableRepo, scheduleRepo, reservationRepo, cascader)
	publicHandler := handler.NewPublicHandler(restaurantRepo, zoneRepo, tableRepo, scheduleRepo, svc)
	bookingHandler := handler.NewBookingHandler(svc, restaurantRepo, zoneRepo, reservationRepo)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, testJWTSecret)
	router.RegisterPublic(e, publicHandler, bookingHandler, nil)
	router.RegisterAdmin(e, adminHandler, testJWTSecret)
	return e, st
}

func doJSON(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	token, _ := resp["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthz(t *testing.T) {
	e, _ := newTestApp(t)
	rec := doJSON(e, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	e, _ := newTestApp(t)
	rec := doJSON(e, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	e, _ := newTestApp(t)
	rec := doJSON(e, http.MethodPost, "/v1/admin/restaurants", "", map[string]string{"name": "Nuevo"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBrowseEndpoints(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/v1/restaurants", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]model.Restaurant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp["items"], 1)
	assert.Equal(t, "La Terraza", resp["items"][0].Name)

	rec = doJSON(e, http.MethodGet, "/v1/restaurants/r1/zones", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/restaurants/nope/zones", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/zones/z1/tables", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/zones/z1/schedule", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAvailableTimes(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/v1/zones/z1/available-times?date=2027-05-01", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"19:00", "20:00", "21:00"}, resp["items"])

	rec = doJSON(e, http.MethodGet, "/v1/zones/z1/available-times", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/zones/nope/available-times?date=2027-05-01", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateReservationEndToEnd(t *testing.T) {
	e, st := newTestApp(t)

	body := map[string]any{
		"restaurant_id": "r1",
		"zone_id":       "z1",
		"date":          "2027-05-01",
		"time":          "20",
		"party_size":    4,
		"name":          "Ana",
		"surname":       "Garcia",
		"phone":         "600123123",
	}
	rec := doJSON(e, http.MethodPost, "/v1/reservations", "", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Reservation model.Reservation `json:"reservation"`
		TableNumber string            `json:"table_number"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2", resp.TableNumber)
	assert.Equal(t, "20:00", resp.Reservation.Time)

	var stored []model.Reservation
	require.NoError(t, st.Load(context.Background(), store.KindReservations, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "t4", stored[0].TableID)
}

func TestCreateReservationValidationErrors(t *testing.T) {
	e, _ := newTestApp(t)

	// Missing fields.
	rec := doJSON(e, http.MethodPost, "/v1/reservations", "", map[string]any{"zone_id": "z1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Slot outside the zone's schedule.
	rec = doJSON(e, http.MethodPost, "/v1/reservations", "", map[string]any{
		"restaurant_id": "r1", "zone_id": "z1", "date": "2027-05-01", "time": "16:00",
		"party_size": 2, "name": "Ana", "surname": "Garcia", "phone": "600123123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Party larger than any table.
	rec = doJSON(e, http.MethodPost, "/v1/reservations", "", map[string]any{
		"restaurant_id": "r1", "zone_id": "z1", "date": "2027-05-01", "time": "20:00",
		"party_size": 12, "name": "Ana", "surname": "Garcia", "phone": "600123123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListReservationsWithFilters(t *testing.T) {
	e, _ := newTestApp(t)

	body := map[string]any{
		"restaurant_id": "r1", "zone_id": "z1", "date": "2027-05-01", "time": "20:00",
		"party_size": 2, "name": "Ana", "surname": "Garcia", "phone": "600123123",
	}
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/v1/reservations", "", body).Code)

	rec := doJSON(e, http.MethodGet, "/v1/reservations?restaurant_id=r1&date=2027-05-01", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp["items"], 1)

	rec = doJSON(e, http.MethodGet, "/v1/reservations?date=1999-01-01", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp["items"])
}

func TestAdminCatalogueFlow(t *testing.T) {
	e, _ := newTestApp(t)
	token := login(t, e)

	// Create a restaurant, a zone inside it, a table and a schedule.
	rec := doJSON(e, http.MethodPost, "/v1/admin/restaurants", token, map[string]string{"name": "El Patio"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var restaurant model.Restaurant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restaurant))

	rec = doJSON(e, http.MethodPost, "/v1/admin/zones", token, map[string]string{
		"name": "Salon", "restaurant_id": restaurant.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var zone model.Zone
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &zone))

	rec = doJSON(e, http.MethodPost, "/v1/admin/tables", token, map[string]any{
		"number": "1", "capacity": 4, "zone_id": zone.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Duplicate number in the same zone is a conflict.
	rec = doJSON(e, http.MethodPost, "/v1/admin/tables", token, map[string]any{
		"number": " 1 ", "capacity": 2, "zone_id": zone.ID,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Schedule accepts the comma-separated form.
	rec = doJSON(e, http.MethodPut, "/v1/admin/zones/"+zone.ID+"/schedule", token, map[string]string{
		"time_slots": "19:00, 20:00",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var entry model.ScheduleEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, []string{"19:00", "20:00"}, entry.TimeSlots)
}

func TestAdminDeleteRestaurantCascades(t *testing.T) {
	e, st := newTestApp(t)
	token := login(t, e)

	// Book a table so the cascade has a reservation to remove.
	body := map[string]any{
		"restaurant_id": "r1", "zone_id": "z1", "date": "2027-05-01", "time": "20:00",
		"party_size": 2, "name": "Ana", "surname": "Garcia", "phone": "600123123",
	}
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/v1/reservations", "", body).Code)

	rec := doJSON(e, http.MethodDelete, "/v1/admin/restaurants/r1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Deleted repository.Summary `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, repository.Summary{Zones: 1, Tables: 3, Schedules: 1, Reservations: 1}, resp.Deleted)

	var reservations []model.Reservation
	require.NoError(t, st.Load(context.Background(), store.KindReservations, &reservations))
	assert.Empty(t, reservations)

	rec = doJSON(e, http.MethodDelete, "/v1/admin/restaurants/r1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDeleteReservation(t *testing.T) {
	e, _ := newTestApp(t)
	token := login(t, e)

	body := map[string]any{
		"restaurant_id": "r1", "zone_id": "z1", "date": "2027-05-01", "time": "20:00",
		"party_size": 2, "name": "Ana", "surname": "Garcia", "phone": "600123123",
	}
	rec := doJSON(e, http.MethodPost, "/v1/reservations", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Reservation model.Reservation `json:"reservation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Cancellation requires the operator token.
	rec = doJSON(e, http.MethodDelete, "/v1/reservations/"+created.Reservation.ID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/v1/reservations/"+created.Reservation.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/v1/reservations/"+created.Reservation.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
