package main // Entry point package

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
	"github.com/iliyamo/restaurant-table-reservation/internal/config"
	"github.com/iliyamo/restaurant-table-reservation/internal/database"
	"github.com/iliyamo/restaurant-table-reservation/internal/handler"
	"github.com/iliyamo/restaurant-table-reservation/internal/middleware"
	"github.com/iliyamo/restaurant-table-reservation/internal/queue"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
	"github.com/iliyamo/restaurant-table-reservation/internal/router"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
	"github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win

	utils.InitLogger()
	cfg := config.Load()
	rlCfg := config.LoadRateLimitConfig()
	cacheCfg := config.LoadCacheConfig()
	rdb := config.NewRedisClient()

	st := newEntityStore(cfg, rdb)

	restaurantRepo := repository.NewRestaurantRepo(st)
	zoneRepo := repository.NewZoneRepo(st)
	tableRepo := repository.NewTableRepo(st)
	scheduleRepo := repository.NewScheduleRepo(st)
	reservationRepo := repository.NewReservationRepo(st)
	cascader := repository.NewCascader(st)
	bookingSvc := booking.NewService(st)

	// The operator password is hashed once at startup so the plaintext
	// never leaves this function.
	adminHash, err := utils.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		utils.ErrorLogger.Fatal("hash admin password: ", err)
	}
	authHandler := handler.NewAuthHandler(cfg.AdminEmail, adminHash, cfg.JWTSecret, cfg.AccessTTLMin)

	invalidate := func(c echo.Context) { middleware.InvalidateCache(c, cacheCfg, rdb) }
	adminHandler := handler.NewAdminHandler(restaurantRepo, zoneRepo, tableRepo, scheduleRepo, reservationRepo, cascader)
	adminHandler.Invalidate = invalidate
	publicHandler := handler.NewPublicHandler(restaurantRepo, zoneRepo, tableRepo, scheduleRepo, bookingSvc)
	bookingHandler := handler.NewBookingHandler(bookingSvc, restaurantRepo, zoneRepo, reservationRepo)
	bookingHandler.Invalidate = invalidate

	e := echo.New()
	e.Use(middleware.NewTokenBucket(rlCfg, rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler, bookingHandler, middleware.ResponseCache(cacheCfg, rdb))
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)

	// The consumer keeps its own connection and reconnects on failure; a
	// broker outage degrades the confirmation log, not the API.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			utils.ErrorLogger.Warn("reservation consumer stopped: ", err)
		}
	}()

	addr := ":" + cfg.Port
	utils.InfoLogger.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)
	if err := e.Start(addr); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// newEntityStore selects the persistence backend from STORE_DRIVER. The
// memory store is the default and needs no external services; redis and
// mysql fail fast when their backing service is unreachable.
func newEntityStore(cfg config.Config, rdb *redis.Client) store.EntityStore {
	switch cfg.StoreDriver {
	case "", "memory":
		return store.NewMemoryStore()
	case "redis":
		if rdb == nil {
			utils.ErrorLogger.Fatal("STORE_DRIVER=redis but redis is unreachable")
		}
		return store.NewRedisStore(rdb, cfg.StorePrefix)
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			utils.ErrorLogger.Fatal("open database: ", err)
		}
		st := store.NewSQLStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := st.EnsureSchema(ctx); err != nil {
			utils.ErrorLogger.Fatal("ensure schema: ", err)
		}
		return st
	default:
		utils.ErrorLogger.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
		return nil
	}
}
