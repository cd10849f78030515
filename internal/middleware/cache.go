package middleware

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-table-reservation/internal/config"
)

// cacheWriter captures the response body and status while forwarding them
// to the client, so a successful response can be stored after the handler
// runs.
type cacheWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *cacheWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *cacheWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	return w.ResponseWriter.Write(p)
}

// ResponseCache returns a read-through cache for GET endpoints. Keys are
// "<prefix>:<method> <uri>"; a hit is replayed as JSON with an X-Cache
// header, a miss stores 200 responses up to MaxBodyBytes for the
// configured TTL. Mutating handlers call InvalidateCache to drop the
// whole namespace, so staleness is bounded by the TTL even without
// precise invalidation.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cfg.Prefix + ":" + c.Request().Method + " " + c.Request().RequestURI

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			w := &cacheWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = w
			if err := next(c); err != nil {
				return err
			}
			if w.status == http.StatusOK && w.buf.Len() <= cfg.MaxBodyBytes {
				_ = rdb.Set(ctx, key, w.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}

// InvalidateCache removes every cached response under the prefix. Called
// by admin mutations and the booking handler, since any of them can make
// a cached browse response stale.
func InvalidateCache(c echo.Context, cfg config.CacheConfig, rdb *redis.Client) {
	if !cfg.Enabled || rdb == nil {
		return
	}
	ctx := c.Request().Context()
	iter := rdb.Scan(ctx, 0, cfg.Prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		_ = rdb.Del(ctx, iter.Val()).Err()
	}
}
