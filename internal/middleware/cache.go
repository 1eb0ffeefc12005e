package middleware

import (
	"bytes"
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Bannawat01/Chong-toa/internal/config"
)

// AvailableTablesCacheKey builds the Redis key under which the
// available-tables listing is cached. The reservation coordinator and
// the table handler delete this key after writes so the listing
// converges within one request instead of waiting out the TTL.
func AvailableTablesCacheKey(cfg config.CacheConfig) string {
	return cfg.Prefix + ":tables:available"
}

// bodyCapture buffers the response body while forwarding it to the
// client, so a successful listing can be stored after the handler ran.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// NewTablesCache caches the JSON body of the available-tables listing
// in Redis for cfg.TTL. Only 200 responses are stored. The cache is
// advisory: any Redis failure falls through to the database. When the
// cache is disabled or rdb is nil the middleware is a no-op.
func NewTablesCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	key := AvailableTablesCacheKey(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if body, err := rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			cw := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				// Background context: the client already has its answer.
				_ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}
