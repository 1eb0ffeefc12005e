package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Bannawat01/Chong-toa/internal/config"
	"github.com/Bannawat01/Chong-toa/internal/handler"
	"github.com/Bannawat01/Chong-toa/internal/middleware"
)

// Deps groups everything the routes need: the handlers, the JWT secret
// for the auth gate, and the optional Redis client powering rate
// limiting and the tables cache.
type Deps struct {
	Auth         *handler.AuthHandler
	Tables       *handler.TableHandler
	Reservations *handler.ReservationHandler
	JWTSecret    string
	RDB          *redis.Client // may be nil
	RateLimit    config.RateLimitConfig
	Cache        config.CacheConfig
}

// Register wires the full API surface onto the Echo instance.
//
//	POST /register     – open, rate limited
//	POST /login        – open, rate limited
//	GET  /tables       – open, cached listing of Available tables
//	POST /tables       – Bearer token required
//	POST /reservations – Bearer token required
//	GET  /healthz      – open
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	limiter := middleware.NewTokenBucket(d.RateLimit, d.RDB)
	e.POST("/register", d.Auth.Register, limiter)
	e.POST("/login", d.Auth.Login, limiter)

	e.GET("/tables", d.Tables.ListTables, middleware.NewTablesCache(d.Cache, d.RDB))

	// Protected routes: a missing Authorization header is access
	// denied, an invalid or expired token is unauthorized.
	auth := middleware.JWTAuth(d.JWTSecret)
	e.POST("/tables", d.Tables.CreateTable, auth)
	e.POST("/reservations", d.Reservations.CreateReservation, auth)
}
