package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Bannawat01/Chong-toa/internal/config"
	"github.com/Bannawat01/Chong-toa/internal/database"
	"github.com/Bannawat01/Chong-toa/internal/handler"
	"github.com/Bannawat01/Chong-toa/internal/middleware"
	"github.com/Bannawat01/Chong-toa/internal/queue"
	"github.com/Bannawat01/Chong-toa/internal/repository"
	"github.com/Bannawat01/Chong-toa/internal/router"
	"github.com/Bannawat01/Chong-toa/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient() // nil disables caching and rate limiting
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	cacheKey := middleware.AvailableTablesCacheKey(cacheCfg)

	users := repository.NewUserRepo(db)
	tables := repository.NewTableRepo(db)
	reservations := repository.NewReservationRepo(db)

	reserver := service.NewReservationService(db, tables, reservations,
		rdb, cacheKey, queue.PublishReservationConfirmed)

	// Background consumer writes confirmed reservations to logs/reservations.log.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, router.Deps{
		Auth:         handler.NewAuthHandler(cfg, users),
		Tables:       handler.NewTableHandler(tables, rdb, cacheKey),
		Reservations: handler.NewReservationHandler(reserver),
		JWTSecret:    cfg.JWTSecret,
		RDB:          rdb,
		RateLimit:    config.LoadRateLimitConfig(),
		Cache:        cacheCfg,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
