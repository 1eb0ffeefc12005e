package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Bannawat01/Chong-toa/internal/model"
	"github.com/Bannawat01/Chong-toa/internal/repository"
)

// TableStore is the slice of the table repository the table handlers
// need. *repository.TableRepo satisfies it.
type TableStore interface {
	Create(ctx context.Context, tableNumber, seats uint32) (uint64, error)
	ListAvailable(ctx context.Context) ([]model.Table, error)
}

// TableHandler serves table creation and the available-tables listing.
// rdb/cacheKey are optional: when set, the cached listing is dropped
// after a table is added so the new table shows up immediately.
type TableHandler struct {
	Tables   TableStore
	RDB      *redis.Client
	CacheKey string
}

func NewTableHandler(tables TableStore, rdb *redis.Client, cacheKey string) *TableHandler {
	if tables == nil {
		panic("nil table store passed to NewTableHandler")
	}
	return &TableHandler{Tables: tables, RDB: rdb, CacheKey: cacheKey}
}

type addTableReq struct {
	TableNumber uint32 `json:"tableNumber"`
	Seats       uint32 `json:"seats"`
}

// CreateTable handles POST /tables (authenticated). New tables start
// Available.
func (h *TableHandler) CreateTable(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req addTableReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.TableNumber == 0 || req.Seats == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tableNumber and seats are required and must be greater than zero"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Tables.Create(ctx, req.TableNumber, req.Seats); err != nil {
		if errors.Is(err, repository.ErrTableExists) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "table already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error adding table"})
	}
	h.invalidateListing(ctx)
	return c.JSON(http.StatusOK, echo.Map{"message": "Table added successfully"})
}

// ListTables handles GET /tables (unauthenticated). Only Available
// tables are returned; the response may be served from cache by the
// middleware wrapping this route.
func (h *TableHandler) ListTables(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tables, err := h.Tables.ListAvailable(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, tables)
}

func (h *TableHandler) invalidateListing(ctx context.Context) {
	if h.RDB == nil || h.CacheKey == "" {
		return
	}
	if err := h.RDB.Del(ctx, h.CacheKey).Err(); err != nil {
		log.Printf("tables: cache invalidation failed: %v", err)
	}
}
