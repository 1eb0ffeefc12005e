package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Bannawat01/Chong-toa/internal/model"
	"github.com/Bannawat01/Chong-toa/internal/repository"
)

// Reserver is the reservation coordinator as seen by the gateway.
// *service.ReservationService satisfies it.
type Reserver interface {
	Reserve(ctx context.Context, tableID uint64, customerName, date, timeSlot string) (model.Reservation, error)
}

// ReservationHandler serves reservation creation. The coordinator owns
// all state transitions; this handler only binds, validates and maps
// errors to status codes.
type ReservationHandler struct {
	Svc Reserver
}

func NewReservationHandler(svc Reserver) *ReservationHandler {
	if svc == nil {
		panic("nil reserver passed to NewReservationHandler")
	}
	return &ReservationHandler{Svc: svc}
}

type reserveReq struct {
	TableID      uint64 `json:"tableId"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// CreateReservation handles POST /reservations (authenticated). A lost
// race against a concurrent reservation surfaces as table not
// available — no transparent retry, so the client sees the contention.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.TableID == 0 || req.CustomerName == "" || req.Date == "" || req.Time == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tableId, customerName, date and time are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Svc.Reserve(ctx, req.TableID, req.CustomerName, req.Date, req.Time); err != nil {
		switch {
		case errors.Is(err, repository.ErrTableNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "table not found"})
		case errors.Is(err, repository.ErrTableUnavailable):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "table not available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error creating reservation"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Reservation confirmed"})
}
