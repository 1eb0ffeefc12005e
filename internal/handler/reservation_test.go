package handler

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bannawat01/Chong-toa/internal/model"
	"github.com/Bannawat01/Chong-toa/internal/repository"
)

// --- Mock Reserver ---

type mockReserver struct {
	reserveFn func(ctx context.Context, tableID uint64, customerName, date, timeSlot string) (model.Reservation, error)
}

func (m *mockReserver) Reserve(ctx context.Context, tableID uint64, customerName, date, timeSlot string) (model.Reservation, error) {
	return m.reserveFn(ctx, tableID, customerName, date, timeSlot)
}

func TestCreateReservationSuccess(t *testing.T) {
	svc := &mockReserver{
		reserveFn: func(ctx context.Context, tableID uint64, customerName, date, timeSlot string) (model.Reservation, error) {
			assert.Equal(t, uint64(3), tableID)
			assert.Equal(t, "Alice", customerName)
			assert.Equal(t, "2024-01-01", date)
			assert.Equal(t, "19:00", timeSlot)
			return model.Reservation{ID: 1, TableID: tableID, Status: model.ReservationConfirmed}, nil
		},
	}
	c, rec := authedPost("/reservations", `{"tableId":3,"customerName":"Alice","date":"2024-01-01","time":"19:00"}`)
	h := NewReservationHandler(svc)

	assert.NoError(t, h.CreateReservation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reservation confirmed")
}

func TestCreateReservationUnauthenticated(t *testing.T) {
	h := NewReservationHandler(&mockReserver{})
	c, rec := postJSON("/reservations", `{"tableId":3,"customerName":"Alice","date":"2024-01-01","time":"19:00"}`)

	assert.NoError(t, h.CreateReservation(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateReservationMissingFields(t *testing.T) {
	h := NewReservationHandler(&mockReserver{})
	for _, body := range []string{
		`{}`,
		`{"tableId":3}`,
		`{"tableId":3,"customerName":"Alice"}`,
		`{"tableId":3,"customerName":"Alice","date":"2024-01-01"}`,
		`{"customerName":"Alice","date":"2024-01-01","time":"19:00"}`,
	} {
		c, rec := authedPost("/reservations", body)
		assert.NoError(t, h.CreateReservation(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestCreateReservationTableNotFound(t *testing.T) {
	svc := &mockReserver{
		reserveFn: func(ctx context.Context, tableID uint64, customerName, date, timeSlot string) (model.Reservation, error) {
			return model.Reservation{}, repository.ErrTableNotFound
		},
	}
	c, rec := authedPost("/reservations", `{"tableId":99,"customerName":"Alice","date":"2024-01-01","time":"19:00"}`)
	h := NewReservationHandler(svc)

	assert.NoError(t, h.CreateReservation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "table not found")
}

func TestCreateReservationTableUnavailable(t *testing.T) {
	svc := &mockReserver{
		reserveFn: func(ctx context.Context, tableID uint64, customerName, date, timeSlot string) (model.Reservation, error) {
			return model.Reservation{}, repository.ErrTableUnavailable
		},
	}
	c, rec := authedPost("/reservations", `{"tableId":3,"customerName":"Alice","date":"2024-01-01","time":"19:00"}`)
	h := NewReservationHandler(svc)

	assert.NoError(t, h.CreateReservation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "table not available")
}

// TestCreateReservationConcurrentSingleWinner drives N concurrent
// requests for the same table through the handler against a
// coordinator whose availability flip is a single compare-and-set.
// Exactly one request may win; every loser must see table not
// available.
func TestCreateReservationConcurrentSingleWinner(t *testing.T) {
	var available atomic.Bool
	available.Store(true)

	svc := &mockReserver{
		reserveFn: func(ctx context.Context, tableID uint64, customerName, date, timeSlot string) (model.Reservation, error) {
			if !available.CompareAndSwap(true, false) {
				return model.Reservation{}, repository.ErrTableUnavailable
			}
			return model.Reservation{ID: 1, TableID: tableID, Status: model.ReservationConfirmed}, nil
		},
	}
	h := NewReservationHandler(svc)

	const n = 32
	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, rec := authedPost("/reservations", `{"tableId":3,"customerName":"Alice","date":"2024-01-01","time":"19:00"}`)
			assert.NoError(t, h.CreateReservation(c))
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	wins, losses := 0, 0
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			wins++
		case http.StatusBadRequest:
			losses++
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, losses)
}
