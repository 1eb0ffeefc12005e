// Package service contains the reservation coordinator: the one place
// that transitions tables from Available to Reserved and creates the
// matching reservation record. No other component writes either field.
package service

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bannawat01/Chong-toa/internal/model"
	"github.com/Bannawat01/Chong-toa/internal/queue"
	"github.com/Bannawat01/Chong-toa/internal/repository"
)

// Publisher emits a confirmation event after a reservation commits.
// queue.PublishReservationConfirmed satisfies it in production; tests
// substitute their own.
type Publisher func(ctx context.Context, ev queue.ReservationConfirmedEvent) error

// ReservationService coordinates reservation creation. Both effects of
// a reservation — the table status flip and the reservation row — are
// committed in a single transaction, so no half-applied state survives
// a crash or a concurrent interleaving.
type ReservationService struct {
	db           *sql.DB
	tables       *repository.TableRepo
	reservations *repository.ReservationRepo

	// rdb and cacheKey are optional; when set, the available-tables
	// cache entry is dropped after each successful reservation so the
	// listing converges quickly.
	rdb      *redis.Client
	cacheKey string

	publish Publisher // best-effort, may be nil
}

// NewReservationService wires the coordinator. rdb may be nil (no
// cache invalidation) and publish may be nil (no event emission).
func NewReservationService(db *sql.DB, tables *repository.TableRepo, reservations *repository.ReservationRepo, rdb *redis.Client, cacheKey string, publish Publisher) *ReservationService {
	if db == nil || tables == nil || reservations == nil {
		panic("nil dependency passed to NewReservationService")
	}
	return &ReservationService{
		db:           db,
		tables:       tables,
		reservations: reservations,
		rdb:          rdb,
		cacheKey:     cacheKey,
		publish:      publish,
	}
}

// Reserve books the given table for a customer and date/time slot.
// It returns repository.ErrTableNotFound for unknown tables and
// repository.ErrTableUnavailable when the table is already Reserved —
// including when a concurrent call wins the race. The status check and
// the status write are one conditional UPDATE, so at most one caller
// ever observes success for a given table. Losers are not retried;
// contention is surfaced to the client.
//
// No date/time collision checking happens here: one Confirmed
// reservation per table regardless of the requested slot.
func (s *ReservationService) Reserve(ctx context.Context, tableID uint64, customerName, date, timeSlot string) (model.Reservation, error) {
	table, err := s.tables.GetByID(ctx, tableID)
	if err != nil {
		return model.Reservation{}, err
	}
	if table.Status != model.TableAvailable {
		return model.Reservation{}, repository.ErrTableUnavailable
	}

	rec := model.Reservation{
		TableID:      tableID,
		CustomerName: customerName,
		Date:         date,
		Time:         timeSlot,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Reservation{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Compare-and-set first; the insert must not happen if it fails.
	if err := s.tables.ReserveTx(ctx, tx, tableID); err != nil {
		return model.Reservation{}, err
	}
	if err := s.reservations.CreateTx(ctx, tx, &rec); err != nil {
		return model.Reservation{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Reservation{}, err
	}
	committed = true

	s.afterCommit(ctx, table, rec)
	return rec, nil
}

// afterCommit runs the best-effort side effects of a reservation:
// dropping the cached available-tables listing and publishing the
// confirmation event. Failures are logged, never surfaced — the
// reservation is already durable.
func (s *ReservationService) afterCommit(ctx context.Context, table model.Table, rec model.Reservation) {
	if s.rdb != nil && s.cacheKey != "" {
		if err := s.rdb.Del(ctx, s.cacheKey).Err(); err != nil {
			log.Printf("reservation: cache invalidation failed: %v", err)
		}
	}
	if s.publish != nil {
		ev := queue.ReservationConfirmedEvent{
			ReservationID: rec.ID,
			TableID:       rec.TableID,
			TableNumber:   table.TableNumber,
			CustomerName:  rec.CustomerName,
			Date:          rec.Date,
			Time:          rec.Time,
			ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		_ = s.publish(ctx, ev) // already logged by the publisher
	}
}
