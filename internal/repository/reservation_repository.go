package repository

import (
	"context"
	"database/sql"

	"github.com/Bannawat01/Chong-toa/internal/model"
)

// ReservationRepo provides persistence for reservations. Creation only
// happens inside the reservation transaction, causally after the table
// status compare-and-set has succeeded; there is no standalone create.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// CreateTx inserts a Confirmed reservation within the scope of an
// existing transaction and populates the generated ID on the record.
// The caller must commit or roll back the transaction.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, rec *model.Reservation) error {
	rec.Status = model.ReservationConfirmed
	res, err := tx.ExecContext(ctx,
		"INSERT INTO reservations (table_id, customer_name, date, time, status) VALUES (?,?,?,?,?)",
		rec.TableID, rec.CustomerName, rec.Date, rec.Time, rec.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = uint64(id)
	return nil
}

// ListByTable returns all reservations referencing the given table,
// newest first.
func (r *ReservationRepo) ListByTable(ctx context.Context, tableID uint64) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,table_id,customer_name,date,time,status,created_at FROM reservations WHERE table_id=? ORDER BY id DESC",
		tableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var rec model.Reservation
		if err := rows.Scan(&rec.ID, &rec.TableID, &rec.CustomerName, &rec.Date, &rec.Time, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// CountConfirmedByTable returns how many Confirmed reservations
// reference the given table. Used to verify the one-per-table
// invariant.
func (r *ReservationRepo) CountConfirmedByTable(ctx context.Context, tableID uint64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reservations WHERE table_id=? AND status=?",
		tableID, model.ReservationConfirmed).Scan(&n)
	return n, err
}
