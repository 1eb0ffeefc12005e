package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Bannawat01/Chong-toa/internal/model"
)

// TableRepo provides persistence for restaurant tables. The status
// column is only ever written through ReserveTx; no other code path
// mutates it once a table exists.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo returns a TableRepo bound to the given database.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions
// that span this repository and ReservationRepo.
func (r *TableRepo) DB() *sql.DB { return r.db }

// Create inserts a new table in Available status and returns its ID.
// A duplicate table number maps to ErrTableExists.
func (r *TableRepo) Create(ctx context.Context, tableNumber, seats uint32) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tables (table_number, seats, status) VALUES (?,?,?)",
		tableNumber, seats, model.TableAvailable)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrTableExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single table. Absent rows map to ErrTableNotFound.
func (r *TableRepo) GetByID(ctx context.Context, id uint64) (model.Table, error) {
	var t model.Table
	err := r.db.QueryRowContext(ctx,
		"SELECT id,table_number,seats,status,created_at FROM tables WHERE id=? LIMIT 1",
		id).Scan(&t.ID, &t.TableNumber, &t.Seats, &t.Status, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return t, ErrTableNotFound
	}
	return t, err
}

// ListAvailable returns every table currently in Available status,
// ordered by table number for deterministic output.
func (r *TableRepo) ListAvailable(ctx context.Context) ([]model.Table, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,table_number,seats,status,created_at FROM tables WHERE status=? ORDER BY table_number",
		model.TableAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tables := make([]model.Table, 0)
	for rows.Next() {
		var t model.Table
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.Seats, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

// ReserveTx atomically transitions a table from Available to Reserved
// within the given transaction. The WHERE clause on the current status
// makes the check and the write a single compare-and-set: under
// concurrent attempts the row lock serializes them and exactly one
// UPDATE reports an affected row. Zero rows affected means either the
// table does not exist (ErrTableNotFound) or it is no longer Available
// (ErrTableUnavailable).
func (r *TableRepo) ReserveTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE tables SET status=? WHERE id=? AND status=?",
		model.TableReserved, id, model.TableAvailable)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	// Distinguish a missing table from a lost race.
	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM tables WHERE id=?)", id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrTableNotFound
	}
	return ErrTableUnavailable
}
