package model

import "time"

// Table status values. A table starts Available and moves to Reserved
// exactly once; there is no release transition.
const (
	TableAvailable = "Available"
	TableReserved  = "Reserved"
)

// Table represents a restaurant table as stored in the `tables` table.
// Status is the single source of truth for bookability: a table is
// Reserved iff a Confirmed reservation referencing it exists.
//
// Fields:
//  ID          – primary key identifier.
//  TableNumber – unique human-facing table number.
//  Seats       – seating capacity, always positive.
//  Status      – Available or Reserved.
//  CreatedAt   – timestamp of creation.
type Table struct {
	ID          uint64    `json:"id"`           // tables.id
	TableNumber uint32    `json:"table_number"` // tables.table_number
	Seats       uint32    `json:"seats"`        // tables.seats
	Status      string    `json:"status"`       // tables.status
	CreatedAt   time.Time `json:"created_at"`   // tables.created_at
}
