package model

import "time"

// Reservation status values. Pending exists in the schema enum but no
// code path produces it: the only creation path confirms immediately.
// It is kept as a documented dead value rather than inventing a
// confirmation workflow.
const (
	ReservationPending   = "Pending"
	ReservationConfirmed = "Confirmed"
)

// Reservation binds a customer to a table for a date/time slot. A
// reservation is created only as the result of a successful reserve
// call and is Confirmed from birth. Per table at most one Confirmed
// reservation ever exists.
//
// Fields:
//  ID           – primary key identifier.
//  TableID      – table being reserved (required foreign key).
//  CustomerName – name the reservation is held under.
//  Date         – requested date, free-form string as supplied.
//  Time         – requested time, free-form string as supplied.
//  Status       – Pending or Confirmed (only Confirmed is produced).
//  CreatedAt    – timestamp of creation.
type Reservation struct {
	ID           uint64    `json:"id"`            // reservations.id
	TableID      uint64    `json:"table_id"`      // reservations.table_id
	CustomerName string    `json:"customer_name"` // reservations.customer_name
	Date         string    `json:"date"`          // reservations.date
	Time         string    `json:"time"`          // reservations.time
	Status       string    `json:"status"`        // reservations.status
	CreatedAt    time.Time `json:"created_at"`    // reservations.created_at
}
