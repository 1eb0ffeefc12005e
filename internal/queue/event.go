// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published after a reservation commits.
// It carries enough information for downstream consumers to log or
// notify without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	TableID       uint64 `json:"table_id"`
	TableNumber   uint32 `json:"table_number"`
	CustomerName  string `json:"customer_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	ConfirmedAt   string `json:"confirmed_at"`
}
