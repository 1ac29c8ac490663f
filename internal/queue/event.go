// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderCreatedEvent is published after an order and all of its tickets
// commit. It carries enough context for downstream consumers to log or
// notify without querying the primary database. Seats are rendered as
// "journey:cargo-seat" labels.
type OrderCreatedEvent struct {
    OrderID     uint64   `json:"order_id"`
    UserID      uint64   `json:"user_id"`
    TicketCount int      `json:"ticket_count"`
    Seats       []string `json:"seats"`
    CreatedAt   string   `json:"created_at"`
}
