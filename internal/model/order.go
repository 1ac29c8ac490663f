package model

import "time"

// Order groups the tickets a user bought in one request. Orders are
// created atomically with their tickets and never updated afterwards;
// CreatedAt is set once by the database.
type Order struct {
    ID        uint64    `json:"id"`         // orders.id
    UserID    uint64    `json:"user"`       // orders.user_id
    CreatedAt time.Time `json:"created_at"` // orders.created_at
}

// Ticket claims one physical seat on one journey. The combination
// (JourneyID, Cargo, Seat) is unique across all orders; the database
// constraint is what prevents double booking.
//
// Fields:
//  ID        – primary key identifier.
//  JourneyID – journey the seat is claimed on.
//  OrderID   – order the ticket was bought under.
//  Cargo     – 1-indexed carriage number.
//  Seat      – 1-indexed seat number within the carriage.
type Ticket struct {
    ID        uint64 `json:"id"`      // tickets.id
    JourneyID uint64 `json:"journey"` // tickets.journey_id
    OrderID   uint64 `json:"order"`   // tickets.order_id
    Cargo     int    `json:"cargo"`   // tickets.cargo
    Seat      int    `json:"seat"`    // tickets.seat
}
