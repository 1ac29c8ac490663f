package repository

import (
    "context"
    "database/sql"
    "strings"
    "time"

    "github.com/iliyamo/train-station-reservation/internal/model"
)

// OrderRepo provides persistence for orders and their tickets. An
// order and all of its tickets are written in one transaction owned by
// the caller; if any ticket insert fails, the caller rolls back and no
// partial order survives.
type OrderRepo struct {
    db *sql.DB
}

// NewOrderRepo returns an OrderRepo bound to the given database.
func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// DB exposes the underlying handle for transaction control.
func (r *OrderRepo) DB() *sql.DB { return r.db }

// CreateTx inserts an order row within an existing transaction and
// populates the generated ID and CreatedAt. The caller must commit or
// roll back.
func (r *OrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, o *model.Order) error {
    res, err := tx.ExecContext(ctx, `INSERT INTO orders (user_id) VALUES (?)`, o.UserID)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    o.ID = uint64(id)
    return tx.QueryRowContext(ctx, `SELECT created_at FROM orders WHERE id = ?`, o.ID).Scan(&o.CreatedAt)
}

// CreateTicketsBulkTx inserts all tickets of an order in a single
// statement within the transaction. A duplicate (journey, cargo, seat)
// triple — this order losing the race for a seat — surfaces as
// ErrSeatTaken, and the database guarantees the entire statement had
// no effect. Passing an empty slice has no effect and returns nil.
func (r *OrderRepo) CreateTicketsBulkTx(ctx context.Context, tx *sql.Tx, tickets []model.Ticket) error {
    if len(tickets) == 0 {
        return nil
    }
    query := `INSERT INTO tickets (journey_id, order_id, cargo, seat) VALUES `
    args := make([]interface{}, 0, len(tickets)*4)
    for i, t := range tickets {
        if i > 0 {
            query += ","
        }
        query += "(?, ?, ?, ?)"
        args = append(args, t.JourneyID, t.OrderID, t.Cargo, t.Seat)
    }
    if _, err := tx.ExecContext(ctx, query, args...); err != nil {
        if isDuplicateEntry(err) {
            return ErrSeatTaken
        }
        if isForeignKeyFailure(err) {
            return ErrNotFound
        }
        return err
    }
    return nil
}

// TicketDetail is a ticket as shown inside an order listing, with its
// journey summarised.
type TicketDetail struct {
    ID            uint64    `json:"id"`
    Cargo         int       `json:"cargo"`
    Seat          int       `json:"seat"`
    JourneyID     uint64    `json:"journey"`
    Source        string    `json:"source"`
    Destination   string    `json:"destination"`
    TrainName     string    `json:"train_name"`
    DepartureTime time.Time `json:"departure_time"`
}

// OrderDetail is an order with its tickets, as returned to the owning
// user.
type OrderDetail struct {
    ID        uint64         `json:"id"`
    CreatedAt time.Time      `json:"created_at"`
    Tickets   []TicketDetail `json:"tickets"`
}

// ListByUser returns all orders of a user, newest first, with their
// tickets nested. Tickets within an order are ordered by cargo then
// seat. When the user has no orders, an empty slice is returned.
func (r *OrderRepo) ListByUser(ctx context.Context, userID uint64) ([]OrderDetail, error) {
    const q = `SELECT id, created_at FROM orders WHERE user_id = ? ORDER BY created_at DESC, id DESC`
    rows, err := r.db.QueryContext(ctx, q, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    details := make([]OrderDetail, 0)
    index := make(map[uint64]int)
    for rows.Next() {
        var d OrderDetail
        if err := rows.Scan(&d.ID, &d.CreatedAt); err != nil {
            return nil, err
        }
        d.Tickets = []TicketDetail{}
        index[d.ID] = len(details)
        details = append(details, d)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    if len(details) == 0 {
        return details, nil
    }

    ids := make([]interface{}, 0, len(details))
    placeholders := make([]string, 0, len(details))
    for _, d := range details {
        ids = append(ids, d.ID)
        placeholders = append(placeholders, "?")
    }
    ticketQuery := `SELECT tk.order_id, tk.id, tk.cargo, tk.seat, tk.journey_id,
                           src.name, dst.name, t.name, j.departure_time
                    FROM tickets tk
                    JOIN journeys j ON j.id = tk.journey_id
                    JOIN routes r ON r.id = j.route_id
                    JOIN stations src ON src.id = r.source_station_id
                    JOIN stations dst ON dst.id = r.destination_station_id
                    JOIN trains t ON t.id = j.train_id
                    WHERE tk.order_id IN (` + strings.Join(placeholders, ",") + `)
                    ORDER BY tk.order_id, tk.cargo, tk.seat`
    trows, err := r.db.QueryContext(ctx, ticketQuery, ids...)
    if err != nil {
        return nil, err
    }
    defer trows.Close()
    for trows.Next() {
        var oid uint64
        var td TicketDetail
        if err := trows.Scan(&oid, &td.ID, &td.Cargo, &td.Seat, &td.JourneyID,
            &td.Source, &td.Destination, &td.TrainName, &td.DepartureTime); err != nil {
            return nil, err
        }
        if idx, ok := index[oid]; ok {
            details[idx].Tickets = append(details[idx].Tickets, td)
        }
    }
    if err := trows.Err(); err != nil {
        return nil, err
    }
    return details, nil
}
