package handler

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-station-reservation/internal/booking"
    "github.com/iliyamo/train-station-reservation/internal/model"
    "github.com/iliyamo/train-station-reservation/internal/queue"
    "github.com/iliyamo/train-station-reservation/internal/repository"
    queue_publisher "github.com/iliyamo/train-station-reservation/internal/service"
)

// BookingHandler sells tickets. An order and its tickets are written
// in a single transaction; the UNIQUE (journey_id, cargo, seat) key in
// the tickets table is the final authority on double booking, so two
// racing orders for the same seat can both pass validation and only
// one will commit.
type BookingHandler struct {
    Orders   *repository.OrderRepo
    Journeys *repository.JourneyRepo
}

func NewBookingHandler(o *repository.OrderRepo, j *repository.JourneyRepo) *BookingHandler {
    return &BookingHandler{Orders: o, Journeys: j}
}

type ticketReq struct {
    Cargo   int    `json:"cargo"`
    Seat    int    `json:"seat"`
    Journey uint64 `json:"journey"`
}

type createOrderReq struct {
    Tickets []ticketReq `json:"tickets"`
}

type ticketError struct {
    Index  int    `json:"index"`
    Field  string `json:"field"`
    Reason string `json:"reason"`
}

// CreateOrder books every requested seat atomically: either all
// tickets are written under one new order, or nothing is. Validation
// failures list every offending ticket field, not just the first.
func (h *BookingHandler) CreateOrder(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    var req createOrderReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if len(req.Tickets) == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "tickets required"})
    }

    // Reject duplicates inside the order up front; the database would
    // also catch them via the unique key, but the caller gets a
    // clearer message this way.
    seen := make(map[ticketReq]struct{}, len(req.Tickets))
    for _, t := range req.Tickets {
        if _, dup := seen[t]; dup {
            return c.JSON(http.StatusConflict, echo.Map{
                "error": fmt.Sprintf("duplicate seat in order: journey %d cargo %d seat %d", t.Journey, t.Cargo, t.Seat),
            })
        }
        seen[t] = struct{}{}
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
    defer cancel()

    tx, err := h.Orders.DB().BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin tx failed"})
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    // Train layouts are fetched once per distinct journey inside the
    // transaction, so validation bounds and the insert see the same
    // snapshot.
    type layout struct{ cargoNum, placesInCargo int }
    layouts := make(map[uint64]layout)
    var fieldErrs []ticketError
    for i, t := range req.Tickets {
        if t.Journey == 0 {
            fieldErrs = append(fieldErrs, ticketError{Index: i, Field: "journey", Reason: "journey required"})
            continue
        }
        l, ok := layouts[t.Journey]
        if !ok {
            cargoNum, placesInCargo, err := h.Journeys.TrainLayoutTx(ctx, tx, t.Journey)
            if err != nil {
                if errors.Is(err, repository.ErrNotFound) {
                    fieldErrs = append(fieldErrs, ticketError{Index: i, Field: "journey", Reason: "journey not found"})
                    continue
                }
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
            }
            l = layout{cargoNum, placesInCargo}
            layouts[t.Journey] = l
        }
        for _, fe := range booking.ValidateSeat(t.Cargo, t.Seat, l.cargoNum, l.placesInCargo) {
            fieldErrs = append(fieldErrs, ticketError{Index: i, Field: fe.Field, Reason: fe.Message})
        }
    }
    if len(fieldErrs) > 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tickets", "details": fieldErrs})
    }

    order := model.Order{UserID: userID}
    if err := h.Orders.CreateTx(ctx, tx, &order); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create order failed"})
    }

    tickets := make([]model.Ticket, 0, len(req.Tickets))
    for _, t := range req.Tickets {
        tickets = append(tickets, model.Ticket{
            JourneyID: t.Journey,
            OrderID:   order.ID,
            Cargo:     t.Cargo,
            Seat:      t.Seat,
        })
    }
    if err := h.Orders.CreateTicketsBulkTx(ctx, tx, tickets); err != nil {
        switch {
        case errors.Is(err, repository.ErrSeatTaken):
            return c.JSON(http.StatusConflict, echo.Map{"error": "seat already taken"})
        case errors.Is(err, repository.ErrNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "journey not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create tickets failed"})
    }

    if err := tx.Commit(); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
    }
    committed = true

    // Publishing is best effort and must not delay or fail the response.
    go func(ev queue.OrderCreatedEvent) {
        pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer pubCancel()
        _ = queue_publisher.PublishOrderCreated(pubCtx, ev)
    }(orderEvent(order, tickets))

    return c.JSON(http.StatusCreated, echo.Map{
        "id":         order.ID,
        "user":       order.UserID,
        "created_at": order.CreatedAt,
        "tickets":    tickets,
    })
}

func orderEvent(order model.Order, tickets []model.Ticket) queue.OrderCreatedEvent {
    seats := make([]string, 0, len(tickets))
    for _, t := range tickets {
        seats = append(seats, fmt.Sprintf("%d:%d-%d", t.JourneyID, t.Cargo, t.Seat))
    }
    return queue.OrderCreatedEvent{
        OrderID:     order.ID,
        UserID:      order.UserID,
        TicketCount: len(tickets),
        Seats:       seats,
        CreatedAt:   order.CreatedAt.UTC().Format(time.RFC3339),
    }
}

// ListOrders returns the caller's own orders, newest first, each with
// its tickets and resolved journey context.
func (h *BookingHandler) ListOrders(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    orders, err := h.Orders.ListByUser(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, orders)
}
