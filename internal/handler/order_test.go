package handler

import (
    "errors"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-station-reservation/internal/repository"
)

// The early validation paths of CreateOrder run before any database
// access, so they can be exercised with a zero-value handler.

func newOrderCtx(t *testing.T, body string, userID interface{}) (echo.Context, *httptest.ResponseRecorder) {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    if userID != nil {
        c.Set("user_id", userID)
    }
    return c, rec
}

func TestCreateOrderRequiresAuthContext(t *testing.T) {
    h := &BookingHandler{}
    c, rec := newOrderCtx(t, `{"tickets":[{"cargo":1,"seat":1,"journey":1}]}`, nil)
    if err := h.CreateOrder(c); err != nil {
        t.Fatalf("CreateOrder returned error: %v", err)
    }
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
    }
}

func TestCreateOrderRejectsEmptyTickets(t *testing.T) {
    h := &BookingHandler{}
    for _, body := range []string{`{}`, `{"tickets":[]}`} {
        c, rec := newOrderCtx(t, body, uint64(7))
        if err := h.CreateOrder(c); err != nil {
            t.Fatalf("CreateOrder(%s) returned error: %v", body, err)
        }
        if rec.Code != http.StatusBadRequest {
            t.Errorf("CreateOrder(%s) status = %d, want %d", body, rec.Code, http.StatusBadRequest)
        }
    }
}

func newMockBookingHandler(t *testing.T) (*BookingHandler, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock.New: %v", err)
    }
    t.Cleanup(func() { _ = db.Close() })
    return NewBookingHandler(repository.NewOrderRepo(db), repository.NewJourneyRepo(db)), mock
}

func layoutRows(cargoNum, placesInCargo int) *sqlmock.Rows {
    return sqlmock.NewRows([]string{"cargo_num", "places_in_cargo"}).AddRow(cargoNum, placesInCargo)
}

// A duplicate-key failure on the ticket insert means another order won
// the seat. The whole transaction must roll back and the client must
// see 409 "seat already taken", not a validation error.
func TestCreateOrderSeatTakenRollsBackWith409(t *testing.T) {
    h, mock := newMockBookingHandler(t)

    mock.ExpectBegin()
    mock.ExpectQuery("SELECT t.cargo_num").WithArgs(3).WillReturnRows(layoutRows(5, 20))
    mock.ExpectExec("INSERT INTO orders").WithArgs(7).WillReturnResult(sqlmock.NewResult(41, 1))
    mock.ExpectQuery("SELECT created_at FROM orders").WithArgs(41).
        WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
    mock.ExpectExec("INSERT INTO tickets").
        WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '3-1-1' for key 'uq_tickets_journey_cargo_seat'"))
    mock.ExpectRollback()

    c, rec := newOrderCtx(t, `{"tickets":[{"cargo":1,"seat":1,"journey":3}]}`, uint64(7))
    if err := h.CreateOrder(c); err != nil {
        t.Fatalf("CreateOrder returned error: %v", err)
    }
    if rec.Code != http.StatusConflict {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
    }
    if !strings.Contains(rec.Body.String(), "seat already taken") {
        t.Fatalf("body = %s, want seat already taken", rec.Body.String())
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("unmet expectations: %v", err)
    }
}

// An out-of-range seat fails validation before any row is written; the
// transaction rolls back having only read the train layout.
func TestCreateOrderOutOfRangeSeatWritesNothing(t *testing.T) {
    h, mock := newMockBookingHandler(t)

    mock.ExpectBegin()
    mock.ExpectQuery("SELECT t.cargo_num").WithArgs(3).WillReturnRows(layoutRows(2, 10))
    mock.ExpectRollback()

    c, rec := newOrderCtx(t, `{"tickets":[{"cargo":3,"seat":4,"journey":3}]}`, uint64(7))
    if err := h.CreateOrder(c); err != nil {
        t.Fatalf("CreateOrder returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
    }
    if !strings.Contains(rec.Body.String(), "cargo number must be in available range") {
        t.Fatalf("body = %s, want cargo range message", rec.Body.String())
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("order or ticket rows were written for an invalid request: %v", err)
    }
}

func TestCreateOrderCommitsValidOrder(t *testing.T) {
    h, mock := newMockBookingHandler(t)

    mock.ExpectBegin()
    mock.ExpectQuery("SELECT t.cargo_num").WithArgs(3).WillReturnRows(layoutRows(5, 20))
    mock.ExpectExec("INSERT INTO orders").WithArgs(7).WillReturnResult(sqlmock.NewResult(41, 1))
    mock.ExpectQuery("SELECT created_at FROM orders").WithArgs(41).
        WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
    mock.ExpectExec("INSERT INTO tickets").
        WithArgs(3, 41, 1, 1, 3, 41, 1, 2).
        WillReturnResult(sqlmock.NewResult(1, 2))
    mock.ExpectCommit()

    body := `{"tickets":[{"cargo":1,"seat":1,"journey":3},{"cargo":1,"seat":2,"journey":3}]}`
    c, rec := newOrderCtx(t, body, uint64(7))
    if err := h.CreateOrder(c); err != nil {
        t.Fatalf("CreateOrder returned error: %v", err)
    }
    if rec.Code != http.StatusCreated {
        t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("unmet expectations: %v", err)
    }
}

func TestCreateOrderRejectsDuplicateSeatInOrder(t *testing.T) {
    h := &BookingHandler{}
    body := `{"tickets":[
        {"cargo":2,"seat":5,"journey":3},
        {"cargo":1,"seat":1,"journey":3},
        {"cargo":2,"seat":5,"journey":3}
    ]}`
    c, rec := newOrderCtx(t, body, uint64(7))
    if err := h.CreateOrder(c); err != nil {
        t.Fatalf("CreateOrder returned error: %v", err)
    }
    if rec.Code != http.StatusConflict {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
    }
    if !strings.Contains(rec.Body.String(), "duplicate seat") {
        t.Fatalf("body = %s, want duplicate seat message", rec.Body.String())
    }
}
