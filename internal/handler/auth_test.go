package handler

import (
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-station-reservation/internal/config"
    "github.com/iliyamo/train-station-reservation/internal/repository"
)

func newMeCtx(t *testing.T, body string, userID interface{}) (echo.Context, *httptest.ResponseRecorder) {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodPut, "/v1/me", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    if userID != nil {
        c.Set("user_id", userID)
    }
    return c, rec
}

func TestUpdateMeRequiresAField(t *testing.T) {
    h := &AuthHandler{}
    c, rec := newMeCtx(t, `{}`, uint64(7))
    if err := h.UpdateMe(c); err != nil {
        t.Fatalf("UpdateMe returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
    }
}

func TestUpdateMeChangesEmail(t *testing.T) {
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock.New: %v", err)
    }
    defer db.Close()
    h := &AuthHandler{Cfg: config.Config{BcryptCost: 4}, Users: repository.NewUserRepo(db)}

    mock.ExpectExec(`UPDATE users SET email=\? WHERE id=\?`).
        WithArgs("new@example.com", 7).
        WillReturnResult(sqlmock.NewResult(0, 1))
    now := time.Now()
    mock.ExpectQuery("SELECT id,email,password_hash,role,is_active,created_at,updated_at FROM users").
        WithArgs(7).
        WillReturnRows(sqlmock.NewRows(
            []string{"id", "email", "password_hash", "role", "is_active", "created_at", "updated_at"}).
            AddRow(7, "new@example.com", "x", "CUSTOMER", true, now, now))

    c, rec := newMeCtx(t, `{"email":" New@Example.com "}`, uint64(7))
    if err := h.UpdateMe(c); err != nil {
        t.Fatalf("UpdateMe returned error: %v", err)
    }
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
    }
    if !strings.Contains(rec.Body.String(), "new@example.com") {
        t.Fatalf("body = %s, want normalized email", rec.Body.String())
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("unmet expectations: %v", err)
    }
}
