package handler

import (
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
)

func dateCtx(query string) echo.Context {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/journeys?"+query, nil)
    return e.NewContext(req, httptest.NewRecorder())
}

func TestQueryDate(t *testing.T) {
    got, err := queryDate(dateCtx("departure_time=2026-03-15"), "departure_time")
    if err != nil {
        t.Fatalf("queryDate returned error: %v", err)
    }
    want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
    if got == nil || !got.Equal(want) {
        t.Fatalf("queryDate = %v, want %v", got, want)
    }
}

func TestQueryDateAbsent(t *testing.T) {
    got, err := queryDate(dateCtx(""), "departure_time")
    if err != nil {
        t.Fatalf("queryDate returned error: %v", err)
    }
    if got != nil {
        t.Fatalf("queryDate = %v, want nil for absent parameter", got)
    }
}

// Update is full replace: a body carrying only one field must be
// rejected before any repository call, not treated as a patch.
func TestJourneyUpdateRejectsPartialBody(t *testing.T) {
    h := &JourneyHandler{}
    e := echo.New()
    req := httptest.NewRequest(http.MethodPut, "/v1/journeys/5",
        strings.NewReader(`{"departure_time":"2026-03-15T10:00:00Z"}`))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.SetPath("/v1/journeys/:id")
    c.SetParamNames("id")
    c.SetParamValues("5")

    if err := h.Update(c); err != nil {
        t.Fatalf("Update returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
    }
    if !strings.Contains(rec.Body.String(), "route and train required") {
        t.Fatalf("body = %s, want full-replace validation message", rec.Body.String())
    }
}

func TestQueryDateRejectsBadFormats(t *testing.T) {
    for _, raw := range []string{"15-03-2026", "2026-3-15T10:00", "yesterday"} {
        if _, err := queryDate(dateCtx("departure_time="+raw), "departure_time"); err == nil {
            t.Errorf("queryDate(%q) accepted invalid date", raw)
        }
    }
}
