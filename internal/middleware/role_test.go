package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/iliyamo/train-station-reservation/internal/utils"
    "github.com/labstack/echo/v4"
)

func callWithRole(t *testing.T, mw echo.MiddlewareFunc, role interface{}) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodPost, "/v1/stations", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    if role != nil {
        c.Set("role", role)
    }
    h := mw(func(c echo.Context) error {
        return c.String(http.StatusOK, "reached")
    })
    if err := h(c); err != nil {
        t.Fatalf("handler returned error: %v", err)
    }
    return rec
}

func TestRequireRole(t *testing.T) {
    adminOnly := RequireRole("ADMIN")

    if rec := callWithRole(t, adminOnly, "ADMIN"); rec.Code != http.StatusOK {
        t.Fatalf("admin rejected: %d", rec.Code)
    }
    if rec := callWithRole(t, adminOnly, "CUSTOMER"); rec.Code != http.StatusForbidden {
        t.Fatalf("customer write allowed: %d", rec.Code)
    }
    if rec := callWithRole(t, adminOnly, nil); rec.Code != http.StatusForbidden {
        t.Fatalf("missing role allowed: %d", rec.Code)
    }
    if rec := callWithRole(t, adminOnly, 42); rec.Code != http.StatusForbidden {
        t.Fatalf("non-string role allowed: %d", rec.Code)
    }

    both := RequireRole("ADMIN", "CUSTOMER")
    if rec := callWithRole(t, both, "CUSTOMER"); rec.Code != http.StatusOK {
        t.Fatalf("customer rejected on shared endpoint: %d", rec.Code)
    }
}

func TestJWTAuth(t *testing.T) {
    const secret = "mw-test-secret"
    e := echo.New()
    mw := JWTAuth(secret)
    handler := mw(func(c echo.Context) error {
        return c.JSON(http.StatusOK, echo.Map{
            "user_id": c.Get("user_id"),
            "role":    c.Get("role"),
        })
    })

    t.Run("valid token passes and injects claims", func(t *testing.T) {
        at, err := utils.NewAccessToken(secret, 7, "CUSTOMER", 5)
        if err != nil {
            t.Fatal(err)
        }
        req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
        req.Header.Set("Authorization", "Bearer "+at.Token)
        rec := httptest.NewRecorder()
        if err := handler(e.NewContext(req, rec)); err != nil {
            t.Fatal(err)
        }
        if rec.Code != http.StatusOK {
            t.Fatalf("valid token rejected: %d %s", rec.Code, rec.Body.String())
        }
    })

    t.Run("missing header rejected", func(t *testing.T) {
        req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
        rec := httptest.NewRecorder()
        if err := handler(e.NewContext(req, rec)); err != nil {
            t.Fatal(err)
        }
        if rec.Code != http.StatusUnauthorized {
            t.Fatalf("missing token allowed: %d", rec.Code)
        }
    })

    t.Run("token signed with other secret rejected", func(t *testing.T) {
        at, err := utils.NewAccessToken("other-secret", 7, "CUSTOMER", 5)
        if err != nil {
            t.Fatal(err)
        }
        req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
        req.Header.Set("Authorization", "Bearer "+at.Token)
        rec := httptest.NewRecorder()
        if err := handler(e.NewContext(req, rec)); err != nil {
            t.Fatal(err)
        }
        if rec.Code != http.StatusUnauthorized {
            t.Fatalf("forged token allowed: %d", rec.Code)
        }
    })
}
