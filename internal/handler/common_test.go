package handler

import (
    "net/http"
    "net/http/httptest"
    "reflect"
    "testing"

    "github.com/labstack/echo/v4"
)

func ctxWithQuery(rawQuery string) echo.Context {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/journeys?"+rawQuery, nil)
    return e.NewContext(req, httptest.NewRecorder())
}

func TestQueryIDList(t *testing.T) {
    cases := []struct {
        name    string
        query   string
        want    []uint64
        wantErr bool
    }{
        {"absent", "", nil, false},
        {"single", "crew=2", []uint64{2}, false},
        {"multiple", "crew=2,5,9", []uint64{2, 5, 9}, false},
        {"spaces tolerated", "crew=2,%205", []uint64{2, 5}, false},
        {"trailing comma tolerated", "crew=2,", []uint64{2}, false},
        {"non numeric", "crew=2,abc", nil, true},
        {"zero id", "crew=0", nil, true},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            got, err := queryIDList(ctxWithQuery(tc.query), "crew")
            if tc.wantErr {
                if err == nil {
                    t.Fatalf("expected error, got %v", got)
                }
                return
            }
            if err != nil {
                t.Fatal(err)
            }
            if !reflect.DeepEqual(got, tc.want) {
                t.Fatalf("got %v, want %v", got, tc.want)
            }
        })
    }
}

func TestQueryID(t *testing.T) {
    if id, err := queryID(ctxWithQuery("train=7"), "train"); err != nil || id != 7 {
        t.Fatalf("got (%d, %v), want (7, nil)", id, err)
    }
    if id, err := queryID(ctxWithQuery(""), "train"); err != nil || id != 0 {
        t.Fatalf("absent param: got (%d, %v), want (0, nil)", id, err)
    }
    if _, err := queryID(ctxWithQuery("train=oops"), "train"); err == nil {
        t.Fatal("malformed id accepted")
    }
}

func TestGetUserID(t *testing.T) {
    e := echo.New()
    c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

    // JWT numeric claims decode as float64
    c.Set("user_id", float64(42))
    if id, err := getUserID(c); err != nil || id != 42 {
        t.Fatalf("float64 claim: got (%d, %v)", id, err)
    }

    c.Set("user_id", "17")
    if id, err := getUserID(c); err != nil || id != 17 {
        t.Fatalf("string claim: got (%d, %v)", id, err)
    }

    c.Set("user_id", nil)
    if _, err := getUserID(c); err == nil {
        t.Fatal("nil claim accepted")
    }
}
