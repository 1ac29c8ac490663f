// Package handler contains the HTTP handlers of the API. Handlers
// translate repository sentinel errors and domain validation failures
// into status codes and field-tagged JSON bodies; they never panic on
// bad input.
package handler

import (
    "errors"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"
)

// fieldError is the shape of a single field-tagged validation failure
// in 400 responses.
type fieldError struct {
    Field  string `json:"field"`
    Reason string `json:"reason"`
}

// getUserID extracts the authenticated user id stored by the JWT
// middleware and converts it to uint64. JWT numeric claims arrive as
// float64; other representations are handled for robustness.
func getUserID(c echo.Context) (uint64, error) {
    switch t := c.Get("user_id").(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c echo.Context) (uint64, error) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, errors.New("invalid id")
    }
    return id, nil
}

// queryID parses an optional exact-match id query parameter. An absent
// parameter yields zero; a malformed one yields an error.
func queryID(c echo.Context, name string) (uint64, error) {
    raw := strings.TrimSpace(c.QueryParam(name))
    if raw == "" {
        return 0, nil
    }
    id, err := strconv.ParseUint(raw, 10, 64)
    if err != nil || id == 0 {
        return 0, errors.New("invalid " + name)
    }
    return id, nil
}

// queryIDList parses a comma-separated list of ids such as ?crew=2,5.
// An absent parameter yields nil; any malformed element yields an
// error.
func queryIDList(c echo.Context, name string) ([]uint64, error) {
    raw := strings.TrimSpace(c.QueryParam(name))
    if raw == "" {
        return nil, nil
    }
    parts := strings.Split(raw, ",")
    ids := make([]uint64, 0, len(parts))
    for _, p := range parts {
        p = strings.TrimSpace(p)
        if p == "" {
            continue
        }
        id, err := strconv.ParseUint(p, 10, 64)
        if err != nil || id == 0 {
            return nil, errors.New("invalid " + name)
        }
        ids = append(ids, id)
    }
    return ids, nil
}
