package handler

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-station-reservation/internal/model"
    "github.com/iliyamo/train-station-reservation/internal/repository"
)

// StationHandler serves the station catalog.
type StationHandler struct {
    Stations *repository.StationRepo
}

func NewStationHandler(r *repository.StationRepo) *StationHandler {
    return &StationHandler{Stations: r}
}

// Create adds a station. Coordinates are optional; duplicate names
// return 409.
func (h *StationHandler) Create(c echo.Context) error {
    var s model.Station
    if err := c.Bind(&s); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    s.Name = strings.TrimSpace(s.Name)
    if s.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Stations.Create(ctx, &s); err != nil {
        if err == repository.ErrConflict {
            return c.JSON(http.StatusConflict, echo.Map{"error": "station already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }
    return c.JSON(http.StatusCreated, s)
}

// List returns all stations.
func (h *StationHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    stations, err := h.Stations.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, stations)
}
