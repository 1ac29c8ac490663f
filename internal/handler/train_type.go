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

// TrainTypeHandler serves the train type catalog. Writes are admin
// only; the role check happens in the router.
type TrainTypeHandler struct {
    Types *repository.TrainTypeRepo
}

func NewTrainTypeHandler(r *repository.TrainTypeRepo) *TrainTypeHandler {
    return &TrainTypeHandler{Types: r}
}

// Create adds a train type. Duplicate names return 409.
func (h *TrainTypeHandler) Create(c echo.Context) error {
    var t model.TrainType
    if err := c.Bind(&t); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    t.Name = strings.TrimSpace(t.Name)
    if t.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Types.Create(ctx, &t); err != nil {
        if err == repository.ErrConflict {
            return c.JSON(http.StatusConflict, echo.Map{"error": "train type already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }
    return c.JSON(http.StatusCreated, t)
}

// List returns all train types.
func (h *TrainTypeHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    types, err := h.Types.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, types)
}
