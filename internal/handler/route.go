package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-station-reservation/internal/model"
    "github.com/iliyamo/train-station-reservation/internal/repository"
)

// RouteHandler serves routes between stations.
type RouteHandler struct {
    Routes *repository.RouteRepo
}

func NewRouteHandler(r *repository.RouteRepo) *RouteHandler {
    return &RouteHandler{Routes: r}
}

// Create adds a route. A self-loop or non-positive distance is a 400,
// an unknown station a 404 and a duplicate (source, destination) pair
// a 409.
func (h *RouteHandler) Create(c echo.Context) error {
    var rt model.Route
    if err := c.Bind(&rt); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if rt.SourceStationID == 0 || rt.DestinationStationID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "source and destination required"})
    }
    if err := rt.Validate(); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Routes.Create(ctx, &rt); err != nil {
        switch {
        case errors.Is(err, repository.ErrConflict):
            return c.JSON(http.StatusConflict, echo.Map{"error": "route already exists"})
        case errors.Is(err, repository.ErrNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }

    detail, err := h.Routes.GetByID(ctx, rt.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusCreated, detail)
}

// List returns routes with station names resolved. Optional query
// filters: ?source=<station id> and ?destination=<station id>.
func (h *RouteHandler) List(c echo.Context) error {
    var f repository.RouteFilter
    var err error
    if f.SourceID, err = queryID(c, "source"); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid source"})
    }
    if f.DestinationID, err = queryID(c, "destination"); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid destination"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    routes, err := h.Routes.List(ctx, f)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, routes)
}

// Get returns one route by id.
func (h *RouteHandler) Get(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    detail, err := h.Routes.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "route not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, detail)
}
