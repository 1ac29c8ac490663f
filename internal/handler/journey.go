package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-station-reservation/internal/model"
    "github.com/iliyamo/train-station-reservation/internal/repository"
)

// JourneyHandler serves scheduled journeys. Create, Update and Delete
// are admin only; listing and detail are open to any authenticated
// user so customers can browse what is bookable.
type JourneyHandler struct {
    Journeys *repository.JourneyRepo
    Crews    *repository.CrewRepo
}

func NewJourneyHandler(j *repository.JourneyRepo, cr *repository.CrewRepo) *JourneyHandler {
    return &JourneyHandler{Journeys: j, Crews: cr}
}

func (h *JourneyHandler) validate(ctx context.Context, j *model.Journey) (int, string) {
    if j.RouteID == 0 || j.TrainID == 0 {
        return http.StatusBadRequest, "route and train required"
    }
    if j.DepartureTime.IsZero() || j.ArrivalTime.IsZero() {
        return http.StatusBadRequest, "departure_time and arrival_time required"
    }
    if err := j.Validate(); err != nil {
        return http.StatusBadRequest, err.Error()
    }
    ok, err := h.Crews.ExistAll(ctx, j.CrewIDs)
    if err != nil {
        return http.StatusInternalServerError, "query failed"
    }
    if !ok {
        return http.StatusBadRequest, "unknown crew id"
    }
    return 0, ""
}

// Create schedules a journey with its crew links.
func (h *JourneyHandler) Create(c echo.Context) error {
    var j model.Journey
    if err := c.Bind(&j); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if code, msg := h.validate(ctx, &j); code != 0 {
        return c.JSON(code, echo.Map{"error": msg})
    }
    if err := h.Journeys.Create(ctx, &j); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "route or train not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }

    detail, err := h.Journeys.GetByID(ctx, j.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusCreated, detail)
}

// Update replaces a journey's fields and crew roster wholesale: the
// body must carry route, train and both timestamps, and the stored
// crew links are overwritten with the submitted list (an absent crew
// field clears the roster). Partial bodies are rejected. Tickets
// already sold against the journey are untouched.
func (h *JourneyHandler) Update(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var j model.Journey
    if err := c.Bind(&j); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    j.ID = id

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if code, msg := h.validate(ctx, &j); code != 0 {
        return c.JSON(code, echo.Map{"error": msg})
    }
    if err := h.Journeys.Update(ctx, &j); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "journey not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }

    detail, err := h.Journeys.GetByID(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, detail)
}

// Delete removes a journey; its crew links and tickets cascade in the
// database.
func (h *JourneyHandler) Delete(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Journeys.Delete(ctx, id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "journey not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// List returns journeys with remaining seat counts. Optional query
// filters: ?train=<id>, ?route=<id>, ?crew=<id,id,...>,
// ?departure_time=YYYY-MM-DD and ?arrival_time=YYYY-MM-DD (matched by
// calendar date).
func (h *JourneyHandler) List(c echo.Context) error {
    var f repository.JourneyFilter
    var err error
    if f.TrainID, err = queryID(c, "train"); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train"})
    }
    if f.RouteID, err = queryID(c, "route"); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid route"})
    }
    if f.CrewIDs, err = queryIDList(c, "crew"); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crew"})
    }
    if f.DepartureDate, err = queryDate(c, "departure_time"); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid departure_time, want YYYY-MM-DD"})
    }
    if f.ArrivalDate, err = queryDate(c, "arrival_time"); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid arrival_time, want YYYY-MM-DD"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    journeys, err := h.Journeys.List(ctx, f)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, journeys)
}

// Get returns one journey by id.
func (h *JourneyHandler) Get(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    detail, err := h.Journeys.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "journey not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, detail)
}

// Availability returns just the remaining seat count of a journey. It
// is cheaper than the full detail payload and safe to cache; the value
// is display-only and may lag behind concurrent sales.
func (h *JourneyHandler) Availability(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    n, err := h.Journeys.Availability(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "journey not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"journey": id, "tickets_available": n})
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(c echo.Context, name string) (*time.Time, error) {
    raw := strings.TrimSpace(c.QueryParam(name))
    if raw == "" {
        return nil, nil
    }
    t, err := time.Parse("2006-01-02", raw)
    if err != nil {
        return nil, err
    }
    return &t, nil
}
