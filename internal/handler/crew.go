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

// CrewHandler serves the crew roster.
type CrewHandler struct {
    Crews *repository.CrewRepo
}

func NewCrewHandler(r *repository.CrewRepo) *CrewHandler {
    return &CrewHandler{Crews: r}
}

// crewResp includes the joined full name alongside the stored fields.
type crewResp struct {
    ID        uint64 `json:"id"`
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
    FullName  string `json:"full_name"`
}

func toCrewResp(cr model.Crew) crewResp {
    return crewResp{ID: cr.ID, FirstName: cr.FirstName, LastName: cr.LastName, FullName: cr.FullName()}
}

// Create adds a crew member.
func (h *CrewHandler) Create(c echo.Context) error {
    var cr model.Crew
    if err := c.Bind(&cr); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    cr.FirstName = strings.TrimSpace(cr.FirstName)
    cr.LastName = strings.TrimSpace(cr.LastName)
    if cr.FirstName == "" || cr.LastName == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name and last_name required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Crews.Create(ctx, &cr); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }
    return c.JSON(http.StatusCreated, toCrewResp(cr))
}

// List returns all crew members ordered by name.
func (h *CrewHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    crews, err := h.Crews.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    out := make([]crewResp, 0, len(crews))
    for _, cr := range crews {
        out = append(out, toCrewResp(cr))
    }
    return c.JSON(http.StatusOK, out)
}
