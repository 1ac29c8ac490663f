package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-station-reservation/internal/handler"
    "github.com/iliyamo/train-station-reservation/internal/middleware"
    "github.com/iliyamo/train-station-reservation/internal/model"
)

// CatalogHandlers bundles the reference-data handlers so the
// registration signature stays readable.
type CatalogHandlers struct {
    TrainTypes *handler.TrainTypeHandler
    Stations   *handler.StationHandler
    Crews      *handler.CrewHandler
    Routes     *handler.RouteHandler
    Trains     *handler.TrainHandler
    Journeys   *handler.JourneyHandler
}

// RegisterCatalog registers the reference-data endpoints under /v1.
// Every route requires a valid JWT. Reads are open to both roles and
// run behind the optional cache and rate-limit middlewares; writes
// require the ADMIN role.
func RegisterCatalog(e *echo.Echo, h CatalogHandlers, jwtSecret string, extra ...echo.MiddlewareFunc) {
    read := e.Group("/v1", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin, model.RoleCustomer))
    read.Use(extra...)
    read.GET("/train-types", h.TrainTypes.List)
    read.GET("/stations", h.Stations.List)
    read.GET("/crews", h.Crews.List)
    read.GET("/routes", h.Routes.List)
    read.GET("/routes/:id", h.Routes.Get)
    read.GET("/trains", h.Trains.List)
    read.GET("/trains/:id", h.Trains.Get)
    read.GET("/journeys", h.Journeys.List)
    read.GET("/journeys/:id", h.Journeys.Get)
    read.GET("/journeys/:id/availability", h.Journeys.Availability)

    admin := e.Group("/v1", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin))
    admin.POST("/train-types", h.TrainTypes.Create)
    admin.POST("/stations", h.Stations.Create)
    admin.POST("/crews", h.Crews.Create)
    admin.POST("/routes", h.Routes.Create)
    admin.POST("/trains", h.Trains.Create)
    admin.POST("/trains/:id/upload-image", h.Trains.UploadImage)
    admin.POST("/journeys", h.Journeys.Create)
    // Update is full-replace only, so no PATCH alias is offered.
    admin.PUT("/journeys/:id", h.Journeys.Update)
    admin.DELETE("/journeys/:id", h.Journeys.Delete)
}
