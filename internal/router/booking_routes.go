package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-station-reservation/internal/handler"
    "github.com/iliyamo/train-station-reservation/internal/middleware"
    "github.com/iliyamo/train-station-reservation/internal/model"
)

// RegisterBooking registers the order endpoints under /v1. Both roles
// may buy tickets and list their own orders; ownership is enforced in
// the handler by scoping queries to the token's user id.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
    g := e.Group("/v1", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin, model.RoleCustomer))
    g.Use(extra...)
    g.POST("/orders", b.CreateOrder)
    g.GET("/orders", b.ListOrders)
}
