package main

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-station-reservation/internal/config"
    "github.com/iliyamo/train-station-reservation/internal/database"
    "github.com/iliyamo/train-station-reservation/internal/handler"
    "github.com/iliyamo/train-station-reservation/internal/middleware"
    "github.com/iliyamo/train-station-reservation/internal/queue"
    "github.com/iliyamo/train-station-reservation/internal/repository"
    "github.com/iliyamo/train-station-reservation/internal/router"
)

func main() {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    // Redis backs the response cache and the rate limiter. A nil
    // client turns both middlewares into no-ops, so the API stays up
    // when Redis is unreachable.
    rdb := config.NewRedisClient()
    cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
    rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    trainTypes := repository.NewTrainTypeRepo(db)
    stations := repository.NewStationRepo(db)
    crews := repository.NewCrewRepo(db)
    routes := repository.NewRouteRepo(db)
    trains := repository.NewTrainRepo(db)
    journeys := repository.NewJourneyRepo(db)
    orders := repository.NewOrderRepo(db)

    auth := handler.NewAuthHandler(cfg, users, tokens)
    catalog := router.CatalogHandlers{
        TrainTypes: handler.NewTrainTypeHandler(trainTypes),
        Stations:   handler.NewStationHandler(stations),
        Crews:      handler.NewCrewHandler(crews),
        Routes:     handler.NewRouteHandler(routes),
        Trains:     handler.NewTrainHandler(trains, cfg.UploadDir),
        Journeys:   handler.NewJourneyHandler(journeys, crews),
    }
    booking := handler.NewBookingHandler(orders, journeys)

    e := echo.New()
    e.Static("/media", cfg.UploadDir) // serves uploaded train images

    router.RegisterRoutes(e)
    router.RegisterAuth(e, auth, cfg.JWTSecret)
    router.RegisterCatalog(e, catalog, cfg.JWTSecret, rateMW, cacheMW)
    router.RegisterBooking(e, booking, cfg.JWTSecret, rateMW)

    // The consumer reconnects on its own; it only logs when the broker
    // is down.
    go func() {
        if err := queue.StartOrderConsumer(); err != nil {
            log.Printf("order consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
