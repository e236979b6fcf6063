package main // Entry point package

import (
    "log"  // Logging library
    "time" // Durations for the hold TTL

    "github.com/joho/godotenv"    // Loads .env files in development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/priyanshu24-creation/Ticket-Hub/internal/config"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/database"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/handler"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/notification"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/payment"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/queue"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/repository"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/router"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/service"
)

func main() {
    _ = godotenv.Load() // load .env when present; real env vars win

    cfg := config.Load() // load environment config

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database connect failed: %v", err)
    }
    defer func() { _ = db.Close() }()

    rdb := config.NewRedisClient() // nil when Redis is unreachable; features degrade

    // Repositories.
    movieRepo := repository.NewMovieRepo(db)
    theaterRepo := repository.NewTheaterRepo(db)
    showRepo := repository.NewShowRepo(db)
    holdRepo := repository.NewHoldRepo(db)
    bookingRepo := repository.NewBookingRepo(db)
    analyticsRepo := repository.NewAnalyticsRepo(db)
    userRepo := repository.NewUserRepo(db)
    tokenRepo := repository.NewTokenRepo(db)

    // Core services.  The lock table is shared between the hold manager
    // and the booking orchestrator so reserve and finalize serialize per
    // show.
    locks := service.NewShowLocks()
    ledger := service.NewSeatLedger(bookingRepo, holdRepo)
    holdSvc := service.NewHoldService(showRepo, holdRepo, ledger, locks,
        time.Duration(cfg.HoldTTLMin)*time.Minute)
    gateway := payment.NewGateway(cfg.PaymentKeyID, cfg.PaymentKeySecret, cfg.PaymentBaseURL)
    bookingSvc := service.NewBookingService(showRepo, holdRepo, bookingRepo,
        gateway, notification.NewQueueNotifier(), locks,
        cfg.Currency, uint32(cfg.ConvenienceFeeCents))

    // Handlers.
    authH := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
    movieH := handler.NewMovieHandler(movieRepo, showRepo)
    bookingH := handler.NewBookingHandler(showRepo, theaterRepo, ledger, holdSvc, bookingSvc)
    adminH := handler.NewAdminHandler(analyticsRepo)

    // Confirmation consumer runs for the lifetime of the process and
    // reconnects on its own.
    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterBrowse(e, movieH, bookingH, config.LoadCacheConfig(), config.LoadRateLimitConfig(), rdb)
    router.RegisterBooking(e, bookingH, config.LoadRateLimitConfig(), rdb)
    router.RegisterAdmin(e, adminH, cfg.JWTSecret)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
