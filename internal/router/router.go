package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // Echo web framework used for routing
    "github.com/redis/go-redis/v9"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/config"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/handler"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/middleware"
)

// RegisterRoutes registers routes that do not belong to any feature
// group.  Currently that is only the health check used by load balancers
// and monitoring.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers authentication routes.  Unauthenticated
// operations (register, login, refresh, logout) live under /api/auth;
// /api/auth/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/api/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    g.POST("/refresh", a.Refresh)
    // Logout with a refresh token in the body needs no JWT; revoking all
    // sessions does, so the handler checks context itself.
    g.POST("/logout", a.Logout, middleware.JWTAuth(jwtSecret))
    g.GET("/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterBrowse registers the public catalog endpoints.  These are
// read-only and guest accessible, so the Redis response cache and the
// rate limiter are applied here; both degrade to pass-throughs when
// Redis is not available.
func RegisterBrowse(e *echo.Echo, m *handler.MovieHandler, b *handler.BookingHandler,
    cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, rdb *redis.Client) {
    g := e.Group("/api", middleware.NewTokenBucket(rlCfg, rdb), middleware.NewRedisCache(cacheCfg, rdb))
    g.GET("/movies", m.List)
    g.GET("/movies/:id", m.Get)
    g.GET("/movies/:id/shows", m.Shows)
    // Seat availability relies on the cache TTL being short; it is cached
    // like the rest of the catalog.
    g.GET("/shows/:id/seats", b.SeatMap)
}

// RegisterBooking registers the reservation and checkout flow.  These
// endpoints mutate state and are never cached; the rate limiter still
// applies to keep one client from hammering the hold endpoint.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
    g := e.Group("/api", middleware.NewTokenBucket(rlCfg, rdb))
    g.POST("/shows/:id/hold", b.Reserve)
    g.POST("/bookings", b.Create)
    g.POST("/bookings/:id/payment", b.VerifyPayment)
    g.GET("/bookings/:id", b.Get)
}

// RegisterAdmin registers the analytics dashboard behind JWT auth and the
// ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
    g := e.Group("/api/admin")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireRole("ADMIN"))
    g.GET("/analytics", a.Analytics)
}
