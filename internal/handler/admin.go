package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/repository"
)

// AdminHandler serves the analytics dashboard.  Routes using it must sit
// behind JWTAuth plus RequireRole("ADMIN").
type AdminHandler struct {
    Repo *repository.AnalyticsRepo
}

func NewAdminHandler(a *repository.AnalyticsRepo) *AdminHandler {
    return &AdminHandler{Repo: a}
}

// Analytics handles GET /admin/analytics.  The optional limit query
// parameter caps the top-N lists (default 5).
func (h *AdminHandler) Analytics(c echo.Context) error {
    limit := 5
    if v := c.QueryParam("limit"); v != "" {
        n, err := strconv.Atoi(v)
        if err != nil || n < 1 || n > 100 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
        }
        limit = n
    }
    ctx := c.Request().Context()

    revenue, bookings, err := h.Repo.Totals(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    movies, err := h.Repo.PopularMovies(ctx, limit)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    theaters, err := h.Repo.BusiestTheaters(ctx, limit)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    type movieStat struct {
        Title        string `json:"title"`
        Bookings     uint64 `json:"bookings"`
        RevenueCents uint64 `json:"revenue_cents"`
    }
    type theaterStat struct {
        Name     string `json:"name"`
        Bookings uint64 `json:"bookings"`
    }
    ms := make([]movieStat, 0, len(movies))
    for _, m := range movies {
        ms = append(ms, movieStat{Title: m.Title, Bookings: m.Bookings, RevenueCents: m.RevenueCents})
    }
    ts := make([]theaterStat, 0, len(theaters))
    for _, t := range theaters {
        ts = append(ts, theaterStat{Name: t.Name, Bookings: t.Bookings})
    }

    return c.JSON(http.StatusOK, echo.Map{
        "total_revenue_cents": revenue,
        "total_bookings":      bookings,
        "popular_movies":      ms,
        "busiest_theaters":    ts,
    })
}
