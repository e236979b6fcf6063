package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/repository"
)

// MovieHandler serves the public catalog: movie listing with filters, the
// movie detail page and the showtimes of a movie grouped by theater.
// Everything here is read-only and sits behind the response cache.
type MovieHandler struct {
    Movies   *repository.MovieRepo
    ShowRepo *repository.ShowRepo
}

func NewMovieHandler(m *repository.MovieRepo, s *repository.ShowRepo) *MovieHandler {
    return &MovieHandler{Movies: m, ShowRepo: s}
}

type movieResp struct {
    ID          uint64   `json:"id"`
    Title       string   `json:"title"`
    Poster      string   `json:"poster"`
    Rating      float64  `json:"rating"`
    Votes       string   `json:"votes"`
    Genres      []string `json:"genres"`
    Languages   []string `json:"languages"`
    Formats     []string `json:"formats"`
    Duration    string   `json:"duration"`
    ReleaseDate string   `json:"release_date"`
    Trailer     string   `json:"trailer"`
    Description string   `json:"description"`
}

func toMovieResp(m model.Movie) movieResp {
    return movieResp{
        ID:          m.ID,
        Title:       m.Title,
        Poster:      m.Poster,
        Rating:      m.Rating,
        Votes:       m.Votes,
        Genres:      m.Genres,
        Languages:   m.Languages,
        Formats:     m.Formats,
        Duration:    m.Duration,
        ReleaseDate: m.ReleaseDate,
        Trailer:     m.Trailer,
        Description: m.Description,
    }
}

// List handles GET /movies.  Supported query parameters: genre, language
// (exact match against the movie's lists, "all" disables the filter) and
// search (case-insensitive title substring).
func (h *MovieHandler) List(c echo.Context) error {
    movies, err := h.Movies.List(c.Request().Context(),
        c.QueryParam("genre"), c.QueryParam("language"), c.QueryParam("search"))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]movieResp, 0, len(movies))
    for _, m := range movies {
        out = append(out, toMovieResp(m))
    }
    return c.JSON(http.StatusOK, echo.Map{"movies": out})
}

// Get handles GET /movies/:id.
func (h *MovieHandler) Get(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    m, err := h.Movies.GetByID(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrMovieNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, toMovieResp(*m))
}

type showtimeResp struct {
    ShowID     uint64 `json:"show_id"`
    ShowTime   string `json:"show_time"`
    Format     string `json:"format"`
    PriceCents uint32 `json:"price_cents"`
}

type theaterShowsResp struct {
    TheaterID uint64         `json:"theater_id"`
    Name      string         `json:"name"`
    Location  string         `json:"location"`
    City      string         `json:"city"`
    Showtimes []showtimeResp `json:"showtimes"`
}

// Shows handles GET /movies/:id/shows.  Query parameters: date
// (YYYY-MM-DD, defaults to today) and city.  Showtimes are grouped per
// theater; the repository orders rows by theater so grouping is a single
// pass.
func (h *MovieHandler) Shows(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    if _, err := h.Movies.GetByID(c.Request().Context(), id); err != nil {
        if err == repository.ErrMovieNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    date := c.QueryParam("date")
    if date == "" {
        date = time.Now().UTC().Format("2006-01-02")
    }
    shows, err := h.ShowRepo.ListByMovie(c.Request().Context(), id, date, c.QueryParam("city"))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    theaters := make([]theaterShowsResp, 0)
    for _, sw := range shows {
        st := showtimeResp{ShowID: sw.ID, ShowTime: sw.ShowTime, Format: sw.Format, PriceCents: sw.PriceCents}
        if n := len(theaters); n > 0 && theaters[n-1].TheaterID == sw.TheaterID {
            theaters[n-1].Showtimes = append(theaters[n-1].Showtimes, st)
            continue
        }
        theaters = append(theaters, theaterShowsResp{
            TheaterID: sw.TheaterID,
            Name:      sw.TheaterName,
            Location:  sw.TheaterLocation,
            City:      sw.TheaterCity,
            Showtimes: []showtimeResp{st},
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"date": date, "theaters": theaters})
}
