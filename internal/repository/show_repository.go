// This file defines the show repository.  A Show represents a scheduled
// screening of a movie in a theater.  Shows are immutable after creation;
// there are no update methods on purpose.
package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
    db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo { return &ShowRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *ShowRepo) DB() *sql.DB { return r.db }

const showCols = `id, movie_id, theater_id, show_date, show_time, format, price_cents, total_seats, created_at`

// GetByID retrieves a show by its ID.  It returns ErrShowNotFound if
// there is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
    const q = `SELECT ` + showCols + ` FROM shows WHERE id = ?`
    var s model.Show
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &s.ID, &s.MovieID, &s.TheaterID, &s.ShowDate, &s.ShowTime,
        &s.Format, &s.PriceCents, &s.TotalSeats, &s.CreatedAt)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrShowNotFound
        }
        return nil, err
    }
    return &s, nil
}

// GetDetail retrieves a show joined with its movie title and theater name.
// The booking orchestrator uses this for pricing, summaries and the
// confirmation notification.  It returns ErrShowNotFound when the show
// does not exist.
func (r *ShowRepo) GetDetail(ctx context.Context, id uint64) (*model.ShowDetail, error) {
    const q = `SELECT s.id, s.movie_id, s.theater_id, s.show_date, s.show_time, s.format,
                      s.price_cents, s.total_seats, s.created_at, m.title, t.name
               FROM shows s
               JOIN movies m   ON m.id = s.movie_id
               JOIN theaters t ON t.id = s.theater_id
               WHERE s.id = ?`
    var d model.ShowDetail
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &d.ID, &d.MovieID, &d.TheaterID, &d.ShowDate, &d.ShowTime, &d.Format,
        &d.PriceCents, &d.TotalSeats, &d.CreatedAt, &d.MovieTitle, &d.TheaterName)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrShowNotFound
        }
        return nil, err
    }
    return &d, nil
}

// ShowWithTheater pairs a show with the theater columns the browse API
// needs to group showtimes by venue.
type ShowWithTheater struct {
    model.Show
    TheaterName     string
    TheaterLocation string
    TheaterCity     string
}

// ListByMovie returns all shows for a movie, optionally filtered by date
// (YYYY-MM-DD) and city.  Results are ordered by theater then start time
// so the handler can group showtimes per theater in one pass.  When no
// show matches it returns an empty slice and nil error.
func (r *ShowRepo) ListByMovie(ctx context.Context, movieID uint64, date, city string) ([]ShowWithTheater, error) {
    q := `SELECT s.id, s.movie_id, s.theater_id, s.show_date, s.show_time, s.format,
                 s.price_cents, s.total_seats, s.created_at, t.name, t.location, t.city
          FROM shows s
          JOIN theaters t ON t.id = s.theater_id
          WHERE s.movie_id = ?`
    args := []any{movieID}
    if date != "" {
        q += ` AND s.show_date = ?`
        args = append(args, date)
    }
    if city != "" {
        q += ` AND t.city = ?`
        args = append(args, city)
    }
    q += ` ORDER BY s.theater_id ASC, s.show_time ASC`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]ShowWithTheater, 0)
    for rows.Next() {
        var sw ShowWithTheater
        if err := rows.Scan(
            &sw.ID, &sw.MovieID, &sw.TheaterID, &sw.ShowDate, &sw.ShowTime, &sw.Format,
            &sw.PriceCents, &sw.TotalSeats, &sw.CreatedAt,
            &sw.TheaterName, &sw.TheaterLocation, &sw.TheaterCity); err != nil {
            return nil, err
        }
        out = append(out, sw)
    }
    return out, rows.Err()
}

// Create inserts a new show and assigns the generated ID back to the
// struct.  Used by the seed command.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
    const q = `INSERT INTO shows (movie_id, theater_id, show_date, show_time, format, price_cents, total_seats)
               VALUES (?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, s.MovieID, s.TheaterID, s.ShowDate, s.ShowTime,
        s.Format, s.PriceCents, s.TotalSeats)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    s.ID = uint64(id)
    return nil
}
