// This file defines read-only aggregate queries for the admin dashboard.
// Everything is computed in SQL over successful bookings; no counters are
// maintained elsewhere, so the numbers are always consistent with the
// booking records.
package repository

import (
    "context"
    "database/sql"
)

// MovieStat summarizes bookings and revenue for one movie.
type MovieStat struct {
    Title        string
    Bookings     uint64
    RevenueCents uint64
}

// TheaterStat summarizes bookings for one theater.
type TheaterStat struct {
    Name     string
    Bookings uint64
}

// AnalyticsRepo computes admin dashboard aggregates.
type AnalyticsRepo struct {
    db *sql.DB
}

// NewAnalyticsRepo constructs an AnalyticsRepo with the given DB handle.
func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo { return &AnalyticsRepo{db: db} }

// Totals returns overall revenue and booking count across all successful
// bookings.
func (r *AnalyticsRepo) Totals(ctx context.Context) (revenueCents, bookings uint64, err error) {
    const q = `SELECT COALESCE(SUM(total_amount_cents), 0), COUNT(*)
               FROM bookings WHERE payment_status = 'success'`
    err = r.db.QueryRowContext(ctx, q).Scan(&revenueCents, &bookings)
    return revenueCents, bookings, err
}

// PopularMovies returns the top movies by number of successful bookings.
func (r *AnalyticsRepo) PopularMovies(ctx context.Context, limit int) ([]MovieStat, error) {
    const q = `SELECT m.title, COUNT(*), COALESCE(SUM(b.total_amount_cents), 0)
               FROM bookings b
               JOIN shows s  ON s.id = b.show_id
               JOIN movies m ON m.id = s.movie_id
               WHERE b.payment_status = 'success'
               GROUP BY m.id, m.title
               ORDER BY COUNT(*) DESC
               LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, limit)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]MovieStat, 0, limit)
    for rows.Next() {
        var s MovieStat
        if err := rows.Scan(&s.Title, &s.Bookings, &s.RevenueCents); err != nil {
            return nil, err
        }
        out = append(out, s)
    }
    return out, rows.Err()
}

// BusiestTheaters returns the top theaters by number of successful bookings.
func (r *AnalyticsRepo) BusiestTheaters(ctx context.Context, limit int) ([]TheaterStat, error) {
    const q = `SELECT t.name, COUNT(*)
               FROM bookings b
               JOIN shows s    ON s.id = b.show_id
               JOIN theaters t ON t.id = s.theater_id
               WHERE b.payment_status = 'success'
               GROUP BY t.id, t.name
               ORDER BY COUNT(*) DESC
               LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, limit)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]TheaterStat, 0, limit)
    for rows.Next() {
        var s TheaterStat
        if err := rows.Scan(&s.Name, &s.Bookings); err != nil {
            return nil, err
        }
        out = append(out, s)
    }
    return out, rows.Err()
}
