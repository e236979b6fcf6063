package model

import "time"

// Show represents a scheduled screening of a movie in a theater.  Shows
// are immutable once created; seat availability for a show is derived
// from bookings and seat holds, never stored on the show itself.
//
// Fields:
//  ID         – primary key identifier.
//  MovieID    – movie being screened.
//  TheaterID  – theater hosting the screening.
//  ShowDate   – calendar date as YYYY-MM-DD.
//  ShowTime   – wall-clock start time (e.g. "18:30").
//  Format     – screening format (2D, 3D, IMAX).
//  PriceCents – base ticket price in cents.
//  TotalSeats – seat capacity copied from the theater at creation.
//  CreatedAt  – creation timestamp.
type Show struct {
    ID         uint64    // shows.id
    MovieID    uint64    // shows.movie_id
    TheaterID  uint64    // shows.theater_id
    ShowDate   string    // shows.show_date
    ShowTime   string    // shows.show_time
    Format     string    // shows.format
    PriceCents uint32    // shows.price_cents
    TotalSeats uint32    // shows.total_seats
    CreatedAt  time.Time // shows.created_at
}

// ShowDetail joins a show with the movie and theater names needed for
// booking summaries and confirmation notifications.
type ShowDetail struct {
    Show
    MovieTitle  string // movies.title
    TheaterName string // theaters.name
}
