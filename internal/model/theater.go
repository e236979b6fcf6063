package model

import "time"

// Theater represents a cinema venue.  The seat layout is a simple grid:
// SeatRows lists the row labels (A, B, C ...) and SeatsPerRow gives the
// number of seats in each row.  A seat label is the row label followed by
// the seat number, e.g. "C7".  Seats are not stored individually; their
// state is derived from bookings and holds.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – theater name.
//  Location    – street address or landmark.
//  City        – city used for show filtering.
//  TotalSeats  – total seat capacity.
//  SeatRows    – ordered row labels.
//  SeatsPerRow – seats in every row.
//  CreatedAt   – creation timestamp.
type Theater struct {
    ID          uint64    // theaters.id
    Name        string    // theaters.name
    Location    string    // theaters.location
    City        string    // theaters.city
    TotalSeats  uint32    // theaters.total_seats
    SeatRows    []string  // theaters.seat_rows (CSV column)
    SeatsPerRow uint32    // theaters.seats_per_row
    CreatedAt   time.Time // theaters.created_at
}
