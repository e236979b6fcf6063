// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// services and handlers to distinguish between different failure
// scenarios. For example, ErrBookingNotFound maps to an HTTP 404
// while ErrAlreadyFinalized signals that a conditional payment
// transition found the booking in a non-pending state and maps
// to an HTTP 409.
package repository

import "errors"

// ErrMovieNotFound is returned when a movie lookup matches no row.
var ErrMovieNotFound = errors.New("movie not found")

// ErrTheaterNotFound is returned when a theater lookup matches no row.
var ErrTheaterNotFound = errors.New("theater not found")

// ErrShowNotFound indicates that a show was not located in the DB.
var ErrShowNotFound = errors.New("show not found")

// ErrBookingNotFound is returned when a booking lookup matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrHoldNotFound is returned when a session has no active hold for a
// show.  Callers treat an expired hold and a missing hold the same way.
var ErrHoldNotFound = errors.New("hold not found")

// ErrAlreadyFinalized is returned by the conditional pending→success
// transition when the booking has already been paid.  It guarantees a
// second finalize call can never re-apply payment side effects.
var ErrAlreadyFinalized = errors.New("booking already finalized")

// ErrEmailExists is returned when registering a user with a taken email.
var ErrEmailExists = errors.New("email already exists")
