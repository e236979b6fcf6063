// Package service implements the seat reservation and booking protocol:
// the seat ledger, the hold manager and the booking orchestrator.  The
// HTTP layer translates the errors defined here into status codes; none
// of them are retried anywhere in this package.
package service

import (
    "errors"
    "fmt"
    "strings"
)

// ErrNoSeats is returned when a reservation or booking request carries no
// usable seat labels.
var ErrNoSeats = errors.New("no seats requested")

// ErrHoldExpired is returned when a booking is attempted without a live
// hold – either the session never reserved or its hold lapsed.
var ErrHoldExpired = errors.New("seat reservation expired")

// ErrSeatsNotHeld is returned when the seats submitted with a booking are
// not all covered by the session's active hold.
var ErrSeatsNotHeld = errors.New("seats not covered by active reservation")

// ErrInvalidSignature is returned when the payment proof does not match
// the HMAC computed over the stored order id and the supplied payment id.
var ErrInvalidSignature = errors.New("invalid payment signature")

// ErrGateway wraps upstream payment gateway failures.  A gateway failure
// during order creation aborts the booking cleanly; nothing is persisted.
var ErrGateway = errors.New("payment gateway error")

// ConflictError reports seats that are unavailable: a reserve found them
// held by another session or already sold, or a finalize found them sold
// to another booking after its hold lapsed.  No partial hold is created
// when any requested seat conflicts.
type ConflictError struct {
    Unavailable []string
}

func (e *ConflictError) Error() string {
    return fmt.Sprintf("seats %s are not available", strings.Join(e.Unavailable, ", "))
}
