package model

import "time"

// SeatHold represents a temporary, exclusive claim on a set of seats for a
// show, scoped to a browsing session.  Holds prevent concurrent customers
// from grabbing the same seats while one of them is paying.  A hold becomes
// inert once ExpiresAt passes; expired rows are filtered out of every read
// and purged opportunistically.  A session has at most one active hold –
// reserving again replaces the previous one.
//
// Fields:
//  ShowID     – show for which the seats are held.
//  SeatLabels – seat labels covered by the hold (row+number, e.g. "A1").
//  SessionID  – opaque client session owning the hold.
//  ExpiresAt  – when the hold stops blocking other sessions.
//  CreatedAt  – when the hold was created.
type SeatHold struct {
    ShowID     uint64    // seat_holds.show_id
    SeatLabels []string  // seat_holds.seat_label (one row per label)
    SessionID  string    // seat_holds.session_id
    ExpiresAt  time.Time // seat_holds.expires_at
    CreatedAt  time.Time // seat_holds.created_at
}

// Active reports whether the hold still blocks other sessions at the given
// instant.
func (h *SeatHold) Active(now time.Time) bool {
    return now.Before(h.ExpiresAt)
}
