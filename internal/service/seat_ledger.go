package service

import (
    "context"
    "sort"
)

// BookingReader exposes the sold-seat view the ledger needs.
type BookingReader interface {
    // BookedLabels returns the union of seat labels across successful
    // bookings for a show.
    BookedLabels(ctx context.Context, showID uint64) ([]string, error)
}

// HoldReader exposes the held-seat view the ledger needs.
type HoldReader interface {
    // HeldLabels returns the union of seat labels across non-expired
    // holds for a show, excluding the given session's own holds.  Pass
    // an empty session id to include everything.
    HeldLabels(ctx context.Context, showID uint64, excludeSessionID string) ([]string, error)
}

// SeatState is the derived availability view for one show.
type SeatState struct {
    Booked []string `json:"booked_seats"`
    Held   []string `json:"held_seats"`
}

// SeatLedger answers "which seats of this show are taken" by combining
// booking records and active holds.  It owns no state and performs no
// writes; both the seat map display and the hold manager's conflict check
// read through it.  A show without records yields empty sets – the ledger
// does not verify show existence, callers do.
type SeatLedger struct {
    bookings BookingReader
    holds    HoldReader
}

// NewSeatLedger constructs a SeatLedger over the given readers.
func NewSeatLedger(bookings BookingReader, holds HoldReader) *SeatLedger {
    return &SeatLedger{bookings: bookings, holds: holds}
}

// SeatState returns the booked and held seat labels for a show, each
// sorted for stable responses.
func (l *SeatLedger) SeatState(ctx context.Context, showID uint64) (SeatState, error) {
    booked, held, err := l.taken(ctx, showID, "")
    if err != nil {
        return SeatState{}, err
    }
    sort.Strings(booked)
    sort.Strings(held)
    return SeatState{Booked: booked, Held: held}, nil
}

// taken returns the raw booked and held label slices, excluding holds of
// excludeSessionID so a session never conflicts with itself.
func (l *SeatLedger) taken(ctx context.Context, showID uint64, excludeSessionID string) (booked, held []string, err error) {
    booked, err = l.bookings.BookedLabels(ctx, showID)
    if err != nil {
        return nil, nil, err
    }
    held, err = l.holds.HeldLabels(ctx, showID, excludeSessionID)
    if err != nil {
        return nil, nil, err
    }
    return booked, held, nil
}

// Unavailable returns the union of booked and held seats as a set,
// excluding the given session's own holds.  The hold manager intersects
// a reservation request against this set.
func (l *SeatLedger) Unavailable(ctx context.Context, showID uint64, excludeSessionID string) (map[string]struct{}, error) {
    booked, held, err := l.taken(ctx, showID, excludeSessionID)
    if err != nil {
        return nil, err
    }
    taken := make(map[string]struct{}, len(booked)+len(held))
    for _, s := range booked {
        taken[s] = struct{}{}
    }
    for _, s := range held {
        taken[s] = struct{}{}
    }
    return taken, nil
}
