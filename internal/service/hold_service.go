package service

import (
    "context"
    "log"
    "sort"
    "time"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
)

// ShowStore exposes the show lookups the core services need.
type ShowStore interface {
    GetByID(ctx context.Context, id uint64) (*model.Show, error)
    GetDetail(ctx context.Context, id uint64) (*model.ShowDetail, error)
}

// HoldStore is the persistence contract for seat holds.
type HoldStore interface {
    HoldReader
    // ReplaceForSession atomically swaps the session's previous hold
    // (if any) for the given one.
    ReplaceForSession(ctx context.Context, h *model.SeatHold) error
    // ActiveBySession returns the session's non-expired hold for a show
    // or repository.ErrHoldNotFound.
    ActiveBySession(ctx context.Context, showID uint64, sessionID string) (*model.SeatHold, error)
    // DeleteBySessionAndShow releases the session's hold rows for a show.
    DeleteBySessionAndShow(ctx context.Context, sessionID string, showID uint64) (int64, error)
    // PurgeExpired removes expired hold rows for a show.
    PurgeExpired(ctx context.Context, showID uint64) (int64, error)
}

// HoldService creates and supersedes time-bounded seat holds.  Reserve is
// the system's one real critical section: the conflict check against the
// ledger and the hold write must not interleave with another session's
// reserve for the same show, so both run under the show's mutex.
type HoldService struct {
    shows  ShowStore
    holds  HoldStore
    ledger *SeatLedger
    locks  *ShowLocks
    ttl    time.Duration

    now func() time.Time // overridable in tests
}

// NewHoldService constructs a HoldService.  The locks table must be the
// same instance the booking orchestrator uses, otherwise reserve and
// finalize would not be serialized against each other.
func NewHoldService(shows ShowStore, holds HoldStore, ledger *SeatLedger, locks *ShowLocks, ttl time.Duration) *HoldService {
    return &HoldService{
        shows:  shows,
        holds:  holds,
        ledger: ledger,
        locks:  locks,
        ttl:    ttl,
        now:    time.Now,
    }
}

// Reserve places a temporary exclusive hold on the given seats for the
// session.  Seats held by other sessions or already sold cause a
// ConflictError listing the unavailable labels, and no partial hold is
// created.  The session's own previous hold never conflicts and is
// superseded on success, so re-reserving with a different seat set
// silently releases the old selection.  Seat labels are deduplicated;
// layout membership is a display concern and is not enforced here.
func (s *HoldService) Reserve(ctx context.Context, showID uint64, seatLabels []string, sessionID string) (*model.SeatHold, error) {
    if _, err := s.shows.GetByID(ctx, showID); err != nil {
        return nil, err
    }

    unique := dedupe(seatLabels)
    if len(unique) == 0 {
        return nil, ErrNoSeats
    }

    defer s.locks.Lock(showID)()

    // Drop expired rows while we hold the show lock; reads would filter
    // them out anyway, this only keeps the table small.
    if _, err := s.holds.PurgeExpired(ctx, showID); err != nil {
        log.Printf("hold purge failed for show %d: %v", showID, err)
    }

    taken, err := s.ledger.Unavailable(ctx, showID, sessionID)
    if err != nil {
        return nil, err
    }
    var conflict []string
    for _, label := range unique {
        if _, ok := taken[label]; ok {
            conflict = append(conflict, label)
        }
    }
    if len(conflict) > 0 {
        sort.Strings(conflict)
        return nil, &ConflictError{Unavailable: conflict}
    }

    hold := &model.SeatHold{
        ShowID:     showID,
        SeatLabels: unique,
        SessionID:  sessionID,
        ExpiresAt:  s.now().UTC().Add(s.ttl),
    }
    if err := s.holds.ReplaceForSession(ctx, hold); err != nil {
        return nil, err
    }
    return hold, nil
}

// dedupe removes duplicate and empty labels while preserving order.
func dedupe(labels []string) []string {
    seen := make(map[string]struct{}, len(labels))
    out := make([]string, 0, len(labels))
    for _, l := range labels {
        if l == "" {
            continue
        }
        if _, ok := seen[l]; ok {
            continue
        }
        seen[l] = struct{}{}
        out = append(out, l)
    }
    return out
}
