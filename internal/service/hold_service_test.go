package service

import (
    "context"
    "errors"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/repository"
)

func testShow(id uint64) model.ShowDetail {
    return model.ShowDetail{
        Show: model.Show{
            ID: id, MovieID: 1, TheaterID: 1,
            ShowDate: "2025-06-01", ShowTime: "18:45",
            Format: "IMAX", PriceCents: 220, TotalSeats: 200,
        },
        MovieTitle:  "Inception",
        TheaterName: "PVR: Phoenix MarketCity",
    }
}

// holdFixture wires a HoldService over the in-memory fakes with a
// controllable clock.
type holdFixture struct {
    svc   *HoldService
    holds *fakeHoldStore
    locks *ShowLocks
    now   time.Time
    mu    sync.Mutex
}

func newHoldFixture(t *testing.T) *holdFixture {
    t.Helper()
    f := &holdFixture{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
    clock := func() time.Time {
        f.mu.Lock()
        defer f.mu.Unlock()
        return f.now
    }
    f.holds = newFakeHoldStore(clock)
    f.locks = NewShowLocks()
    ledger := NewSeatLedger(newFakeBookingStore(), f.holds)
    f.svc = NewHoldService(newFakeShowStore(testShow(1)), f.holds, ledger, f.locks, 5*time.Minute)
    f.svc.now = clock
    return f
}

func (f *holdFixture) advance(d time.Duration) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.now = f.now.Add(d)
}

func TestHoldServiceReserve(t *testing.T) {
    f := newHoldFixture(t)

    hold, err := f.svc.Reserve(context.Background(), 1, []string{"A1", "A2", "A1"}, "sess-1")
    require.NoError(t, err)
    assert.Equal(t, []string{"A1", "A2"}, hold.SeatLabels, "duplicates dropped")
    assert.Equal(t, f.now.Add(5*time.Minute), hold.ExpiresAt)

    got, err := f.holds.ActiveBySession(context.Background(), 1, "sess-1")
    require.NoError(t, err)
    assert.ElementsMatch(t, []string{"A1", "A2"}, got.SeatLabels)
}

func TestHoldServiceReserveConflict(t *testing.T) {
    f := newHoldFixture(t)
    ctx := context.Background()

    _, err := f.svc.Reserve(ctx, 1, []string{"B1", "B2", "B3"}, "sess-1")
    require.NoError(t, err)

    _, err = f.svc.Reserve(ctx, 1, []string{"B3", "B4", "B2"}, "sess-2")
    var conflict *ConflictError
    require.ErrorAs(t, err, &conflict)
    assert.Equal(t, []string{"B2", "B3"}, conflict.Unavailable, "sorted, only the overlapping labels")

    // No partial hold for the losing session.
    _, err = f.holds.ActiveBySession(ctx, 1, "sess-2")
    assert.ErrorIs(t, err, repository.ErrHoldNotFound)

    // Non-conflicting seats still go through.
    _, err = f.svc.Reserve(ctx, 1, []string{"B4", "B5"}, "sess-2")
    assert.NoError(t, err)
}

func TestHoldServiceReserveSupersedes(t *testing.T) {
    f := newHoldFixture(t)
    ctx := context.Background()

    _, err := f.svc.Reserve(ctx, 1, []string{"C1", "C2"}, "sess-1")
    require.NoError(t, err)

    // Re-reserving from the same session never conflicts with itself and
    // releases the previous selection.
    _, err = f.svc.Reserve(ctx, 1, []string{"C2", "C3"}, "sess-1")
    require.NoError(t, err)

    _, err = f.svc.Reserve(ctx, 1, []string{"C1"}, "sess-2")
    assert.NoError(t, err, "C1 was freed by the supersession")

    _, err = f.svc.Reserve(ctx, 1, []string{"C3"}, "sess-3")
    var conflict *ConflictError
    assert.ErrorAs(t, err, &conflict)
}

func TestHoldServiceReserveAfterExpiry(t *testing.T) {
    f := newHoldFixture(t)
    ctx := context.Background()

    _, err := f.svc.Reserve(ctx, 1, []string{"D1"}, "sess-1")
    require.NoError(t, err)

    // One second past the TTL the hold no longer blocks anyone.
    f.advance(5*time.Minute + time.Second)

    _, err = f.svc.Reserve(ctx, 1, []string{"D1"}, "sess-2")
    assert.NoError(t, err)

    _, err = f.holds.ActiveBySession(ctx, 1, "sess-1")
    assert.ErrorIs(t, err, repository.ErrHoldNotFound)
}

func TestHoldServiceReserveValidation(t *testing.T) {
    f := newHoldFixture(t)
    ctx := context.Background()

    _, err := f.svc.Reserve(ctx, 42, []string{"A1"}, "sess-1")
    assert.ErrorIs(t, err, repository.ErrShowNotFound)

    _, err = f.svc.Reserve(ctx, 1, nil, "sess-1")
    assert.ErrorIs(t, err, ErrNoSeats)

    _, err = f.svc.Reserve(ctx, 1, []string{"", ""}, "sess-1")
    assert.ErrorIs(t, err, ErrNoSeats)
}

func TestHoldServiceReserveConcurrent(t *testing.T) {
    f := newHoldFixture(t)
    ctx := context.Background()

    const attempts = 2
    errs := make([]error, attempts)
    var wg sync.WaitGroup
    for i := 0; i < attempts; i++ {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            _, errs[i] = f.svc.Reserve(ctx, 1, []string{"E1", "E2"}, string(rune('a'+i))+"-sess")
        }(i)
    }
    wg.Wait()

    wins := 0
    for _, err := range errs {
        if err == nil {
            wins++
        } else {
            var conflict *ConflictError
            assert.True(t, errors.As(err, &conflict), "loser must see a conflict, got %v", err)
        }
    }
    assert.Equal(t, 1, wins, "exactly one session wins the seats")
}
