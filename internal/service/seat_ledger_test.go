package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
)

func TestSeatLedgerState(t *testing.T) {
    now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
    holds := newFakeHoldStore(func() time.Time { return now })
    bookings := newFakeBookingStore()
    ledger := NewSeatLedger(bookings, holds)
    ctx := context.Background()

    require.NoError(t, bookings.Create(ctx, &model.Booking{
        BookingID: "TH1b", ShowID: 1, SeatLabels: []string{"B2", "B1"},
        PaymentStatus: model.PaymentSuccess,
    }))
    // Pending bookings never count as booked.
    require.NoError(t, bookings.Create(ctx, &model.Booking{
        BookingID: "TH2p", ShowID: 1, SeatLabels: []string{"C1"},
        PaymentStatus: model.PaymentPending,
    }))
    require.NoError(t, holds.ReplaceForSession(ctx, &model.SeatHold{
        ShowID: 1, SeatLabels: []string{"A2", "A1"}, SessionID: "s1", ExpiresAt: now.Add(time.Minute),
    }))

    state, err := ledger.SeatState(ctx, 1)
    require.NoError(t, err)
    assert.Equal(t, []string{"B1", "B2"}, state.Booked, "sorted")
    assert.Equal(t, []string{"A1", "A2"}, state.Held, "sorted")
}

func TestSeatLedgerUnavailableExcludesOwnSession(t *testing.T) {
    now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
    holds := newFakeHoldStore(func() time.Time { return now })
    bookings := newFakeBookingStore()
    ledger := NewSeatLedger(bookings, holds)
    ctx := context.Background()

    require.NoError(t, holds.ReplaceForSession(ctx, &model.SeatHold{
        ShowID: 1, SeatLabels: []string{"A1"}, SessionID: "s1", ExpiresAt: now.Add(time.Minute),
    }))

    taken, err := ledger.Unavailable(ctx, 1, "s1")
    require.NoError(t, err)
    assert.Empty(t, taken, "a session never conflicts with its own hold")

    taken, err = ledger.Unavailable(ctx, 1, "s2")
    require.NoError(t, err)
    assert.Contains(t, taken, "A1")
}

func TestSeatLedgerEmptyShow(t *testing.T) {
    now := time.Now()
    ledger := NewSeatLedger(newFakeBookingStore(), newFakeHoldStore(func() time.Time { return now }))

    state, err := ledger.SeatState(context.Background(), 99)
    require.NoError(t, err)
    assert.Empty(t, state.Booked)
    assert.Empty(t, state.Held)
}
